package banner_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aurelia-studios/aurelia-web/internal/banner"
)

var testKey = []byte("test-signing-key-0123456789abcdef")

func TestEligible(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		st   banner.State
		want bool
	}{
		{name: "fresh visitor", st: banner.State{}, want: true},
		{name: "installed never sees it again", st: banner.State{InstalledOnce: true}, want: false},
		{
			name: "recent dismissal suppresses",
			st:   banner.State{Dismissed: true, DismissedAt: now.Add(-time.Hour).UnixMilli()},
			want: false,
		},
		{
			name: "just inside the window still suppressed",
			st:   banner.State{Dismissed: true, DismissedAt: now.Add(-banner.DismissWindow + time.Second).UnixMilli()},
			want: false,
		},
		{
			name: "window elapsed makes it eligible",
			st:   banner.State{Dismissed: true, DismissedAt: now.Add(-banner.DismissWindow).UnixMilli()},
			want: true,
		},
		{
			name: "installed wins over expired dismissal",
			st:   banner.State{InstalledOnce: true, Dismissed: true, DismissedAt: now.Add(-30 * 24 * time.Hour).UnixMilli()},
			want: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.st.Eligible(now))
		})
	}
}

// roundTrip replays the cookies a response set onto a fresh request, the way a
// browser would on the next page load.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStoreDismissRoundTrip(t *testing.T) {
	t.Parallel()

	store := banner.NewStore(testKey, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	rec := httptest.NewRecorder()
	st, err := store.Dismiss(rec, httptest.NewRequest(http.MethodPost, "/", nil), now)
	require.NoError(t, err)
	require.True(t, st.Dismissed)
	require.Equal(t, now.UnixMilli(), st.DismissedAt)

	got := store.Get(roundTrip(rec))
	require.True(t, got.Dismissed)
	require.Equal(t, now.UnixMilli(), got.DismissedAt)
	require.False(t, got.Eligible(now.Add(24*time.Hour)))
	require.True(t, got.Eligible(now.Add(8*24*time.Hour)))
}

func TestStoreMarkInstalledPersists(t *testing.T) {
	t.Parallel()

	store := banner.NewStore(testKey, nil)

	rec := httptest.NewRecorder()
	st, err := store.MarkInstalled(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, err)
	require.True(t, st.InstalledOnce)

	got := store.Get(roundTrip(rec))
	require.True(t, got.InstalledOnce)
	require.False(t, got.Eligible(time.Now()))
}

func TestClearExpiredDismissal(t *testing.T) {
	t.Parallel()

	store := banner.NewStore(testKey, nil)
	dismissedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec := httptest.NewRecorder()
	_, err := store.Dismiss(rec, httptest.NewRequest(http.MethodPost, "/", nil), dismissedAt)
	require.NoError(t, err)

	// Within the window nothing changes and no cookie is rewritten.
	rec2 := httptest.NewRecorder()
	st, err := store.ClearExpiredDismissal(rec2, roundTrip(rec), dismissedAt.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, st.Dismissed)
	require.Empty(t, rec2.Result().Header["Set-Cookie"], "no write expected while dismissal is live")

	// Past the window the dismissal is dropped and persisted.
	rec3 := httptest.NewRecorder()
	st, err = store.ClearExpiredDismissal(rec3, roundTrip(rec), dismissedAt.Add(banner.DismissWindow+time.Minute))
	require.NoError(t, err)
	require.False(t, st.Dismissed)
	require.Zero(t, st.DismissedAt)
	require.NotEmpty(t, rec3.Result().Header["Set-Cookie"])

	got := store.Get(roundTrip(rec3))
	require.False(t, got.Dismissed)
}

func TestGetTamperedCookieResetsToZeroState(t *testing.T) {
	t.Parallel()

	store := banner.NewStore(testKey, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: banner.CookieName, Value: "not-a-signed-blob"})

	got := store.Get(req)
	require.Equal(t, banner.State{}, got)
	require.True(t, got.Eligible(time.Now()))
}

func TestStoresWithDifferentKeysDoNotTrustEachOther(t *testing.T) {
	t.Parallel()

	a := banner.NewStore([]byte("key-a-key-a-key-a-key-a-key-a-aa"), nil)
	b := banner.NewStore([]byte("key-b-key-b-key-b-key-b-key-b-bb"), nil)

	rec := httptest.NewRecorder()
	_, err := a.MarkInstalled(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, err)

	got := b.Get(roundTrip(rec))
	require.Equal(t, banner.State{}, got)
}
