package cms_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
)

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	c := cms.NewClient("http://localhost:8000/", nil)

	tests := []struct {
		endpoint string
		want     string
	}{
		{"/api/home/hero-slides/", "http://localhost:8000/api/home/hero-slides/"},
		{"api/home/hero-slides/", "http://localhost:8000/api/home/hero-slides/"},
		{"//api/search/", "http://localhost:8000/api/search/"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, c.BuildAPIURL(tc.endpoint))
	}
}

func TestBuildMediaURL(t *testing.T) {
	t.Parallel()

	c := cms.NewClient("http://localhost:8000", nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "absolute http passes through", in: "http://cdn.example.com/a.jpg", want: "http://cdn.example.com/a.jpg"},
		{name: "absolute https passes through", in: "https://cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		{name: "bare path gets media prefix", in: "hero/slide1.jpg", want: "http://localhost:8000/media/hero/slide1.jpg"},
		{name: "leading slash normalized", in: "/hero/slide1.jpg", want: "http://localhost:8000/media/hero/slide1.jpg"},
		{name: "existing media prefix not doubled", in: "/media/hero/slide1.jpg", want: "http://localhost:8000/media/hero/slide1.jpg"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, c.BuildMediaURL(tc.in))
		})
	}
}

func TestListHeroSlidesUnwrapsPaginatedEnvelope(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/home/hero-slides/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":2,"results":[
			{"id":2,"image_url":"hero/b.jpg","order":2},
			{"id":1,"image_url":"hero/a.jpg","order":1}
		]}`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	slides, err := c.ListHeroSlides(context.Background())
	require.NoError(t, err)
	require.Len(t, slides, 2)
	require.Equal(t, 1, slides[0].ID, "slides sorted by display order")
	require.Equal(t, ts.URL+"/media/hero/a.jpg", slides[0].ImageURL)
}

func TestListHeroSlidesPlainArrayBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"image_url":"https://cdn.example.com/a.jpg","order":1}]`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	slides, err := c.ListHeroSlides(context.Background())
	require.NoError(t, err)
	require.Len(t, slides, 1)
	require.Equal(t, "https://cdn.example.com/a.jpg", slides[0].ImageURL)
}

func TestGetBlogPostNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	_, err := c.GetBlogPost(context.Background(), "missing-post")
	require.ErrorIs(t, err, cms.ErrNotFound)
}

func TestTestimonialRatingsClamped(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"A","rating":9,"quote":"great"},
			{"id":2,"name":"B","rating":-1,"quote":"hmm"}
		]`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	items, err := c.ListTextTestimonials(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, items[0].Rating)
	require.Equal(t, 0, items[1].Rating)
}

func TestSearchShortQuerySkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	for _, q := range []string{"", "a", " a ", "\t"} {
		results, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		require.Empty(t, results)
	}
	require.Zero(t, calls.Load(), "queries shorter than the minimum must not reach the backend")

	_, err := c.Search(context.Background(), "we")
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestSearchCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "写真", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	_, err := c.Search(context.Background(), "写真")
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load(), "two multibyte runes meet the minimum length")
}

func TestSuggestionsLoadedOncePerClient(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[{"label":"Wedding photography","url":"/portfolio"}]`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	for i := 0; i < 3; i++ {
		got, err := c.Suggestions(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
	require.Equal(t, int32(1), calls.Load())
}

func TestSuggestionsFailedLoadRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"label":"Candid shoots","url":"/gallery"}]`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	_, err := c.Suggestions(context.Background())
	require.Error(t, err)

	got, err := c.Suggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int32(2), calls.Load())
}

func TestGetHeaderFallsBackOnError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	h := c.GetHeader(context.Background())
	require.Equal(t, "Aurelia Studios", h.Brand.Name)
	require.NotEmpty(t, h.Contact.Phone, "fallback must keep the phone number reachable")
}

func TestGetHeaderCachesWithinTTL(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"brand":{"name":"Aurelia Studios","tagline":"t"},"contact":{"phone":"+91 90000 00000"}}`))
	}))
	t.Cleanup(ts.Close)

	c := cms.NewClient(ts.URL, nil)
	first := c.GetHeader(context.Background())
	second := c.GetHeader(context.Background())
	require.Equal(t, first, second)
	require.Equal(t, int32(1), calls.Load())
}
