// Package banner owns the install-banner persistence: a single signed cookie
// mirroring the {dismissed, dismissedAt, installedOnce} blob, with every
// read-modify-write funneled through one Store so no second call site ever
// parses the cookie independently.
package banner

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// CookieName is the persisted state key.
const CookieName = "pwa-banner-state"

// DismissWindow is how long a dismissal suppresses the banner.
const DismissWindow = 7 * 24 * time.Hour

// Event names broadcast to the page (via HX-Trigger) so the independently
// mounted navbar can adjust its offset. Kept here so both components share
// one definition instead of ambient string literals.
const (
	EventVisible = "pwa-banner-visible"
	EventHidden  = "pwa-banner-hidden"
)

// State is the persisted banner record. DismissedAt is epoch milliseconds to
// match what the original storage blob held.
type State struct {
	Dismissed     bool
	DismissedAt   int64
	InstalledOnce bool
}

// Eligible reports whether the banner may become visible at now. Installed
// apps never see it again; a live dismissal suppresses it until the window
// elapses.
func (s State) Eligible(now time.Time) bool {
	if s.InstalledOnce {
		return false
	}
	if s.Dismissed && !s.DismissExpired(now) {
		return false
	}
	return true
}

// DismissExpired reports whether a recorded dismissal has aged out.
func (s State) DismissExpired(now time.Time) bool {
	if !s.Dismissed {
		return false
	}
	dismissedAt := time.UnixMilli(s.DismissedAt)
	return now.Sub(dismissedAt) >= DismissWindow
}

// Store reads and writes the banner cookie.
type Store struct {
	cookies *sessions.CookieStore
	log     *zap.Logger
}

// NewStore builds a Store signing the cookie with key.
func NewStore(key []byte, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs, log: log}
}

// Get re-reads the current state from the request. A missing or undecodable
// cookie yields the zero state; staleness is impossible because callers never
// hold a State across requests.
func (s *Store) Get(r *http.Request) State {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil {
		// Tampered or legacy cookie; start fresh.
		s.log.Debug("banner: reset undecodable state cookie", zap.Error(err))
		return State{}
	}
	var st State
	if v, ok := sess.Values["dismissed"].(bool); ok {
		st.Dismissed = v
	}
	if v, ok := sess.Values["dismissedAt"].(int64); ok {
		st.DismissedAt = v
	}
	if v, ok := sess.Values["installedOnce"].(bool); ok {
		st.InstalledOnce = v
	}
	return st
}

// Dismiss records a dismissal at now and persists it.
func (s *Store) Dismiss(w http.ResponseWriter, r *http.Request, now time.Time) (State, error) {
	st := s.Get(r)
	st.Dismissed = true
	st.DismissedAt = now.UnixMilli()
	return st, s.save(w, r, st)
}

// MarkInstalled permanently retires the banner. Fired on prompt acceptance
// and on the appinstalled signal; also used when an installed display mode is
// detected at mount.
func (s *Store) MarkInstalled(w http.ResponseWriter, r *http.Request) (State, error) {
	st := s.Get(r)
	st.InstalledOnce = true
	return st, s.save(w, r, st)
}

// ClearExpiredDismissal drops a dismissal whose window has elapsed, making
// the banner eligible again. No-op (and no write) when nothing expired.
func (s *Store) ClearExpiredDismissal(w http.ResponseWriter, r *http.Request, now time.Time) (State, error) {
	st := s.Get(r)
	if !st.DismissExpired(now) {
		return st, nil
	}
	st.Dismissed = false
	st.DismissedAt = 0
	return st, s.save(w, r, st)
}

func (s *Store) save(w http.ResponseWriter, r *http.Request, st State) error {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil {
		sess, _ = s.cookies.New(r, CookieName)
	}
	sess.Values["dismissed"] = st.Dismissed
	sess.Values["dismissedAt"] = st.DismissedAt
	sess.Values["installedOnce"] = st.InstalledOnce
	return sess.Save(r, w)
}
