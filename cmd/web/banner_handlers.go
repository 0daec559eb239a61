package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/banner"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
)

// BannerData is the view model for the install banner fragment.
type BannerData struct {
	Visible bool
}

// BannerFrag is polled by the page script after it has probed the install
// environment. Query params report live browser signals: installed=1 when a
// standalone display mode (or the iOS/Android equivalents) is detected,
// prompt=1 once the native install-available event has fired. The banner
// becomes visible only when the persisted state allows it AND the prompt
// signal is present, never before the native event.
func BannerFrag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	q := r.URL.Query()

	if q.Get("installed") == "1" {
		if _, err := bannerStore.MarkInstalled(w, r); err != nil {
			mw.Logger(ctx).Warn("banner state write failed", zap.Error(err))
		}
		renderBanner(w, r, false)
		return
	}

	state, err := bannerStore.ClearExpiredDismissal(w, r, now)
	if err != nil {
		mw.Logger(ctx).Warn("banner state write failed", zap.Error(err))
	}
	visible := state.Eligible(now) && q.Get("prompt") == "1"
	renderBanner(w, r, visible)
}

// BannerDismissHandler records a dismissal, hiding the banner for the
// seven-day window.
func BannerDismissHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := bannerStore.Dismiss(w, r, time.Now()); err != nil {
		mw.Logger(r.Context()).Warn("banner state write failed", zap.Error(err))
	}
	renderBanner(w, r, false)
}

// BannerAcceptedHandler fires when the visitor accepts the native install
// prompt; the banner is retired permanently.
func BannerAcceptedHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := bannerStore.MarkInstalled(w, r); err != nil {
		mw.Logger(r.Context()).Warn("banner state write failed", zap.Error(err))
	}
	renderBanner(w, r, false)
}

// BannerInstalledHandler fires on the browser's appinstalled signal, covering
// installs that bypass our banner.
func BannerInstalledHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := bannerStore.MarkInstalled(w, r); err != nil {
		mw.Logger(r.Context()).Warn("banner state write failed", zap.Error(err))
	}
	renderBanner(w, r, false)
}

// renderBanner emits the fragment plus the visibility event the navbar
// listens for to adjust its layout offset.
func renderBanner(w http.ResponseWriter, r *http.Request, visible bool) {
	if visible {
		mw.Trigger(w, banner.EventVisible)
	} else {
		mw.Trigger(w, banner.EventHidden)
	}
	renderTemplate(w, r, "frag_pwa_banner", BannerData{Visible: visible})
}
