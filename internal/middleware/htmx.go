package middleware

import (
	"encoding/json"
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can adapt responses
// (fragment vs. full page, JSON errors vs. plain text).
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}

// Trigger sets the HX-Trigger header with the given event names. This is the
// page-level publish/subscribe channel: independently mounted components
// (e.g. the navbar listening for banner visibility) react to these events
// without any parent/child wiring.
func Trigger(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	payload := make(map[string]any, len(events))
	for _, e := range events {
		payload[e] = struct{}{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(raw))
}
