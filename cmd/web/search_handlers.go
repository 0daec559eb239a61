package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
)

// searchDebounceMS is the htmx trigger delay on the query input: at most one
// results request per unchanged-input window.
const searchDebounceMS = 300

// SearchOverlayData is the view model for the expanded search overlay.
type SearchOverlayData struct {
	Suggestions    []cms.Suggestion
	SuggestionsErr bool
	DebounceMS     int
	MinQueryLen    int
}

// SearchResultsData is the view model for the results list fragment.
type SearchResultsData struct {
	Query   string
	Results []cms.SearchResult
	Err     bool
}

// SearchOverlayFrag renders the expanded search bar. Suggestions are loaded
// once per process (the cms client memoizes them) so reopening the overlay
// does not refetch.
func SearchOverlayFrag(w http.ResponseWriter, r *http.Request) {
	data := SearchOverlayData{DebounceMS: searchDebounceMS, MinQueryLen: cms.MinSearchQueryLen}
	suggestions, err := cmsClient.Suggestions(r.Context())
	if err != nil {
		mw.Logger(r.Context()).Warn("search suggestions unavailable", zap.Error(err))
		data.SuggestionsErr = true
	}
	data.Suggestions = suggestions
	renderTemplate(w, r, "frag_search_overlay", data)
}

// SearchResultsFrag renders results for the debounced query. Queries below
// the minimum length clear the list without touching the backend; the cms
// client enforces the same guard.
func SearchResultsFrag(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	data := SearchResultsData{Query: query}
	results, err := cmsClient.Search(r.Context(), query)
	if err != nil {
		mw.Logger(r.Context()).Warn("search failed", zap.String("query", query), zap.Error(err))
		data.Err = true
	}
	data.Results = results
	renderTemplate(w, r, "frag_search_results", data)
}
