package cms

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"
)

// SearchResult is one hit in the site-wide search. URL is the page the result
// navigates to when selected.
type SearchResult struct {
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// Suggestion is a static prompt shown before the visitor has typed a query.
type Suggestion struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// MinSearchQueryLen is the shortest query that reaches the backend; anything
// shorter clears results without a request.
const MinSearchQueryLen = 2

// Search runs the site-wide search. Queries shorter than MinSearchQueryLen
// (in runes, after trimming) never hit the network and return an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQueryLen {
		return []SearchResult{}, nil
	}
	q := url.Values{"q": []string{query}}
	results := []SearchResult{}
	if err := c.getJSON(ctx, "/api/search/", q, &results); err != nil {
		return nil, err
	}
	for i := range results {
		results[i].ImageURL = c.BuildMediaURL(results[i].ImageURL)
	}
	return results, nil
}

// Suggestions returns the static suggestion list. It is loaded at most once
// per Client instance; a failed load is retried on the next call rather than
// cached, so a transient outage does not pin an empty list forever.
func (c *Client) Suggestions(ctx context.Context) ([]Suggestion, error) {
	c.suggestMu.Lock()
	defer c.suggestMu.Unlock()
	if c.suggestLoaded {
		out := make([]Suggestion, len(c.suggestions))
		copy(out, c.suggestions)
		return out, nil
	}
	items := []Suggestion{}
	if err := c.getJSON(ctx, "/api/search/suggestions/", nil, &items); err != nil {
		return nil, err
	}
	c.suggestions = items
	c.suggestLoaded = true
	out := make([]Suggestion, len(items))
	copy(out, items)
	return out, nil
}
