package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

const defaultTimeout = 8 * time.Second

// Client provides read access to the CMS content API and write access to the
// inquiry endpoints. All state fetched through it is remotely owned; the
// client holds only transient copies and a couple of small TTL caches.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	suggestMu     sync.Mutex
	suggestLoaded bool
	suggestions   []Suggestion

	chromeMu    sync.RWMutex
	chromeCache map[string]chromeEntry
}

// NewClient constructs a Client for the given backend origin. A nil logger
// is replaced with a no-op one.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:        &http.Client{Timeout: defaultTimeout},
		log:         log,
		chromeCache: map[string]chromeEntry{},
	}
}

// BaseURL returns the configured backend origin, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildAPIURL joins the backend origin with an endpoint path, normalizing to
// exactly one slash at the join point. Endpoint contents are not validated;
// a malformed endpoint yields a malformed URL, not an error.
func (c *Client) BuildAPIURL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// BuildMediaURL turns a backend-relative media path into an absolute URL.
// Empty input stays empty, absolute http(s) URLs pass through unchanged, and
// everything else is prefixed with the origin plus a /media/ segment when the
// path does not already carry one.
func (c *Client) BuildMediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	p := strings.TrimLeft(path, "/")
	if !strings.HasPrefix(p, "media/") {
		p = "media/" + p
	}
	return c.baseURL + "/" + p
}

// envelope matches the DRF paginated response shape.
type envelope struct {
	Results json.RawMessage `json:"results"`
}

// getJSON issues a GET and decodes the body into out. Paginated envelopes
// ({"results": [...]}) are unwrapped transparently so callers always decode
// the inner payload.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildAPIURL(endpoint), nil)
	if err != nil {
		return fmt.Errorf("cms: build request %s: %w", endpoint, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cms: get %s: status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("cms: read %s: %w", endpoint, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Results != nil {
		body = env.Results
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("cms: decode %s: %w", endpoint, err)
	}
	return nil
}

// postJSON issues a POST with a JSON body. Extra headers may be supplied by
// the caller (e.g. an idempotency key). The decoded response body is written
// into out when out is non-nil and the response carries JSON.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, headers map[string]string, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cms: encode %s: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BuildAPIURL(endpoint), bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("cms: build request %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode >= 400 {
		if verr := parseValidationError(body); verr != nil {
			return verr
		}
		return fmt.Errorf("cms: post %s: status %d: %s", endpoint, resp.StatusCode, drainError(body))
	}
	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("cms: decode %s: %w", endpoint, err)
		}
	}
	return nil
}

func drainError(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 256 {
		s = s[:256]
	}
	return s
}
