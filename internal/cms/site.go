package cms

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Header carries the chrome data the navbar needs on every page.
type Header struct {
	Brand       BrandInfo    `json:"brand"`
	Contact     ContactInfo  `json:"contact"`
	SocialMedia []SocialLink `json:"social_media"`
}

// BrandInfo is the site identity block.
type BrandInfo struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	LogoURL string `json:"logo_url"`
}

// ContactInfo is the business contact block shown in header and footer.
type ContactInfo struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// SocialLink is one social media profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IconType string `json:"icon_type"`
}

// Footer is the page footer content.
type Footer struct {
	AboutText   string       `json:"about_text"`
	Contact     ContactInfo  `json:"contact"`
	SocialMedia []SocialLink `json:"social_media"`
	Copyright   string       `json:"copyright"`
}

const chromeCacheTTL = 5 * time.Minute

type chromeEntry struct {
	header  Header
	footer  Footer
	kind    string
	expires time.Time
}

// GetHeader returns the navbar chrome. This is the one fetcher with a
// hard-coded fallback: the phone number and brand name must never disappear,
// so any error is logged and the static fallback is served instead.
func (c *Client) GetHeader(ctx context.Context) Header {
	if h, ok := c.cachedHeader(); ok {
		return h
	}
	var h Header
	if err := c.getJSON(ctx, "/api/site/header/", nil, &h); err != nil {
		c.log.Warn("cms: header fetch failed, serving fallback", zap.Error(err))
		return fallbackHeader
	}
	h.Brand.LogoURL = c.BuildMediaURL(h.Brand.LogoURL)
	if h.Brand.Name == "" {
		h.Brand = fallbackHeader.Brand
	}
	if h.Contact.Phone == "" {
		h.Contact = fallbackHeader.Contact
	}
	c.storeHeader(h)
	return h
}

// GetFooter returns the footer content. Unlike the header there is no static
// fallback; callers render an empty footer state on error.
func (c *Client) GetFooter(ctx context.Context) (Footer, error) {
	if f, ok := c.cachedFooter(); ok {
		return f, nil
	}
	var f Footer
	if err := c.getJSON(ctx, "/api/site/footer/", nil, &f); err != nil {
		return Footer{}, err
	}
	c.storeFooter(f)
	return f, nil
}

func (c *Client) cachedHeader() (Header, bool) {
	c.chromeMu.RLock()
	defer c.chromeMu.RUnlock()
	e, ok := c.chromeCache["header"]
	if !ok || time.Now().After(e.expires) {
		return Header{}, false
	}
	return e.header, true
}

func (c *Client) storeHeader(h Header) {
	c.chromeMu.Lock()
	defer c.chromeMu.Unlock()
	c.chromeCache["header"] = chromeEntry{header: h, kind: "header", expires: time.Now().Add(chromeCacheTTL)}
}

func (c *Client) cachedFooter() (Footer, bool) {
	c.chromeMu.RLock()
	defer c.chromeMu.RUnlock()
	e, ok := c.chromeCache["footer"]
	if !ok || time.Now().After(e.expires) {
		return Footer{}, false
	}
	return e.footer, true
}

func (c *Client) storeFooter(f Footer) {
	c.chromeMu.Lock()
	defer c.chromeMu.Unlock()
	c.chromeCache["footer"] = chromeEntry{footer: f, kind: "footer", expires: time.Now().Add(chromeCacheTTL)}
}
