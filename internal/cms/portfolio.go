package cms

import (
	"context"
	"net/url"
)

// PortfolioCategory groups portfolios (weddings, corporate, portraits, ...).
type PortfolioCategory struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Portfolio is one shoot/event album.
type Portfolio struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	CoverURL string `json:"cover_image_url"`
}

// PortfolioImage is one image inside an album.
type PortfolioImage struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
	Order    int    `json:"order"`
}

// PortfolioVideo is a film attached to an album.
type PortfolioVideo struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
}

// ListPortfolioCategories returns the portfolio filter tabs.
func (c *Client) ListPortfolioCategories(ctx context.Context) ([]PortfolioCategory, error) {
	cats := []PortfolioCategory{}
	if err := c.getJSON(ctx, "/api/portfolio/categories/", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListPortfolios returns albums, optionally filtered by category slug.
func (c *Client) ListPortfolios(ctx context.Context, category string) ([]Portfolio, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	items := []Portfolio{}
	if err := c.getJSON(ctx, "/api/portfolio/portfolios/", q, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].CoverURL = c.BuildMediaURL(items[i].CoverURL)
	}
	return items, nil
}

// ListPortfolioImages returns the images of one album in display order.
func (c *Client) ListPortfolioImages(ctx context.Context, slug string) ([]PortfolioImage, error) {
	images := []PortfolioImage{}
	if err := c.getJSON(ctx, "/api/portfolio/"+url.PathEscape(slug)+"/images/", nil, &images); err != nil {
		return nil, err
	}
	for i := range images {
		images[i].ImageURL = c.BuildMediaURL(images[i].ImageURL)
	}
	return images, nil
}

// ListPortfolioVideos returns the films of one album.
func (c *Client) ListPortfolioVideos(ctx context.Context, slug string) ([]PortfolioVideo, error) {
	videos := []PortfolioVideo{}
	if err := c.getJSON(ctx, "/api/portfolio/"+url.PathEscape(slug)+"/videos/", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
