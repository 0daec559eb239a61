package cms

import (
	"context"
	"sort"
)

// HeroSlide is one image in the landing-page slider.
type HeroSlide struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
	Caption  string `json:"caption"`
	Order    int    `json:"order"`
}

// ShowcaseImage is a gallery thumbnail consumed by the grid and the lightbox.
type ShowcaseImage struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
	Order    int    `json:"order"`
}

// VideoTestimonial carries an embedded customer video plus a rating in [0,5].
type VideoTestimonial struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// TextTestimonial is a written customer review with a rating in [0,5].
type TextTestimonial struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatar_url"`
	EventType string `json:"event_type"`
}

// FAQ is a question/answer pair; which one is expanded is purely view state.
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

// Achievement is an animated counter (events shot, happy couples, ...).
// CountValue may be fractional, e.g. 4.9 for an average rating.
type Achievement struct {
	ID         int     `json:"id"`
	Label      string  `json:"label"`
	CountValue float64 `json:"count_value"`
	Suffix     string  `json:"suffix"`
	IconType   string  `json:"icon_type"`
}

// VideoShowcase is the reel section on the landing page.
type VideoShowcase struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	VideoURL  string `json:"video_url"`
	PosterURL string `json:"poster_url"`
}

// ListHeroSlides returns slider images sorted by their display order. An empty
// backend result is a valid, empty slice.
func (c *Client) ListHeroSlides(ctx context.Context) ([]HeroSlide, error) {
	slides := []HeroSlide{}
	if err := c.getJSON(ctx, "/api/home/hero-slides/", nil, &slides); err != nil {
		return nil, err
	}
	for i := range slides {
		slides[i].ImageURL = c.BuildMediaURL(slides[i].ImageURL)
	}
	sort.SliceStable(slides, func(i, j int) bool { return slides[i].Order < slides[j].Order })
	return slides, nil
}

// ListShowcaseImages returns the gallery images in display order.
func (c *Client) ListShowcaseImages(ctx context.Context) ([]ShowcaseImage, error) {
	images := []ShowcaseImage{}
	if err := c.getJSON(ctx, "/api/home/showcase-images/", nil, &images); err != nil {
		return nil, err
	}
	for i := range images {
		images[i].ImageURL = c.BuildMediaURL(images[i].ImageURL)
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].Order < images[j].Order })
	return images, nil
}

// ListVideoTestimonials returns customer video testimonials.
func (c *Client) ListVideoTestimonials(ctx context.Context) ([]VideoTestimonial, error) {
	items := []VideoTestimonial{}
	if err := c.getJSON(ctx, "/api/home/video-testimonials/", nil, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Rating = clampRating(items[i].Rating)
		items[i].ThumbnailURL = c.BuildMediaURL(items[i].ThumbnailURL)
	}
	return items, nil
}

// ListTextTestimonials returns written customer testimonials.
func (c *Client) ListTextTestimonials(ctx context.Context) ([]TextTestimonial, error) {
	items := []TextTestimonial{}
	if err := c.getJSON(ctx, "/api/home/text-testimonials/", nil, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Rating = clampRating(items[i].Rating)
		items[i].AvatarURL = c.BuildMediaURL(items[i].AvatarURL)
	}
	return items, nil
}

// ListFAQs returns the FAQ entries in display order.
func (c *Client) ListFAQs(ctx context.Context) ([]FAQ, error) {
	faqs := []FAQ{}
	if err := c.getJSON(ctx, "/api/home/faqs/", nil, &faqs); err != nil {
		return nil, err
	}
	sort.SliceStable(faqs, func(i, j int) bool { return faqs[i].Order < faqs[j].Order })
	return faqs, nil
}

// ListAchievements returns the counter figures for the achievements strip.
func (c *Client) ListAchievements(ctx context.Context) ([]Achievement, error) {
	items := []Achievement{}
	if err := c.getJSON(ctx, "/api/home/achievements/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetVideoShowcase returns the landing-page reel, or ErrNotFound when none is
// published.
func (c *Client) GetVideoShowcase(ctx context.Context) (VideoShowcase, error) {
	var v VideoShowcase
	if err := c.getJSON(ctx, "/api/home/video-showcase/", nil, &v); err != nil {
		return VideoShowcase{}, err
	}
	v.PosterURL = c.BuildMediaURL(v.PosterURL)
	return v, nil
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
