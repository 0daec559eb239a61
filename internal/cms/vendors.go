package cms

import (
	"context"
	"net/url"
)

// VendorCategory is a top-level directory bucket; Slug is the route key.
type VendorCategory struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	VendorCount int    `json:"vendor_count"`
}

// VendorSubCategory refines a category (e.g. "Decor" → "Floral").
type VendorSubCategory struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	VendorCount int    `json:"vendor_count"`
}

// VendorProfile is a single directory listing. Slug is unique per vendor and
// doubles as the profile route parameter.
type VendorProfile struct {
	ID           int                 `json:"id"`
	Slug         string              `json:"slug"`
	Name         string              `json:"name"`
	Rating       float64             `json:"rating"`
	City         string              `json:"city"`
	About        string              `json:"about"`
	PhoneNumber  string              `json:"phone_number"`
	Images       []VendorImage       `json:"images"`
	Services     []VendorService     `json:"services"`
	Testimonials []VendorTestimonial `json:"testimonials"`
	Featured     bool                `json:"featured"`
}

// VendorImage is one portfolio image on a vendor profile.
type VendorImage struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

// VendorService is a priced service line on a vendor profile.
type VendorService struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// VendorTestimonial is a review attached to a vendor profile.
type VendorTestimonial struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Quote  string `json:"quote"`
}

// ListVendorCategories returns the directory's top-level categories.
func (c *Client) ListVendorCategories(ctx context.Context) ([]VendorCategory, error) {
	cats := []VendorCategory{}
	if err := c.getJSON(ctx, "/api/vendors/categories/", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListVendorSubCategories returns subcategories for a category slug. An empty
// slug returns every subcategory.
func (c *Client) ListVendorSubCategories(ctx context.Context, category string) ([]VendorSubCategory, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	subs := []VendorSubCategory{}
	if err := c.getJSON(ctx, "/api/vendors/subcategories/", q, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// ListVendorProfiles returns profile cards filtered by category/subcategory.
func (c *Client) ListVendorProfiles(ctx context.Context, category, subcategory string) ([]VendorProfile, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if subcategory != "" {
		q.Set("subcategory", subcategory)
	}
	profiles := []VendorProfile{}
	if err := c.getJSON(ctx, "/api/vendors/profiles/", q, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		c.normalizeVendorMedia(&profiles[i])
	}
	return profiles, nil
}

// ListFeaturedVendors returns profiles flagged for the landing-page rail.
func (c *Client) ListFeaturedVendors(ctx context.Context) ([]VendorProfile, error) {
	profiles := []VendorProfile{}
	if err := c.getJSON(ctx, "/api/vendors/featured/", nil, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		c.normalizeVendorMedia(&profiles[i])
	}
	return profiles, nil
}

// GetVendorProfile fetches one vendor by slug, with images, services and
// testimonials embedded.
func (c *Client) GetVendorProfile(ctx context.Context, slug string) (VendorProfile, error) {
	var p VendorProfile
	if err := c.getJSON(ctx, "/api/vendors/profiles/"+url.PathEscape(slug)+"/", nil, &p); err != nil {
		return VendorProfile{}, err
	}
	c.normalizeVendorMedia(&p)
	return p, nil
}

func (c *Client) normalizeVendorMedia(p *VendorProfile) {
	for i := range p.Images {
		p.Images[i].ImageURL = c.BuildMediaURL(p.Images[i].ImageURL)
	}
	for i := range p.Testimonials {
		p.Testimonials[i].Rating = clampRating(p.Testimonials[i].Rating)
	}
}
