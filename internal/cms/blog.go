package cms

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// BlogCategory groups posts; Slug is the route key.
type BlogCategory struct {
	ID        int    `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	PostCount int    `json:"post_count"`
}

// BlogPost is a listing entry; Body is present only on the detail endpoint
// and arrives as markdown.
type BlogPost struct {
	ID          int       `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	CoverURL    string    `json:"cover_image_url"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Featured    bool      `json:"featured"`
}

// ListBlogPostsOptions filters the post listing.
type ListBlogPostsOptions struct {
	Category string
	Limit    int
}

// ListBlogCategories returns all blog categories.
func (c *Client) ListBlogCategories(ctx context.Context) ([]BlogCategory, error) {
	cats := []BlogCategory{}
	if err := c.getJSON(ctx, "/api/blog/categories/", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListBlogPosts returns published posts, optionally filtered by category slug.
func (c *Client) ListBlogPosts(ctx context.Context, opts ListBlogPostsOptions) ([]BlogPost, error) {
	q := url.Values{}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	posts := []BlogPost{}
	if err := c.getJSON(ctx, "/api/blog/posts/", q, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].CoverURL = c.BuildMediaURL(posts[i].CoverURL)
	}
	return posts, nil
}

// ListFeaturedBlogPosts returns the posts flagged for the featured rail.
func (c *Client) ListFeaturedBlogPosts(ctx context.Context) ([]BlogPost, error) {
	posts := []BlogPost{}
	if err := c.getJSON(ctx, "/api/blog/featured/", nil, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].CoverURL = c.BuildMediaURL(posts[i].CoverURL)
	}
	return posts, nil
}

// GetBlogPost fetches one post by slug, including its markdown body.
func (c *Client) GetBlogPost(ctx context.Context, slug string) (BlogPost, error) {
	var post BlogPost
	if err := c.getJSON(ctx, "/api/blog/posts/"+url.PathEscape(slug)+"/", nil, &post); err != nil {
		return BlogPost{}, err
	}
	post.CoverURL = c.BuildMediaURL(post.CoverURL)
	return post, nil
}
