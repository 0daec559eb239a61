package main

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	"github.com/aurelia-studios/aurelia-web/internal/format"
	"github.com/aurelia-studios/aurelia-web/internal/markup"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
	"github.com/aurelia-studios/aurelia-web/internal/seo"
)

// blogExcerptRunes bounds listing-card excerpts and meta descriptions.
const blogExcerptRunes = 160

// BlogData is the view model for the blog listing page.
type BlogData struct {
	Page
	Categories []cms.BlogCategory
	Selected   string
	Posts      []BlogCardView
	PostsErr   bool
	Featured   []BlogCardView
}

// BlogCardView is one listing card with display-formatted dates.
type BlogCardView struct {
	cms.BlogPost
	Published string
	Relative  string
}

// BlogPostData is the view model for a post detail page.
type BlogPostData struct {
	Page
	Post      cms.BlogPost
	Body      template.HTML
	Published string
}

// BlogHandler renders the post listing, optionally filtered by category.
func BlogHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := r.URL.Query().Get("category")
	data := BlogData{
		Page:     newPage(r, "Blog", "Planning guides, venue notes and stories from recent shoots."),
		Selected: selected,
	}
	data.Categories, _ = cmsClient.ListBlogCategories(ctx)

	posts, err := cmsClient.ListBlogPosts(ctx, cms.ListBlogPostsOptions{Category: selected})
	if err != nil {
		mw.Logger(ctx).Warn("blog posts unavailable", zap.Error(err))
		data.PostsErr = true
	}
	data.Posts = buildBlogCards(posts)

	featured, _ := cmsClient.ListFeaturedBlogPosts(ctx)
	data.Featured = buildBlogCards(featured)
	render(w, r, "page_blog", data)
}

// BlogPostHandler renders one post; the markdown body is rendered and
// sanitized before it reaches the template.
func BlogPostHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	post, err := cmsClient.GetBlogPost(ctx, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		mw.Logger(ctx).Warn("blog post unavailable", zap.String("slug", slug), zap.Error(err))
		mw.Error(w, r, http.StatusBadGateway, "this post is unavailable right now")
		return
	}

	body, err := markup.Render(post.Body)
	if err != nil {
		mw.Logger(ctx).Error("blog post render failed", zap.String("slug", slug), zap.Error(err))
		mw.Error(w, r, http.StatusInternalServerError, "this post could not be rendered")
		return
	}

	description := post.Summary
	if description == "" {
		description = markup.Excerpt(body, blogExcerptRunes)
	}
	data := BlogPostData{
		Page:      newPage(r, post.Title, description, "", post.Title),
		Post:      post,
		Body:      body,
		Published: format.Date(post.PublishedAt),
	}
	data.Meta.OGType = "article"
	data.Meta.OGImage = post.CoverURL
	data.Meta.JSONLD = append(data.Meta.JSONLD, seo.Article(post.Title, description, post.CoverURL, post.Author, post.PublishedAt))
	render(w, r, "page_blog_post", data)
}

func buildBlogCards(posts []cms.BlogPost) []BlogCardView {
	cards := make([]BlogCardView, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, BlogCardView{
			BlogPost:  p,
			Published: format.Date(p.PublishedAt),
			Relative:  format.RelDate(p.PublishedAt),
		})
	}
	return cards
}
