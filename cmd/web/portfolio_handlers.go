package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
)

// PortfolioData is the view model for the album listing page.
type PortfolioData struct {
	Page
	Categories []cms.PortfolioCategory
	Selected   string
	Albums     []cms.Portfolio
	AlbumsErr  bool
}

// PortfolioAlbumData is the view model for a single album page. Its images
// feed the same lightbox machinery as the gallery.
type PortfolioAlbumData struct {
	Page
	Slug      string
	Images    []cms.PortfolioImage
	Videos    []cms.PortfolioVideo
	ImagesErr bool
}

// PortfolioHandler renders the album grid with category filter tabs.
func PortfolioHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := r.URL.Query().Get("category")
	data := PortfolioData{
		Page:     newPage(r, "Portfolio", "Complete albums from weddings and events we have covered."),
		Selected: selected,
	}
	data.Categories, _ = cmsClient.ListPortfolioCategories(ctx)

	albums, err := cmsClient.ListPortfolios(ctx, selected)
	if err != nil {
		mw.Logger(ctx).Warn("portfolios unavailable", zap.Error(err))
		data.AlbumsErr = true
	}
	data.Albums = albums
	render(w, r, "page_portfolio", data)
}

// PortfolioAlbumHandler renders one album's images and films.
func PortfolioAlbumHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	data := PortfolioAlbumData{
		Page: newPage(r, "Portfolio", ""),
		Slug: slug,
	}

	images, err := cmsClient.ListPortfolioImages(ctx, slug)
	if err != nil {
		mw.Logger(ctx).Warn("portfolio images unavailable", zap.String("slug", slug), zap.Error(err))
		data.ImagesErr = true
	}
	data.Images = images
	data.Videos, _ = cmsClient.ListPortfolioVideos(ctx, slug)
	render(w, r, "page_portfolio_album", data)
}
