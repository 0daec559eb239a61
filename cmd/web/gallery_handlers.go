package main

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	"github.com/aurelia-studios/aurelia-web/internal/lightbox"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
)

// GalleryData is the view model for the gallery page.
type GalleryData struct {
	Page
	Images    []cms.ShowcaseImage
	ImagesErr bool
}

// LightboxData is the view model for the overlay fragment. The template keys
// the body scroll lock off State.Open, so rendering the closed state always
// releases it.
type LightboxData struct {
	State            lightbox.State
	Image            cms.ShowcaseImage
	Position         int // 1-based, for the "3 / 12" counter
	SwipeThresholdPx int
}

// GalleryHandler renders the showcase grid.
func GalleryHandler(w http.ResponseWriter, r *http.Request) {
	data := GalleryData{Page: newPage(r, "Gallery", "A selection of weddings, portraits and events we have photographed.")}
	images, err := cmsClient.ListShowcaseImages(r.Context())
	if err != nil {
		mw.Logger(r.Context()).Warn("showcase images unavailable", zap.Error(err))
		data.ImagesErr = true
	}
	data.Images = images
	render(w, r, "page_gallery", data)
}

// LightboxOpenFrag opens the overlay at the clicked thumbnail index.
func LightboxOpenFrag(w http.ResponseWriter, r *http.Request) {
	images, ok := lightboxImages(w, r)
	if !ok {
		return
	}
	idx, _ := strconv.Atoi(r.URL.Query().Get("index"))
	renderLightbox(w, r, lightbox.Opened(idx, len(images)), images)
}

// LightboxNextFrag advances modulo the image count.
func LightboxNextFrag(w http.ResponseWriter, r *http.Request) {
	stepLightbox(w, r, lightbox.State.Next)
}

// LightboxPrevFrag steps back modulo the image count.
func LightboxPrevFrag(w http.ResponseWriter, r *http.Request) {
	stepLightbox(w, r, lightbox.State.Prev)
}

// LightboxSwipeFrag applies a horizontal drag reported by the client; drags
// under the threshold re-render the current slide unchanged.
func LightboxSwipeFrag(w http.ResponseWriter, r *http.Request) {
	dx, _ := strconv.Atoi(r.URL.Query().Get("dx"))
	stepLightbox(w, r, func(s lightbox.State) lightbox.State { return s.Swipe(dx) })
}

// LightboxCloseFrag renders the closed state, which also clears the scroll
// lock class from the page.
func LightboxCloseFrag(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "frag_lightbox", LightboxData{State: lightbox.Closed()})
}

func stepLightbox(w http.ResponseWriter, r *http.Request, step func(lightbox.State) lightbox.State) {
	images, ok := lightboxImages(w, r)
	if !ok {
		return
	}
	idx, _ := strconv.Atoi(r.URL.Query().Get("index"))
	state := step(lightbox.Opened(idx, len(images)))
	renderLightbox(w, r, state, images)
}

func lightboxImages(w http.ResponseWriter, r *http.Request) ([]cms.ShowcaseImage, bool) {
	images, err := cmsClient.ListShowcaseImages(r.Context())
	if err != nil {
		mw.Logger(r.Context()).Warn("showcase images unavailable", zap.Error(err))
		mw.Error(w, r, http.StatusBadGateway, "gallery is unavailable right now")
		return nil, false
	}
	if len(images) == 0 {
		renderTemplate(w, r, "frag_lightbox", LightboxData{State: lightbox.Closed()})
		return nil, false
	}
	return images, true
}

func renderLightbox(w http.ResponseWriter, r *http.Request, state lightbox.State, images []cms.ShowcaseImage) {
	data := LightboxData{State: state, SwipeThresholdPx: lightbox.SwipeThresholdPx}
	if state.Open {
		data.Image = images[state.Index]
		data.Position = state.Index + 1
	}
	renderTemplate(w, r, "frag_lightbox", data)
}
