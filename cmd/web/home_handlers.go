package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
)

// HomeHandler renders the landing page. Each section fetch fails
// independently: a dead backend yields empty/error section states, never a
// failed page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := mw.Logger(ctx)

	data := HomeData{
		Page:          newPage(r, "", siteCfg.Site.Tagline),
		AutoAdvanceMS: heroAutoAdvanceMS,
		CounterAnimMS: counterAnimDurationMS,
	}

	slides, err := cmsClient.ListHeroSlides(ctx)
	if err != nil {
		log.Warn("hero slides unavailable", zap.Error(err))
		data.SlidesErr = true
	}
	data.Slides = slides

	if vids, err := cmsClient.ListVideoTestimonials(ctx); err != nil {
		log.Warn("video testimonials unavailable", zap.Error(err))
		data.TestimonialsErr = true
	} else {
		data.VideoTestimonials = vids
	}
	if texts, err := cmsClient.ListTextTestimonials(ctx); err != nil {
		log.Warn("text testimonials unavailable", zap.Error(err))
		data.TestimonialsErr = true
	} else {
		data.TextTestimonials = buildTestimonialViews(texts)
	}

	faqs, err := cmsClient.ListFAQs(ctx)
	if err != nil {
		log.Warn("faqs unavailable", zap.Error(err))
		data.FAQsErr = true
	}
	data.FAQs = buildFAQViews(faqs, 0)
	homeJSONLD(&data.Page, faqs)

	if counters, err := cmsClient.ListAchievements(ctx); err != nil {
		log.Warn("achievements unavailable", zap.Error(err))
		data.CountersErr = true
	} else {
		data.Counters = buildCounterViews(counters)
	}

	if showcase, err := cmsClient.GetVideoShowcase(ctx); err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			log.Warn("video showcase unavailable", zap.Error(err))
		}
	} else {
		data.Showcase = showcase
		data.HasShowcase = true
	}

	// Rails are cosmetic; a failure just hides them.
	data.FeaturedVendors, _ = cmsClient.ListFeaturedVendors(ctx)
	data.FeaturedPosts, _ = cmsClient.ListFeaturedBlogPosts(ctx)

	render(w, r, "page_home", data)
}

// FAQToggleFrag re-renders the FAQ accordion with the clicked entry expanded,
// or fully collapsed when the open entry is clicked again. At most one entry
// is ever open.
func FAQToggleFrag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		mw.Error(w, r, http.StatusBadRequest, "invalid faq id")
		return
	}
	open := id
	if cur, _ := strconv.Atoi(r.URL.Query().Get("open")); cur == id {
		open = 0
	}

	faqs, ferr := cmsClient.ListFAQs(ctx)
	if ferr != nil {
		mw.Logger(ctx).Warn("faqs unavailable", zap.Error(ferr))
		renderTemplate(w, r, "frag_faq_list", HomeData{FAQsErr: true})
		return
	}
	renderTemplate(w, r, "frag_faq_list", HomeData{FAQs: buildFAQViews(faqs, open), OpenFAQ: open})
}
