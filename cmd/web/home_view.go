package main

import (
	"github.com/aurelia-studios/aurelia-web/internal/cms"
	"github.com/aurelia-studios/aurelia-web/internal/format"
	"github.com/aurelia-studios/aurelia-web/internal/markup"
	"github.com/aurelia-studios/aurelia-web/internal/seo"
	"html/template"
)

// Timing constants surfaced to the front-end script as data attributes.
const (
	heroAutoAdvanceMS     = 5000
	counterAnimDurationMS = 1800
)

// HomeData is the view model for the landing page.
type HomeData struct {
	Page
	Slides            []cms.HeroSlide
	SlidesErr         bool
	AutoAdvanceMS     int
	VideoTestimonials []cms.VideoTestimonial
	TextTestimonials  []TestimonialView
	TestimonialsErr   bool
	FAQs              []FAQView
	FAQsErr           bool
	OpenFAQ           int
	Counters          []CounterView
	CountersErr       bool
	CounterAnimMS     int
	Showcase          cms.VideoShowcase
	HasShowcase       bool
	FeaturedVendors   []cms.VendorProfile
	FeaturedPosts     []cms.BlogPost
}

// TestimonialView pairs a testimonial with its rendered star rating.
type TestimonialView struct {
	cms.TextTestimonial
	Stars string
}

// FAQView pairs a FAQ with its expansion state; at most one is open.
type FAQView struct {
	ID       int
	Question string
	Answer   template.HTML
	Open     bool
}

// CounterView carries an achievement plus its formatted target value. The
// script animates the displayed number from 0 to the target over the fixed
// duration; the formatted value is what it lands on.
type CounterView struct {
	cms.Achievement
	Display string
}

func buildFAQViews(faqs []cms.FAQ, openID int) []FAQView {
	out := make([]FAQView, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, FAQView{
			ID:       f.ID,
			Question: f.Question,
			Answer:   markup.SanitizeHTML(f.Answer),
			Open:     f.ID == openID,
		})
	}
	return out
}

func buildCounterViews(items []cms.Achievement) []CounterView {
	out := make([]CounterView, 0, len(items))
	for _, a := range items {
		out = append(out, CounterView{Achievement: a, Display: format.Counter(a.CountValue)})
	}
	return out
}

func buildTestimonialViews(items []cms.TextTestimonial) []TestimonialView {
	out := make([]TestimonialView, 0, len(items))
	for _, t := range items {
		out = append(out, TestimonialView{TextTestimonial: t, Stars: format.Stars(t.Rating)})
	}
	return out
}

func homeJSONLD(p *Page, faqs []cms.FAQ) {
	p.Meta.JSONLD = append(p.Meta.JSONLD, seo.LocalBusiness(
		p.Header.Brand.Name,
		p.Header.Contact.Phone,
		p.Header.Contact.Email,
		p.Header.Contact.Address,
		siteCfg.Site.CanonicalBase,
	))
	if len(faqs) > 0 {
		pairs := make([][2]string, 0, len(faqs))
		for _, f := range faqs {
			pairs = append(pairs, [2]string{f.Question, f.Answer})
		}
		p.Meta.JSONLD = append(p.Meta.JSONLD, seo.FAQPage(pairs))
	}
}
