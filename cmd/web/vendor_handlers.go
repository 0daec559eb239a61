package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	"github.com/aurelia-studios/aurelia-web/internal/format"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
	"github.com/aurelia-studios/aurelia-web/internal/whatsapp"
)

// VendorsData is the view model for the vendor directory page.
type VendorsData struct {
	Page
	Categories    []VendorCategoryView
	CategoriesErr bool
	Selected      string
	SubCategories []cms.VendorSubCategory
	Profiles      []VendorCardView
	ProfilesErr   bool
}

// VendorCategoryView pairs a category with its formatted vendor count chip.
type VendorCategoryView struct {
	cms.VendorCategory
	CountChip string
}

// VendorCardView is one directory card.
type VendorCardView struct {
	cms.VendorProfile
	CoverURL string
}

// VendorProfileData is the view model for a single vendor page.
type VendorProfileData struct {
	Page
	Vendor       cms.VendorProfile
	Testimonials []struct {
		cms.VendorTestimonial
		Stars string
	}
	WhatsAppURL string
}

// VendorsHandler renders the directory with the optional category/subcategory
// selection from the query string. Category selection is view state; the
// route stays shareable.
func VendorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := r.URL.Query().Get("category")
	data := VendorsData{
		Page:     newPage(r, "Vendor Directory", "Hand-picked decorators, caterers, makeup artists and planners we trust."),
		Selected: selected,
	}

	cats, err := cmsClient.ListVendorCategories(ctx)
	if err != nil {
		mw.Logger(ctx).Warn("vendor categories unavailable", zap.Error(err))
		data.CategoriesErr = true
	}
	for _, c := range cats {
		data.Categories = append(data.Categories, VendorCategoryView{VendorCategory: c, CountChip: format.CompactCount(c.VendorCount)})
	}

	if selected != "" {
		data.SubCategories, _ = cmsClient.ListVendorSubCategories(ctx, selected)
	}

	profiles, err := cmsClient.ListVendorProfiles(ctx, selected, r.URL.Query().Get("subcategory"))
	if err != nil {
		mw.Logger(ctx).Warn("vendor profiles unavailable", zap.Error(err))
		data.ProfilesErr = true
	}
	data.Profiles = buildVendorCards(profiles)
	render(w, r, "page_vendors", data)
}

// VendorListFrag re-renders just the card grid when a filter chip is clicked.
func VendorListFrag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profiles, err := cmsClient.ListVendorProfiles(ctx, r.URL.Query().Get("category"), r.URL.Query().Get("subcategory"))
	if err != nil {
		mw.Logger(ctx).Warn("vendor profiles unavailable", zap.Error(err))
		renderTemplate(w, r, "frag_vendor_list", VendorsData{ProfilesErr: true})
		return
	}
	renderTemplate(w, r, "frag_vendor_list", VendorsData{Profiles: buildVendorCards(profiles)})
}

// VendorProfileHandler renders one vendor by slug. An unknown slug is a 404.
func VendorProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	vendor, err := cmsClient.GetVendorProfile(ctx, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		mw.Logger(ctx).Warn("vendor profile unavailable", zap.String("slug", slug), zap.Error(err))
		mw.Error(w, r, http.StatusBadGateway, "vendor profile is unavailable right now")
		return
	}

	data := VendorProfileData{
		Page:   newPage(r, vendor.Name, vendor.About, "", vendor.Name),
		Vendor: vendor,
	}
	for _, t := range vendor.Testimonials {
		data.Testimonials = append(data.Testimonials, struct {
			cms.VendorTestimonial
			Stars string
		}{t, format.Stars(t.Rating)})
	}

	msg := whatsapp.Compose(whatsapp.KindVendor, whatsapp.Fields{VendorName: vendor.Name})
	data.WhatsAppURL = whatsapp.Link(whatsAppNumber(r), msg, mw.Logger(ctx))
	render(w, r, "page_vendor_profile", data)
}

func buildVendorCards(profiles []cms.VendorProfile) []VendorCardView {
	cards := make([]VendorCardView, 0, len(profiles))
	for _, p := range profiles {
		card := VendorCardView{VendorProfile: p}
		if len(p.Images) > 0 {
			card.CoverURL = p.Images[0].ImageURL
		}
		cards = append(cards, card)
	}
	return cards
}
