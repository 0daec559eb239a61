package main

import (
	"net/http"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
	"github.com/aurelia-studios/aurelia-web/internal/nav"
	"github.com/aurelia-studios/aurelia-web/internal/seo"
	"github.com/aurelia-studios/aurelia-web/internal/whatsapp"
)

// Page is the layout view model shared by every full-page render. Header
// always has data (the cms fallback guarantees it); Footer may be zero when
// the backend is down, in which case the template renders the minimal state.
type Page struct {
	Meta        seo.Meta
	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Header      cms.Header
	Footer      cms.Footer
	FooterErr   bool
	WhatsAppURL string
}

// newPage assembles the chrome every page shares. Fetch errors for the footer
// degrade to an empty footer rather than failing the page.
func newPage(r *http.Request, title, description string, crumbLabels ...string) Page {
	ctx := r.Context()
	header := cmsClient.GetHeader(ctx)
	footer, ferr := cmsClient.GetFooter(ctx)
	if ferr != nil {
		mw.Logger(ctx).Warn("footer unavailable")
	}

	number := siteCfg.WhatsAppNumber
	if number == "" {
		number = header.Contact.WhatsApp
	}
	waURL := whatsapp.Link(number, whatsapp.Compose(whatsapp.KindGeneric, whatsapp.Fields{}), mw.Logger(ctx))

	return Page{
		Meta:        seo.ForPage(header.Brand.Name, title, description),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path, crumbLabels...),
		Header:      header,
		Footer:      footer,
		FooterErr:   ferr != nil,
		WhatsAppURL: waURL,
	}
}

// whatsAppNumber resolves the configured business number, preferring the
// explicit config over CMS header data.
func whatsAppNumber(r *http.Request) string {
	if siteCfg.WhatsAppNumber != "" {
		return siteCfg.WhatsAppNumber
	}
	return cmsClient.GetHeader(r.Context()).Contact.WhatsApp
}
