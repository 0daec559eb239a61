package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
	"github.com/aurelia-studios/aurelia-web/internal/whatsapp"
)

// popupSuccessDismissMS is how long the success state stays on screen before
// the popup hides itself.
const popupSuccessDismissMS = 2000

// PopupData is the view model for the first-visit popup fragment.
type PopupData struct {
	Settings    cms.PopupSettings
	Form        InquiryForm
	FieldErrors map[string]string
	Submitted   bool
	WhatsAppURL string
	DismissMS   int
}

// PopupFrag renders the popup shell when the remote settings are active. The
// fragment carries the show delay; the page script moves it from pending to
// visible after that many milliseconds. Inactive settings or a fetch error
// render nothing.
func PopupFrag(w http.ResponseWriter, r *http.Request) {
	settings, err := cmsClient.GetPopupSettings(r.Context())
	if err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			mw.Logger(r.Context()).Warn("popup settings unavailable", zap.Error(err))
		}
		renderTemplate(w, r, "frag_popup_empty", nil)
		return
	}
	if !settings.IsActive {
		renderTemplate(w, r, "frag_popup_empty", nil)
		return
	}
	renderTemplate(w, r, "frag_popup", PopupData{Settings: settings, DismissMS: popupSuccessDismissMS})
}

// PopupSubmitHandler moves the popup through submitting → success. The
// primary inquiry must succeed; the legacy endpoint is best-effort and its
// failure is logged, never surfaced. The WhatsApp handoff happens after the
// inquiry is persisted, so a missing number cannot lose the lead.
func PopupSubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := mw.Logger(ctx)

	if err := r.ParseForm(); err != nil {
		mw.Error(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}
	form := parseInquiryForm(r.PostForm)
	inq := form.toInquiry("popup")

	settings, serr := cmsClient.GetPopupSettings(ctx)
	if serr != nil {
		settings = cms.PopupSettings{IsActive: true, ShowDelayMS: cms.DefaultPopupDelayMS}
	}
	data := PopupData{Settings: settings, Form: form, DismissMS: popupSuccessDismissMS}

	if errs := inq.Validate(); errs != nil {
		data.FieldErrors = errs
		renderTemplate(w, r, "frag_popup", data)
		return
	}

	if _, err := cmsClient.CreateInquiry(ctx, inq); err != nil {
		var verr cms.ValidationError
		if errors.As(err, &verr) {
			data.FieldErrors = verr
			renderTemplate(w, r, "frag_popup", data)
			return
		}
		log.Error("popup inquiry failed", zap.Error(err))
		data.FieldErrors = map[string]string{"form": "Something went wrong. Please try again."}
		renderTemplate(w, r, "frag_popup", data)
		return
	}

	if err := cmsClient.CreatePopupInquiry(ctx, inq); err != nil {
		// Legacy reporting endpoint; swallowed on purpose.
		log.Warn("legacy popup inquiry failed", zap.Error(err))
	}

	msg := whatsapp.Compose(whatsapp.KindInquiry, whatsapp.Fields{
		Name:        inq.Name,
		Phone:       inq.Phone,
		Email:       inq.Email,
		ServiceName: inq.ServiceName,
		EventDate:   inq.EventDate,
		Message:     inq.Message,
	})
	data.WhatsAppURL = whatsapp.Link(whatsAppNumber(r), msg, log)
	data.Submitted = true
	renderTemplate(w, r, "frag_popup", data)
}
