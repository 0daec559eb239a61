package main

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/cms"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
	"github.com/aurelia-studios/aurelia-web/internal/whatsapp"
)

// inquiryFormResetMS is how long the success state shows before the contact
// form clears back to its blank state.
const inquiryFormResetMS = 3000

// InquiryForm mirrors the contact form fields verbatim, for re-rendering a
// partially filled form alongside validation errors.
type InquiryForm struct {
	Name          string
	Email         string
	Phone         string
	Subject       string
	Message       string
	ServiceName   string
	ServiceID     int
	EventDate     string
	EventLocation string
}

// ContactData is the view model for the contact page.
type ContactData struct {
	Page
	Form        InquiryForm
	FieldErrors map[string]string
	Submitted   bool
	WhatsAppURL string
	ResetMS     int
}

func parseInquiryForm(form url.Values) InquiryForm {
	serviceID, _ := strconv.Atoi(strings.TrimSpace(form.Get("service_id")))
	return InquiryForm{
		Name:          strings.TrimSpace(form.Get("name")),
		Email:         strings.TrimSpace(form.Get("email")),
		Phone:         strings.TrimSpace(form.Get("phone")),
		Subject:       strings.TrimSpace(form.Get("subject")),
		Message:       strings.TrimSpace(form.Get("message")),
		ServiceName:   strings.TrimSpace(form.Get("service_name")),
		ServiceID:     serviceID,
		EventDate:     strings.TrimSpace(form.Get("event_date")),
		EventLocation: strings.TrimSpace(form.Get("event_location")),
	}
}

func (f InquiryForm) toInquiry(source string) cms.Inquiry {
	return cms.Inquiry{
		InquiryType:   source,
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		Subject:       f.Subject,
		Message:       f.Message,
		ServiceName:   f.ServiceName,
		ServiceID:     f.ServiceID,
		EventDate:     f.EventDate,
		EventLocation: f.EventLocation,
		Source:        source,
	}
}

// ContactHandler renders the contact page with a blank form.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	data := ContactData{
		Page:    newPage(r, "Contact", "Tell us about your event and we'll get back within a day."),
		ResetMS: inquiryFormResetMS,
	}
	render(w, r, "page_contact", data)
}

// InquirySubmitHandler validates and persists a contact inquiry. Local
// validation failures never reach the backend; backend validation failures
// come back as inline field errors. On success the form shows its success
// state with the WhatsApp handoff link and resets after the fixed delay.
func InquirySubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := mw.Logger(ctx)

	if err := r.ParseForm(); err != nil {
		mw.Error(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}
	form := parseInquiryForm(r.PostForm)
	inq := form.toInquiry("contact")

	data := ContactData{Form: form, ResetMS: inquiryFormResetMS}

	if errs := inq.Validate(); errs != nil {
		data.FieldErrors = errs
		renderContactForm(w, r, data)
		return
	}

	if _, err := cmsClient.CreateInquiry(ctx, inq); err != nil {
		var verr cms.ValidationError
		if errors.As(err, &verr) {
			data.FieldErrors = verr
			renderContactForm(w, r, data)
			return
		}
		log.Error("inquiry failed", zap.Error(err))
		data.FieldErrors = map[string]string{"form": "Something went wrong. Please try again."}
		renderContactForm(w, r, data)
		return
	}

	msg := whatsapp.Compose(whatsapp.KindContact, whatsapp.Fields{
		Name:        inq.Name,
		Phone:       inq.Phone,
		Email:       inq.Email,
		Subject:     inq.Subject,
		ServiceName: inq.ServiceName,
		EventDate:   inq.EventDate,
		Message:     inq.Message,
	})
	data.WhatsAppURL = whatsapp.Link(whatsAppNumber(r), msg, log)
	data.Submitted = true
	data.Form = InquiryForm{}
	renderContactForm(w, r, data)
}

// renderContactForm returns just the form fragment for htmx posts and the
// whole page otherwise.
func renderContactForm(w http.ResponseWriter, r *http.Request, data ContactData) {
	if mw.IsHTMX(r.Context()) {
		renderTemplate(w, r, "frag_inquiry_form", data)
		return
	}
	data.Page = newPage(r, "Contact", "Tell us about your event and we'll get back within a day.")
	render(w, r, "page_contact", data)
}
