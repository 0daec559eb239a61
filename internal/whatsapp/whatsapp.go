// Package whatsapp builds wa.me deep links used to hand a stored inquiry off
// to the business's WhatsApp conversation. Everything here is pure string
// work; opening the link is the browser's job.
package whatsapp

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Kind selects the message template.
type Kind string

const (
	KindGeneric Kind = "generic"
	KindInquiry Kind = "inquiry"
	KindVendor  Kind = "vendor"
	KindContact Kind = "contact"
)

// Fields carries the labeled values interpolated into a message. Empty values
// are omitted from the output.
type Fields struct {
	Name        string
	Phone       string
	Email       string
	Subject     string
	ServiceName string
	VendorName  string
	EventDate   string
	Message     string
}

const signature = "— sent from aureliastudios.in"

// countryCode is prefixed to numbers that do not already carry it.
const countryCode = "91"

type line struct {
	emoji string
	label string
	value string
}

// Compose renders the multi-line message for a kind. Lines whose value is
// empty are dropped; the closing signature is always present.
func Compose(kind Kind, f Fields) string {
	var head string
	switch kind {
	case KindInquiry:
		head = "Hi! I just sent an inquiry through your website."
	case KindVendor:
		head = "Hi! I found a vendor on your website and would like to know more."
	case KindContact:
		head = "Hi! I'd like to get in touch about your services."
	default:
		head = "Hi! I'm reaching out from your website."
	}

	lines := []line{
		{"👤", "Name", f.Name},
		{"📞", "Phone", f.Phone},
		{"✉️", "Email", f.Email},
		{"📋", "Subject", f.Subject},
		{"📸", "Service", f.ServiceName},
		{"🏷️", "Vendor", f.VendorName},
		{"📅", "Event date", f.EventDate},
		{"💬", "Message", f.Message},
	}

	var b strings.Builder
	b.WriteString(head)
	for _, l := range lines {
		v := strings.TrimSpace(l.value)
		if v == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(l.emoji)
		b.WriteString(" ")
		b.WriteString(l.label)
		b.WriteString(": ")
		b.WriteString(v)
	}
	b.WriteString("\n\n")
	b.WriteString(signature)
	return b.String()
}

// Link builds the wa.me URL for a phone number and message. The number is
// stripped to digits and prefixed with the country code when absent. An empty
// or digit-less number returns "" after a logged warning; callers must treat
// that as "skip the handoff", never as a failure of the inquiry itself.
func Link(phone, message string, log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}
	digits := stripNonDigits(phone)
	if digits == "" {
		log.Warn("whatsapp: no phone number configured, skipping handoff")
		return ""
	}
	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
