package cms

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Inquiry is an outbound lead submission. It is created via POST and never
// read back; the client discards it after submit.
type Inquiry struct {
	InquiryType   string `json:"inquiry_type"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject,omitempty"`
	Message       string `json:"message"`
	ServiceName   string `json:"service_name,omitempty"`
	ServiceID     int    `json:"service_id,omitempty"`
	EventDate     string `json:"event_date,omitempty"`
	EventLocation string `json:"event_location,omitempty"`
	Source        string `json:"source"`
}

// CreatedInquiry is the backend acknowledgement for a stored inquiry.
type CreatedInquiry struct {
	ID int `json:"id"`
}

// ValidationError maps field names to human-readable messages. It is returned
// both by local validation and when the backend answers non-2xx with a
// {"details": {...}} body.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	return "cms: validation failed: " + strings.Join(fields, ", ")
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies the client-side rules: name, email, phone and message are
// required, and the email must look like an address. A nil return means the
// inquiry may be submitted.
func (i Inquiry) Validate() ValidationError {
	errs := ValidationError{}
	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = "Please enter your name"
	}
	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs["email"] = "Please enter your email"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(i.Phone) == "" {
		errs["phone"] = "Please enter your phone number"
	}
	if strings.TrimSpace(i.Message) == "" {
		errs["message"] = "Please enter a message"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateInquiry persists an inquiry on the backend. The caller is expected to
// have run Validate first; backend validation failures come back as a
// ValidationError. Each submission carries a ULID reference so a retried form
// post can be correlated server-side.
func (c *Client) CreateInquiry(ctx context.Context, inq Inquiry) (CreatedInquiry, error) {
	var created CreatedInquiry
	headers := map[string]string{"X-Client-Reference": newReference()}
	if err := c.postJSON(ctx, "/api/inquiry/create/", inq, headers, &created); err != nil {
		return CreatedInquiry{}, err
	}
	return created, nil
}

// CreatePopupInquiry posts to the legacy popup endpoint. It exists for
// backwards compatibility with older reporting; callers treat failure as
// best-effort (log and move on).
func (c *Client) CreatePopupInquiry(ctx context.Context, inq Inquiry) error {
	return c.postJSON(ctx, "/api/blog/popup-inquiry/", inq, nil, nil)
}

// parseValidationError extracts a {"details": {field: message}} body, if the
// response carries one.
func parseValidationError(body []byte) ValidationError {
	var payload struct {
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Details) == 0 {
		return nil
	}
	return ValidationError(payload.Details)
}

func newReference() string {
	return ulid.Make().String()
}
