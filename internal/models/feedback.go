package models

import "strings"

// Submission represents a feedback form post
type Submission struct {
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Body    string `form:"body" validate:"required"`
}

// Normalized returns a copy with surrounding whitespace removed from subject and body.
// Email is kept verbatim so that padded addresses fail validation.
func (s Submission) Normalized() Submission {
	s.Subject = strings.TrimSpace(s.Subject)
	s.Body = strings.TrimSpace(s.Body)
	return s
}

// ValidationResult lists every problem found in a Submission
type ValidationResult struct {
	Errors []string
}

// Valid reports whether the submission may be forwarded
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// TicketResponse is the outcome of forwarding a Submission to the helpdesk
type TicketResponse struct {
	Success  bool
	TicketID int64
	Error    string
}

// Banner classes understood by the form template
const (
	MessageClassSuccess = "success"
	MessageClassError   = "error"
)

// FormState is everything the feedback page needs to render
type FormState struct {
	Action       string
	Email        string
	Subject      string
	Body         string
	Message      string
	MessageClass string
	Errors       []string
}

// HasBanner reports whether a success or error banner is shown above the form
func (s FormState) HasBanner() bool {
	return s.Message != "" || len(s.Errors) > 0
}
