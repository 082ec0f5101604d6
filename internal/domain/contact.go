package domain

import "context"

// Interest classifies why a visitor is contacting the EDC. Values match the
// website's contact form select options and drive the email subject line.
type Interest string

const (
	InterestBusinessRelocation    Interest = "business-relocation"
	InterestBusinessExpansion     Interest = "business-expansion"
	InterestSiteSelection         Interest = "site-selection"
	InterestWorkforceInfo         Interest = "workforce-info"
	InterestRelocatingResidence   Interest = "relocating-residence"
	InterestVisiting              Interest = "visiting"
	InterestUniversityPartnership Interest = "university-partnership"
	InterestOther                 Interest = "other"
)

// InterestLabels maps every interest value to its display label.
// Membership in this map is the definition of a valid interest.
var InterestLabels = map[Interest]string{
	InterestBusinessRelocation:    "Relocating a Business",
	InterestBusinessExpansion:     "Expanding a Business",
	InterestSiteSelection:         "Site Selection",
	InterestWorkforceInfo:         "Workforce Information",
	InterestRelocatingResidence:   "Moving to the Area",
	InterestVisiting:              "Planning a Visit",
	InterestUniversityPartnership: "University Partnership",
	InterestOther:                 "Other",
}

// Valid reports whether i is one of the known interest values.
func (i Interest) Valid() bool {
	_, ok := InterestLabels[i]
	return ok
}

// Label returns the display label for i, or the raw value for unknown input.
func (i Interest) Label() string {
	if label, ok := InterestLabels[i]; ok {
		return label
	}
	return string(i)
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name         string   `json:"name" validate:"required,min=2"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone,omitempty" validate:"-"`
	Organization string   `json:"organization,omitempty" validate:"-"`
	Interest     Interest `json:"interest" validate:"required,interest"`
	Message      string   `json:"message" validate:"required,min=10,max=2000"`

	// Honeypot is a hidden form field no human ever fills in. It is not a
	// validation concern: a non-empty value passes the schema and is caught
	// downstream so spam senders still see an ordinary success response.
	Honeypot string `json:"honeypot,omitempty" validate:"-"`
}

// EmailResult reports the outcome of one delivery attempt. Error carries a
// generic, user-safe message only; provider detail stays in the logs.
type EmailResult struct {
	Success bool
	Error   string
}

// ContactMailer delivers a contact form notification to the organization.
type ContactMailer interface {
	// SendContactEmail makes a single delivery attempt for a validated,
	// non-spam submission.
	SendContactEmail(ctx context.Context, req *ContactRequest) EmailResult

	// IsConfigured reports whether a provider credential is present.
	IsConfigured() bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit applies the spam check and forwards genuine submissions to the
	// mailer. Spam returns the same success result as a real send.
	Submit(ctx context.Context, req *ContactRequest) EmailResult
}
