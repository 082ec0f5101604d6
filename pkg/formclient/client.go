// Package formclient is the Go counterpart of the website's contact form
// controller: local schema validation, a four-state submission lifecycle,
// and a single POST per valid submit.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-edc-backend/internal/domain"
	"go-edc-backend/pkg/validation"
)

// State is the submission lifecycle state.
//
// idle -> submitting -> success        (terminal)
// idle -> submitting -> error -> idle  (resubmission allowed)
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ErrAlreadySubmitted is returned by Submit after a successful submission.
// Success is terminal: the form renders a confirmation with no retry path.
var ErrAlreadySubmitted = errors.New("formclient: form already submitted")

// genericErrorMessage is the only failure copy shown to the user. Server
// error detail is never surfaced here.
const genericErrorMessage = "Something went wrong. Please try again or email us directly."

// Client drives one contact form submission lifecycle. Not safe for
// concurrent use; a form is operated by one user.
type Client struct {
	endpoint  string
	http      *http.Client
	validator *validation.ContactValidator

	state        State
	fieldErrors  map[string]string
	errorMessage string
}

// New creates a client posting to the given contact endpoint URL.
func New(endpoint string) *Client {
	return &Client{
		endpoint:  endpoint,
		http:      &http.Client{Timeout: 15 * time.Second},
		validator: validation.NewContactValidator(),
		state:     StateIdle,
	}
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	return c.state
}

// FieldErrors returns per-field messages from the last local validation, or
// an empty map when the last input was valid.
func (c *Client) FieldErrors() map[string]string {
	return c.fieldErrors
}

// ErrorMessage returns the generic user-facing message set in the error
// state, empty otherwise.
func (c *Client) ErrorMessage() string {
	return c.errorMessage
}

// Submit validates req locally and, when valid, makes exactly one POST to
// the contact endpoint. Invalid input populates FieldErrors and costs no
// network call. Lifecycle outcomes (success, error state) are reported
// through State, not the error return; Submit only errors on misuse or when
// the request cannot be constructed.
func (c *Client) Submit(ctx context.Context, req *domain.ContactRequest) error {
	if c.state == StateSuccess {
		return ErrAlreadySubmitted
	}

	// Editing after a failed attempt re-arms the form
	c.state = StateIdle
	c.fieldErrors = nil
	c.errorMessage = ""

	if details := c.validator.Validate(req); len(details) > 0 {
		c.fieldErrors = details
		return nil
	}

	c.state = StateSubmitting

	payload, err := json.Marshal(req)
	if err != nil {
		c.state = StateIdle
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		c.state = StateIdle
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.state = StateError
		c.errorMessage = genericErrorMessage
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.state = StateError
		c.errorMessage = genericErrorMessage
		return nil
	}

	c.state = StateSuccess
	return nil
}
