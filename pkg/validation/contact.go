package validation

import (
	"fmt"
	"reflect"
	"strings"

	"go-edc-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ContactValidator is the single validation contract for contact form
// submissions. The same instance semantics run on the server handler and in
// the form client, so the two can never drift.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator builds a validator with the contact form rules
// registered. Keys in the returned error maps are JSON field names.
func NewContactValidator() *ContactValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("interest", validInterest)

	return &ContactValidator{validate: v}
}

// validInterest checks membership in the fixed interest enum
func validInterest(fl validator.FieldLevel) bool {
	return domain.Interest(fl.Field().String()).Valid()
}

// Validate checks req against the submission schema. It returns a map of
// JSON field name to a human-readable message for every invalid field, or an
// empty map when the request is valid. Pure function: no I/O, deterministic,
// safe to call repeatedly.
func (cv *ContactValidator) Validate(req *domain.ContactRequest) map[string]string {
	details := make(map[string]string)

	err := cv.validate.Struct(req)
	if err == nil {
		return details
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure, not field rules. Should not happen for a
		// decoded ContactRequest.
		details["form"] = "Invalid form data"
		return details
	}

	for _, e := range verrs {
		field := e.Field()
		if _, seen := details[field]; seen {
			// First violated constraint wins per field
			continue
		}
		details[field] = fieldMessage(field, e.Tag())
	}

	return details
}

// fieldMessage returns the user-facing message for a failed rule. Messages
// mirror the copy shown next to each form field on the website.
func fieldMessage(field, tag string) string {
	switch field {
	case "name":
		return "Name must be at least 2 characters"
	case "email":
		return "Please enter a valid email address"
	case "interest":
		return "Please select what you're interested in"
	case "message":
		if tag == "max" {
			return "Message must be under 2000 characters"
		}
		return "Message must be at least 10 characters"
	}
	return fmt.Sprintf("%s is invalid", field)
}
