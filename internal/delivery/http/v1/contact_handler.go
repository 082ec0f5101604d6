package v1

import (
	"net/http"
	"sort"

	"go-edc-backend/internal/delivery/http/response"
	"go-edc-backend/internal/domain"
	"go-edc-backend/pkg/apperror"
	"go-edc-backend/pkg/logger"
	"go-edc-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	validator *validation.ContactValidator
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, validator *validation.ContactValidator, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		validator: validator,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact handles a contact form submission:
// parse -> validate -> spam check -> mail -> respond.
//
// A body that fails to parse is treated as unexpected, not as a client
// validation error: the site always sends schema-conformant JSON, so a
// malformed body means something other than the form is talking to us.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if details := h.validator.Validate(&req); len(details) > 0 {
		// Routine user typos stay out of info-level logs; field names only,
		// never values.
		logger.Log.Debug("Contact form validation failed", "fields", sortedKeys(details))
		response.ValidationFailed(c, details)
		return
	}

	result := h.contactUC.Submit(c.Request.Context(), &req)
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Failed to send message. Please try again later."
		}
		c.Error(apperror.New(http.StatusInternalServerError, msg, nil))
		return
	}

	response.OK(c)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
