package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessBody is the wire shape for an accepted submission.
type SuccessBody struct {
	Success bool `json:"success"`
}

// ErrorBody is the wire shape for every failure. Details is present only for
// schema validation failures, keyed by JSON field name.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// OK reports an accepted submission
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// ValidationFailed reports a schema rejection with per-field messages. This
// is the only response carrying structured diagnostics.
func ValidationFailed(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Error:   "Invalid form data",
		Details: details,
	})
}

// Failure sends a generic error response
func Failure(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
