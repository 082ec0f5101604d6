package middleware

import (
	"errors"
	"net/http"

	"go-edc-backend/internal/delivery/http/response"
	"go-edc-backend/pkg/apperror"
	"go-edc-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into JSON
// responses. Internal detail (wrapped errors, stack information) stays in
// the logs; clients only ever see the AppError message or a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextKeyRequestID)

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", requestID,
					"error", appErr.Err.Error(),
				)
			}
			response.Failure(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("Unexpected error", "path", c.FullPath(), "request_id", requestID, "error", err.Error())
		response.Failure(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// Recovery converts panics into the same generic 500 the error handler
// produces, logging the panic value without any request payload data.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "path", c.FullPath(), "panic", recovered)
		response.Failure(c, http.StatusInternalServerError, "An unexpected error occurred")
		c.Abort()
	})
}
