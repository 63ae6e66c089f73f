package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

const internalMessage = "internal server error"

// ErrorHandler renders the last error attached to the context as
// {"message": ...}. Messages of internal errors are only exposed when
// exposeInternal is set.
func ErrorHandler(exposeInternal bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only handle errors if they exist
		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)
		lastErr := c.Errors.Last().Err

		status := apperrors.Status(lastErr)
		message := lastErr.Error()
		if appErr, ok := apperrors.As(lastErr); ok && appErr.Message != "" {
			message = appErr.Message
		}

		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
			if !exposeInternal {
				message = internalMessage
			} else {
				message = lastErr.Error()
			}
		}
		event.
			Err(lastErr).
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		c.JSON(status, httputil.ErrorResponse{Message: message})
	}
}
