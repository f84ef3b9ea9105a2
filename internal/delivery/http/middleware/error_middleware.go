package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			requestID := c.GetString(RequestIDKey)

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "request_id", requestID, "status", appErr.Code, "error", appErr.Err)
				}
				if appErr.HasFields() {
					response.FieldErrors(c, appErr.Code, appErr.Fields)
					return
				}
				response.Error(c, appErr.Code, appErr.Message)
				return
			}

			// SECURITY: Never expose internal error details to clients.
			logger.Log.Error("Internal Server Error", "request_id", requestID, "error", err)
			response.Error(c, http.StatusInternalServerError, domain.ContactFailureMessage)
		}
	}
}
