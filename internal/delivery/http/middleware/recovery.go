package middleware

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the generic failure response so every
// unexpected error has the same JSON shape.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "request_id", c.GetString(RequestIDKey), "panic", recovered)
		response.Error(c, http.StatusInternalServerError, domain.ContactFailureMessage)
		c.Abort()
	})
}
