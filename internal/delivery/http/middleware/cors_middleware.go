package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSMiddleware adds CORS headers so the portfolio frontend can post the
// contact form from its own origin.
//
// Only the configured origins get CORS headers; an empty list allows none.
// Preflight requests are answered here and never reach the handlers.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Requested-With", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         86400, // 24 hours
	}
	if len(allowedOrigins) == 0 {
		// rs/cors treats an empty list as "*"
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	c := cors.New(opts)

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)

		// Handle preflight requests
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			if ctx.Writer.Header().Get("Access-Control-Allow-Origin") != "" {
				ctx.AbortWithStatus(http.StatusNoContent)
			} else {
				ctx.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		ctx.Next()
	}
}
