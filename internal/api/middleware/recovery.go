package middleware

import (
	"net/http"

	"sustainability-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses instead of dropped connections
func Recovery() gin.HandlerFunc {
	log := logger.New()
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic":      r,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString(RequestIDKey),
				}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
