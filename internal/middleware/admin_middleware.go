package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminTokenMiddleware guards maintenance routes with a shared token passed in
// the X-Admin-Token header. An empty configured token rejects every request.
func AdminTokenMiddleware(token string) gin.HandlerFunc {
	expected := []byte(strings.TrimSpace(token))

	return func(c *gin.Context) {
		provided := []byte(strings.TrimSpace(c.GetHeader("X-Admin-Token")))
		if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
