package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"debase-landing/internal/page"
	"debase-landing/pkg/logger"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// ClearCache drops every cached landing page render. afterClear, when set,
// runs once the cache is empty.
func ClearCache(landing *page.LandingService, afterClear func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := landing.InvalidateCache(); err != nil {
			logger.Error(err, "Failed to clear cache", nil)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache"})
			return
		}
		logger.Info("Landing cache cleared", nil)
		if afterClear != nil {
			afterClear()
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
	}
}
