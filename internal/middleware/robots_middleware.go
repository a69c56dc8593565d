package middleware

import "github.com/gin-gonic/gin"

const apiRobotsTag = "noindex, nofollow"

// NoIndexMiddleware keeps JSON API responses out of search results. The
// landing page itself stays indexable.
func NoIndexMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Robots-Tag", apiRobotsTag)
		c.Next()
	}
}
