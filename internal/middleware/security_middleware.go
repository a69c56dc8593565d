package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var defaultCSPDirectives = [][]string{
	{"default-src", "'self'"},
	{"img-src", "'self'", "data:"},
	{"style-src", "'self'"},
	{"script-src", "'none'"},
	{"object-src", "'none'"},
	{"base-uri", "'self'"},
	{"form-action", "'self'"},
	{"frame-ancestors", "'none'"},
}

func buildContentSecurityPolicy() string {
	parts := make([]string, 0, len(defaultCSPDirectives))
	for _, directive := range defaultCSPDirectives {
		parts = append(parts, strings.Join(directive, " "))
	}
	return strings.Join(parts, "; ")
}

func SecurityHeadersMiddleware() gin.HandlerFunc {
	policy := buildContentSecurityPolicy()

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-DNS-Prefetch-Control", "off")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")
		c.Header("Cross-Origin-Opener-Policy", "same-origin")
		c.Header("Cross-Origin-Resource-Policy", "same-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Header("Content-Security-Policy", policy)
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}
