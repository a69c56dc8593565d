package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBuildContentSecurityPolicyBlocksScripts(t *testing.T) {
	directives := parseContentSecurityPolicy(buildContentSecurityPolicy())

	scriptSrc, ok := directives["script-src"]
	if !ok {
		t.Fatalf("expected script-src directive")
	}
	if _, none := scriptSrc["'none'"]; !none {
		t.Fatalf("expected scripts to be disabled, got %v", scriptSrc)
	}

	imgSrc := directives["img-src"]
	for _, required := range []string{"'self'", "data:"} {
		if _, allowed := imgSrc[required]; !allowed {
			t.Fatalf("expected img-src to allow %s", required)
		}
	}
}

func TestBuildContentSecurityPolicyKeepsDirectiveOrder(t *testing.T) {
	policy := buildContentSecurityPolicy()
	if !strings.HasPrefix(policy, "default-src 'self'; ") {
		t.Fatalf("expected default-src first: %s", policy)
	}
	if strings.Count(policy, ";") != len(defaultCSPDirectives)-1 {
		t.Fatalf("expected %d directives: %s", len(defaultCSPDirectives), policy)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("expected X-Frame-Options header")
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS must only be sent over TLS")
	}
	if !strings.Contains(rec.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'") {
		t.Fatalf("unexpected CSP: %s", rec.Header().Get("Content-Security-Policy"))
	}
}

func parseContentSecurityPolicy(policy string) map[string]map[string]struct{} {
	result := make(map[string]map[string]struct{})

	for _, directive := range strings.Split(policy, ";") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		parts := strings.Fields(directive)
		if len(parts) == 0 {
			continue
		}

		name := parts[0]
		values := make(map[string]struct{}, len(parts)-1)
		for _, value := range parts[1:] {
			values[value] = struct{}{}
		}

		result[name] = values
	}

	return result
}
