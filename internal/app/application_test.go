package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"debase-landing/internal/config"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:              "0",
		Environment:       "test",
		CORSOrigins:       []string{"http://localhost:8080"},
		RateLimitRequests: 1000,
		RateLimitWindow:   60,
		EnableMetrics:     true,
		SiteName:          "DEBASE Trading Bot",
		SiteURL:           "http://localhost:8080",
	}

	application, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to build application: %v", err)
	}
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })
	return application
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLandingPageServed(t *testing.T) {
	router := newTestApplication(t).Router()

	rec := get(router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("expected security headers")
	}
}

func TestStaticAssetsEmbedded(t *testing.T) {
	router := newTestApplication(t).Router()

	for _, asset := range []string{"/static/css/landing.css", "/static/img/logo.svg", "/static/img/icons.svg", "/static/img/robot-hero.svg", "/static/img/robot-peaking.svg"} {
		if rec := get(router, asset); rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", asset, rec.Code)
		}
	}
}

func TestAPINotFoundIsJSON(t *testing.T) {
	router := newTestApplication(t).Router()

	rec := get(router, "/api/v1/unknown")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("expected JSON 404, got %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
}

func TestCacheRouteAbsentWithoutCache(t *testing.T) {
	router := newTestApplication(t).Router()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected cache route to be absent, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestApplication(t).Router()
	get(router, "/")

	rec := get(router, "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "debase_landing_http_requests_total") {
		t.Fatalf("expected request metrics to be exported")
	}
}
