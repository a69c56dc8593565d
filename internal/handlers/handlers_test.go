package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"debase-landing/internal/config"
	"debase-landing/internal/page"
	"debase-landing/internal/web"
	"debase-landing/pkg/utils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := utils.LoadTemplates(web.Templates, "templates")
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	cfg := &config.Config{
		SiteName:        "DEBASE Trading Bot",
		SiteDescription: "AI trading on Base",
		SiteURL:         "https://debase.bot",
	}

	landing := NewLandingHandler(page.NewLandingService(nil, nil, 0), cfg)
	nav := NewNavigationHandler()
	seo := NewSEOHandler(cfg)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.GET("/", landing.RenderIndex)
	router.GET("/robots.txt", seo.Robots)
	router.GET("/sitemap.xml", seo.Sitemap)
	router.GET("/health", Health)
	router.GET("/api/v1/navigation", nav.Get)
	router.POST("/api/v1/navigation/toggle", nav.Toggle)
	router.NoRoute(landing.NotFound)
	return router
}

func perform(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestRenderIndexClosedMenu(t *testing.T) {
	rec := perform(newTestRouter(t), http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>DEBASE Trading Bot</title>") {
		t.Fatalf("expected page title in layout")
	}
	if strings.Contains(body, "data-mobile-menu") {
		t.Fatalf("mobile menu must be hidden on initial render")
	}
	if strings.Contains(body, "landing--menu-open") {
		t.Fatalf("body class must not mark the menu open")
	}
	if strings.Count(body, `<article class="landing__feature-item`) != 6 {
		t.Fatalf("expected six feature cards")
	}
}

func TestRenderIndexOpenMenu(t *testing.T) {
	rec := perform(newTestRouter(t), http.MethodGet, "/?menu=open", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "data-mobile-menu") {
		t.Fatalf("expected mobile menu when menu=open")
	}
	if !strings.Contains(body, "landing--menu-open") {
		t.Fatalf("expected open body class")
	}
	if !strings.Contains(body, `class="landing__nav-toggle" href="/"`) {
		t.Fatalf("toggle should link back to the closed state")
	}
}

func TestNavigationGet(t *testing.T) {
	rec := perform(newTestRouter(t), http.MethodGet, "/api/v1/navigation", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp navigationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.MenuOpen || len(resp.Mobile) != 0 {
		t.Fatalf("expected closed menu without mobile links: %+v", resp)
	}
	if len(resp.Desktop) != 4 || resp.ToggleHref != "/?menu=open" {
		t.Fatalf("unexpected navigation response: %+v", resp)
	}
}

func TestNavigationGetRejectsUnknownState(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(router, http.MethodGet, "/api/v1/navigation?menu=sideways", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = perform(router, http.MethodGet, "/api/v1/navigation?menu=open", nil)
	var resp navigationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.MenuOpen || len(resp.Mobile) != 4 {
		t.Fatalf("expected open menu with mobile links: %+v", resp)
	}
}

func TestNavigationToggle(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(router, http.MethodPost, "/api/v1/navigation/toggle", []byte(`{"open":false}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var opened navigationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &opened); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !opened.MenuOpen {
		t.Fatalf("expected toggle to open the menu")
	}
	if len(opened.Mobile) != len(opened.Desktop) {
		t.Fatalf("mobile and desktop links diverge: %+v", opened)
	}
	for i := range opened.Desktop {
		if opened.Mobile[i] != opened.Desktop[i] {
			t.Fatalf("mobile link %d differs from desktop", i)
		}
	}

	rec = perform(router, http.MethodPost, "/api/v1/navigation/toggle", []byte(`{"open":true}`))
	var closed navigationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &closed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if closed.MenuOpen || len(closed.Mobile) != 0 {
		t.Fatalf("expected second toggle to close the menu: %+v", closed)
	}
}

func TestNavigationToggleRequiresState(t *testing.T) {
	rec := perform(newTestRouter(t), http.MethodPost, "/api/v1/navigation/toggle", []byte(`{}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRobotsAndSitemap(t *testing.T) {
	router := newTestRouter(t)

	robots := perform(router, http.MethodGet, "/robots.txt", nil)
	if !strings.Contains(robots.Body.String(), "Sitemap: https://debase.bot/sitemap.xml") {
		t.Fatalf("unexpected robots.txt: %s", robots.Body.String())
	}

	sitemap := perform(router, http.MethodGet, "/sitemap.xml", nil)
	if sitemap.Code != http.StatusOK || !strings.Contains(sitemap.Body.String(), "<loc>https://debase.bot/</loc>") {
		t.Fatalf("unexpected sitemap: %d %s", sitemap.Code, sitemap.Body.String())
	}
}

func TestHealthAndNotFound(t *testing.T) {
	router := newTestRouter(t)

	if rec := perform(router, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected healthy response, got %d", rec.Code)
	}

	rec := perform(router, http.MethodGet, "/missing", nil)
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "could not be found") {
		t.Fatalf("expected rendered 404 page, got %d", rec.Code)
	}
}
