package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"debase-landing/internal/config"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SEOHandler provides responses for SEO-focused endpoints like sitemap.xml and
// robots.txt.
type SEOHandler struct {
	config *config.Config
}

func NewSEOHandler(cfg *config.Config) *SEOHandler {
	return &SEOHandler{config: cfg}
}

// Sitemap lists the landing page. Section anchors are fragments of the same
// document and are not listed.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	baseURL := h.normalizedBaseURL()
	if baseURL == "" {
		c.String(http.StatusInternalServerError, "Unable to determine site URL")
		return
	}

	response := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: "1.0"},
		},
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.XML(http.StatusOK, response)
}

// Robots renders a robots.txt file that references the sitemap.
func (h *SEOHandler) Robots(c *gin.Context) {
	lines := []string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /api/",
	}

	if baseURL := h.normalizedBaseURL(); baseURL != "" {
		lines = append(lines, fmt.Sprintf("Sitemap: %s/sitemap.xml", baseURL))
	}

	body := strings.Join(lines, "\n") + "\n"
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func (h *SEOHandler) normalizedBaseURL() string {
	if h.config == nil {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSpace(h.config.SiteURL), "/")
}
