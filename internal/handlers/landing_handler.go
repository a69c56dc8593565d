package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debase-landing/internal/config"
	"debase-landing/internal/page"
	"debase-landing/pkg/logger"
	"debase-landing/pkg/navigation"
)

type LandingHandler struct {
	landing *page.LandingService
	config  *config.Config
}

func NewLandingHandler(landing *page.LandingService, cfg *config.Config) *LandingHandler {
	return &LandingHandler{landing: landing, config: cfg}
}

// RenderIndex renders the landing page. The menu query parameter selects the
// state of the mobile navigation drawer for this render only.
func (h *LandingHandler) RenderIndex(c *gin.Context) {
	state := navigation.ParseMenuState(c.Query(navigation.QueryParam()))

	body, err := h.landing.Render(state)
	if err != nil {
		logger.FromContext(c.Request.Context()).WithError(err).Error("Failed to render landing page")
		h.renderError(c, http.StatusInternalServerError, "The page could not be rendered")
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Title":        h.config.SiteName,
		"Description":  h.config.SiteDescription,
		"CanonicalURL": h.config.SiteURL + "/",
		"MenuOpen":     state.IsOpen(),
		"Body":         body,
	})
}

// NotFound renders the error page for unknown non-API routes.
func (h *LandingHandler) NotFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "The requested page could not be found")
}

func (h *LandingHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":      http.StatusText(status),
		"Error":      message,
		"StatusCode": status,
	})
}
