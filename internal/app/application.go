package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"debase-landing/internal/background"
	"debase-landing/internal/config"
	"debase-landing/internal/handlers"
	"debase-landing/internal/middleware"
	"debase-landing/internal/page"
	"debase-landing/internal/sections"
	"debase-landing/internal/web"
	"debase-landing/pkg/cache"
	"debase-landing/pkg/logger"
	"debase-landing/pkg/utils"
)

type Application struct {
	cfg *config.Config

	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager
	scheduler   *background.Scheduler

	landing  *page.LandingService
	handlers handlerContainer

	router *gin.Engine
	server *http.Server
}

type handlerContainer struct {
	Landing    *handlers.LandingHandler
	Navigation *handlers.NavigationHandler
	SEO        *handlers.SEOHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	app.initCache()
	app.landing = page.NewLandingService(sections.Default(), app.cache, cfg.CacheTTL)
	app.rateLimiter = middleware.NewRateLimitManager(context.Background())
	app.initScheduler()

	app.handlers = handlerContainer{
		Landing:    handlers.NewLandingHandler(app.landing, cfg),
		Navigation: handlers.NewNavigationHandler(),
		SEO:        handlers.NewSEOHandler(cfg),
	}

	if err := app.initRouter(); err != nil {
		_ = app.Shutdown(context.Background())
		return nil, err
	}

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"cache":       a.landing.CacheEnabled(),
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		_ = a.rateLimiter.Shutdown()
	}

	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(ctx); err != nil {
			logger.Error(err, "Background scheduler did not stop in time", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

// initCache connects to Redis when enabled. Connection failures disable the
// cache rather than failing startup; the page renders fine without it.
func (a *Application) initCache() {
	if !a.cfg.EnableCache {
		a.cache, _ = cache.NewCache("", false)
		return
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		logger.Error(err, "Redis unavailable, rendering without cache", map[string]interface{}{"addr": a.cfg.RedisURL})
		a.cache, _ = cache.NewCache("", false)
		return
	}

	logger.Info("Render cache enabled", map[string]interface{}{"addr": a.cfg.RedisURL, "ttl": a.cfg.CacheTTL.String()})
	a.cache = c
}

// initScheduler starts the background worker that keeps the render cache
// warm. Nothing runs in the background when caching is off.
func (a *Application) initScheduler() {
	if !a.landing.CacheEnabled() {
		return
	}

	a.scheduler = background.NewScheduler(background.Config{Workers: 1, QueueSize: 4})
	a.scheduler.Start(context.Background())
	a.warmCache()
}

func (a *Application) warmCache() {
	if a.scheduler == nil {
		return
	}
	err := a.scheduler.ScheduleUnique(background.WarmLandingCache(a.landing))
	if err != nil && !errors.Is(err, background.ErrAlreadyScheduled) {
		logger.Warn("Failed to schedule cache warm-up", map[string]interface{}{"error": err.Error()})
	}
}

func (a *Application) initRouter() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimiter))

	templates, err := utils.LoadTemplates(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(templates)
	logger.Info("Templates loaded successfully", nil)

	router.GET("/health", handlers.Health)
	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/static/img/logo.svg")
	})

	router.GET("/", a.handlers.Landing.RenderIndex)
	router.GET("/robots.txt", a.handlers.SEO.Robots)
	router.GET("/sitemap.xml", a.handlers.SEO.Sitemap)

	origins := a.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{a.cfg.SiteURL}
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.NoIndexMiddleware())
	v1.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Admin-Token"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	{
		v1.GET("/navigation", a.handlers.Navigation.Get)
		v1.POST("/navigation/toggle", a.handlers.Navigation.Toggle)

		if a.landing.CacheEnabled() && a.cfg.AdminToken != "" {
			admin := v1.Group("")
			admin.Use(middleware.AdminTokenMiddleware(a.cfg.AdminToken))
			admin.DELETE("/cache", handlers.ClearCache(a.landing, a.warmCache))
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		a.handlers.Landing.NotFound(c)
	})

	a.router = router
	return nil
}
