package page

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"debase-landing/internal/sections"
	"debase-landing/pkg/cache"
	"debase-landing/pkg/logger"
	"debase-landing/pkg/navigation"
)

const cacheKeyPrefix = "landing:"

// Cache is the subset of pkg/cache used for rendered markup.
type Cache interface {
	Enabled() bool
	GetString(key string) (string, error)
	SetString(key, value string, expiration time.Duration) error
	DeletePattern(pattern string) error
}

type LandingService struct {
	registry *sections.Registry
	cache    Cache
	ttl      time.Duration
}

func NewLandingService(registry *sections.Registry, cacheService Cache, ttl time.Duration) *LandingService {
	if registry == nil {
		registry = sections.Default()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &LandingService{
		registry: registry,
		cache:    cacheService,
		ttl:      ttl,
	}
}

func cacheKey(state navigation.MenuState) string {
	return cacheKeyPrefix + "menu:" + state.Label()
}

func (s *LandingService) cacheEnabled() bool {
	return s.cache != nil && s.cache.Enabled()
}

// Render returns the page body for the given menu state.
func (s *LandingService) Render(state navigation.MenuState) (template.HTML, error) {
	initMetrics()
	key := cacheKey(state)

	if s.cacheEnabled() {
		body, err := s.cache.GetString(key)
		switch {
		case err == nil:
			cacheLookups.WithLabelValues("hit").Inc()
			return template.HTML(body), nil
		case errors.Is(err, cache.ErrCacheMiss):
			cacheLookups.WithLabelValues("miss").Inc()
		default:
			cacheLookups.WithLabelValues("error").Inc()
			logger.Warn("Render cache lookup failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	start := time.Now()
	body, err := Compose(sections.NewRenderContext(state), s.registry)
	renderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("failed to compose landing page: %w", err)
	}

	if s.cacheEnabled() {
		if err := s.cache.SetString(key, body, s.ttl); err != nil {
			logger.Warn("Failed to store rendered page", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	// Section renderers escape or sanitise every value they emit.
	return template.HTML(body), nil
}

// InvalidateCache drops every cached render.
func (s *LandingService) InvalidateCache() error {
	if !s.cacheEnabled() {
		return nil
	}
	if err := s.cache.DeletePattern(cacheKeyPrefix + "*"); err != nil {
		return fmt.Errorf("failed to invalidate landing cache: %w", err)
	}
	return nil
}

// Warm renders every menu state so the next requests are served from cache.
func (s *LandingService) Warm(ctx context.Context) error {
	if !s.cacheEnabled() {
		return nil
	}

	var state navigation.MenuState
	for i := 0; i < 2; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Render(state); err != nil {
			return err
		}
		state.Toggle()
	}
	return nil
}

// CacheEnabled reports whether renders are cached.
func (s *LandingService) CacheEnabled() bool {
	return s.cacheEnabled()
}
