package background

import (
	"context"
	"time"
)

const WarmLandingCacheJob = "warm-landing-cache"

// Warmer pre-renders pages into the render cache.
type Warmer interface {
	Warm(ctx context.Context) error
}

func WarmLandingCache(w Warmer) Job {
	return Job{
		Name:       WarmLandingCacheJob,
		Run:        w.Warm,
		Timeout:    10 * time.Second,
		MaxRetries: 2,
		Backoff:    2 * time.Second,
	}
}
