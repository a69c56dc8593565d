package page

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce sync.Once

	cacheLookups   *prometheus.CounterVec
	renderDuration prometheus.Histogram
)

func initMetrics() {
	metricsOnce.Do(func() {
		cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "debase_landing",
			Subsystem: "page",
			Name:      "cache_lookups_total",
			Help:      "Rendered page cache lookups by result",
		}, []string{"result"})

		renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "debase_landing",
			Subsystem: "page",
			Name:      "render_duration_seconds",
			Help:      "Time spent composing the landing page",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		})
	})
}
