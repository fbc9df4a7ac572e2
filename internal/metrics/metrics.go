// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "neo_studio"

var (
	IdeasGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ideas_generated_total",
			Help:      "Total post ideas generated",
		},
		[]string{"mood", "source"}, // source: "manual", "pipeline"
	)

	PostsScheduled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_scheduled_total",
			Help:      "Total posts scheduled",
		},
		[]string{"platform", "source"},
	)

	ScheduleRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_rejections_total",
			Help:      "Schedule requests rejected by validation",
		},
		[]string{"reason"},
	)

	ViewDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_duration_seconds",
			Help:      "Time spent computing a derived view",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8), // 50µs to ~0.8s
		},
		[]string{"view"},
	)

	SeedEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "seed_entities",
			Help:      "Entities loaded from the seed source at startup",
		},
		[]string{"collection"},
	)
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
