package geocoding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GeocodingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geocoding_request_duration_seconds",
			Help:    "Duration of reverse geocoding lookups including courtesy delay",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 1.5, 2, 3, 5, 10},
		},
		[]string{"service", "method", "outcome"},
	)

	GeocodingCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocoding_cache_requests_total",
			Help: "Total number of geocoding cache lookups",
		},
		[]string{"result"},
	)
)
