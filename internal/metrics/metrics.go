package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend labels for the two upstream services of a lookup.
const (
	BackendGeocoder = "geocoder"
	BackendOverpass = "overpass"
)

type Metrics struct {
	Lookups          *prometheus.CounterVec
	BackendErrors    *prometheus.CounterVec
	BackendSeconds   *prometheus.HistogramVec
	SearchesInFlight prometheus.Gauge
	PointsPerLookup  prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Lookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "pitstop_lookups_total",
			Help: "Total number of shop lookups by outcome.",
		}, []string{"outcome"}),
		BackendErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "pitstop_backend_errors_total",
			Help: "Total number of failed requests to an upstream backend.",
		}, []string{"backend"}),
		BackendSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pitstop_backend_request_duration_seconds",
			Help:    "Duration of requests to the geocoding and spatial backends.",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend", "provider"}),
		SearchesInFlight: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "pitstop_searches_in_flight",
			Help: "Current number of lookups waiting on a backend.",
		}),
		PointsPerLookup: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "pitstop_points_of_interest_per_lookup",
			Help:    "Number of shops returned by successful lookups.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}
}
