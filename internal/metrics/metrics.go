package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fyyur_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Outcomes counts repository mutations. result is "ok" or the failure kind.
	Outcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_repository_outcomes_total",
			Help: "Total number of create, update and delete operations by result",
		},
		[]string{"operation", "result"},
	)
)

func RecordRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func RecordOutcome(operation string, ok bool, kind string) {
	result := "ok"
	if !ok {
		result = kind
	}
	Outcomes.WithLabelValues(operation, result).Inc()
}
