// Package metrics holds the Prometheus collectors for the HTTP server and the
// catalog triggers.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_http_requests_total",
			Help: "Total number of HTTP requests received",
		},
		[]string{"method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	ResponseBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movies_http_response_bytes_total",
			Help: "Total number of response body bytes written",
		},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movies_http_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	TriggersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_triggers_total",
			Help: "Filter triggers handled, by kind and outcome",
		},
		[]string{"trigger", "outcome"},
	)

	TriggerMatches = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_trigger_matches",
			Help:    "Number of rows highlighted per trigger",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"trigger"},
	)

	StoreRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movies_store_records",
			Help: "Number of records loaded into the store",
		},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method string, status int, written int64, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	ResponseBytes.Add(float64(written))
}

// RecordTrigger records one trigger. outcome is "ok" or "invalid".
func RecordTrigger(trigger, outcome string, matched int) {
	TriggersTotal.WithLabelValues(trigger, outcome).Inc()
	if outcome == "ok" {
		TriggerMatches.WithLabelValues(trigger).Observe(float64(matched))
	}
}
