// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Storage
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photomap_db_query_duration_seconds",
			Help:    "Duration of photo store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "load_all", "insert", "count", "ensure_schema"
	)

	DBErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_db_errors_total",
			Help: "Total number of photo store errors by operation and class",
		},
		[]string{"operation", "class"}, // class: "unavailable", "corrupt", "write"
	)

	RowsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photomap_rows_dropped_total",
			Help: "Rows skipped at load time because their datetime was missing or unparseable",
		},
	)

	// Geocoding
	GeocodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_geocode_requests_total",
			Help: "Geocode lookups by outcome",
		},
		[]string{"outcome"}, // "found", "not_found", "error", "cache_hit"
	)

	GeocodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "photomap_geocode_duration_seconds",
			Help:    "Duration of outbound geocode requests including rate limiter wait",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// Circuit Breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "photomap_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Reload cache
	CacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_cache_events_total",
			Help: "Record cache hits, misses and invalidations",
		},
		[]string{"event"},
	)

	CacheGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photomap_cache_generation",
			Help: "Current reload counter of the record cache",
		},
	)

	// Pipeline
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photomap_pipeline_duration_seconds",
			Help:    "Duration of view pipeline stages",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"stage"}, // "load", "filter", "group", "present"
	)

	MarkersRendered = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "photomap_markers_rendered",
			Help: "Markers produced by the most recent view, per adapter",
		},
		[]string{"adapter"},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photomap_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photomap_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photomap_websocket_connections",
			Help: "Open websocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photomap_websocket_messages_sent_total",
			Help: "Websocket notifications broadcast, by message type",
		},
		[]string{"type"},
	)
)

// RecordDBQuery observes a storage call and counts it as an error of class when class is non-empty.
func RecordDBQuery(operation string, duration time.Duration, class string) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if class != "" {
		DBErrors.WithLabelValues(operation, class).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ObserveStage records the duration of one pipeline stage started at start.
func ObserveStage(stage string, start time.Time) {
	PipelineDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
