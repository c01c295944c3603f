// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics track how often each pipeline runs and how long it takes
var (
	// PipelineRunsTotal counts pipeline executions by pipeline name and status
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of pipeline executions",
		},
		[]string{"pipeline", "status"},
	)

	// PipelineDuration measures pipeline execution duration in seconds
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_duration_seconds",
			Help:    "Pipeline execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"pipeline"},
	)

	// PostsProcessedTotal counts posts consumed by each pipeline
	PostsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_processed_total",
			Help: "Total number of posts consumed by each pipeline",
		},
		[]string{"pipeline"},
	)
)

// Concurrent-map metrics track the bounded-parallelism pipeline
var (
	// ConcurrentMapInFlight tracks transformations currently in flight
	ConcurrentMapInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "concurrent_map_in_flight",
			Help: "Number of concurrent map transformations currently in flight",
		},
	)

	// ConcurrentMapCancellationsTotal counts runs that ended in cancellation
	ConcurrentMapCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "concurrent_map_cancellations_total",
			Help: "Total number of concurrent map runs cancelled before completion",
		},
	)
)
