package metrics

import (
	"time"
)

// RecordPipelineRun records one successful pipeline execution: its duration
// and the number of posts it consumed.
func RecordPipelineRun(pipeline string, duration time.Duration, posts int) {
	PipelineRunsTotal.WithLabelValues(pipeline, "success").Inc()
	PipelineDuration.WithLabelValues(pipeline).Observe(duration.Seconds())
	PostsProcessedTotal.WithLabelValues(pipeline).Add(float64(posts))
}

// RecordPipelineError records a pipeline execution that failed.
func RecordPipelineError(pipeline string) {
	PipelineRunsTotal.WithLabelValues(pipeline, "error").Inc()
}

// RecordConcurrentMapCancelled records a bounded-concurrency map run that was
// cancelled before completion.
func RecordConcurrentMapCancelled() {
	ConcurrentMapCancellationsTotal.Inc()
}

// TrackInFlight marks one concurrent transformation as started and returns a
// function marking it finished. Intended for use as
//
//	done := metrics.TrackInFlight()
//	defer done()
func TrackInFlight() func() {
	ConcurrentMapInFlight.Inc()
	return func() {
		ConcurrentMapInFlight.Dec()
	}
}
