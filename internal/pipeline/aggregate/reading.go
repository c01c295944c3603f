package aggregate

import (
	"math"
	"strings"
	"time"

	"blogflow/internal/domain/entity"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// ReadingTimes estimates how long each post takes to read, keyed by post ID.
type ReadingTimes struct {
	times map[int64]time.Duration
}

// NewReadingTimes returns an empty reading-time aggregator.
func NewReadingTimes() *ReadingTimes {
	return &ReadingTimes{times: make(map[int64]time.Duration)}
}

// Add records the reading-time estimate for a post.
func (r *ReadingTimes) Add(p entity.Post) {
	r.times[p.ID] = EstimateReadingTime(p.Content)
}

// Finish returns the per-post reading-time estimates.
func (r *ReadingTimes) Finish() map[int64]time.Duration {
	times := make(map[int64]time.Duration, len(r.times))
	for id, d := range r.times {
		times[id] = d
	}
	return times
}

// EstimateReadingTime estimates reading time for a piece of content. Words
// are whitespace-separated runs, and the estimate is the word count at the
// assumed reading speed, rounded to the nearest second.
func EstimateReadingTime(content string) time.Duration {
	wordCount := len(strings.Fields(content))
	seconds := math.Round(float64(wordCount) / wordsPerMinute * 60)
	return time.Duration(seconds) * time.Second
}
