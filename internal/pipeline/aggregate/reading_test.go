package aggregate_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogflow/internal/pipeline/aggregate"
)

func TestEstimateReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    time.Duration
	}{
		{
			name:    "two hundred words is one minute",
			content: strings.Repeat("word ", 200),
			want:    time.Minute,
		},
		{
			name:    "fifty words is fifteen seconds",
			content: strings.Repeat("word ", 50),
			want:    15 * time.Second,
		},
		{
			name:    "single word rounds to zero",
			content: "hello",
			want:    0,
		},
		{
			name:    "rounds to nearest second",
			content: strings.Repeat("word ", 5), // 1.5s rounds up
			want:    2 * time.Second,
		},
		{
			name:    "empty content",
			content: "",
			want:    0,
		},
		{
			name:    "whitespace runs count as single separators",
			content: "one \t two\n\nthree    four",
			want:    time.Second, // 4 words = 1.2s rounds to 1s
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, aggregate.EstimateReadingTime(tt.content))
		})
	}
}

func TestReadingTimes(t *testing.T) {
	t.Parallel()

	agg := aggregate.NewReadingTimes()
	agg.Add(contentPost(1, strings.Repeat("word ", 200)))
	agg.Add(contentPost(2, strings.Repeat("word ", 400)))

	times := agg.Finish()
	assert.Equal(t, map[int64]time.Duration{
		1: time.Minute,
		2: 2 * time.Minute,
	}, times)
}
