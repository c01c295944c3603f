package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogflow/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "ascii", input: "hello", want: 5},
		{name: "empty", input: "", want: 0},
		{name: "japanese", input: "こんにちは", want: 5},
		{name: "mixed", input: "hello世界", want: 7},
		{name: "emoji", input: "Hello👋", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, text.CountRunes(tt.input))
		})
	}
}
