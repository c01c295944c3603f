package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogflow/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("BLOGFLOW_TEST_STRING", "hello")
		assert.Equal(t, "hello", config.GetEnvString("BLOGFLOW_TEST_STRING", "default"))
	})

	t.Run("returns default when unset", func(t *testing.T) {
		assert.Equal(t, "default", config.GetEnvString("BLOGFLOW_TEST_UNSET", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid integer", value: "42", want: 42},
		{name: "negative integer", value: "-7", want: -7},
		{name: "invalid integer falls back", value: "abc", want: 3},
		{name: "empty falls back", value: "", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("BLOGFLOW_TEST_INT", tt.value)
			}
			assert.Equal(t, tt.want, config.GetEnvInt("BLOGFLOW_TEST_INT", 3))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "true literal", value: "true", want: true},
		{name: "one", value: "1", want: true},
		{name: "false literal", value: "false", want: false},
		{name: "zero", value: "0", want: false},
		{name: "garbage falls back", value: "yes please", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOGFLOW_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, config.GetEnvBool("BLOGFLOW_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "milliseconds", value: "250ms", want: 250 * time.Millisecond},
		{name: "compound", value: "1m30s", want: 90 * time.Second},
		{name: "invalid falls back", value: "soon", want: time.Second},
		{name: "empty falls back", value: "", want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("BLOGFLOW_TEST_DURATION", tt.value)
			}
			assert.Equal(t, tt.want, config.GetEnvDuration("BLOGFLOW_TEST_DURATION", time.Second))
		})
	}
}

func TestDurationValidators(t *testing.T) {
	assert.NoError(t, config.ValidatePositiveDuration(time.Second))
	assert.Error(t, config.ValidatePositiveDuration(0))
	assert.Error(t, config.ValidatePositiveDuration(-time.Second))

	assert.NoError(t, config.ValidateNonNegativeDuration(0))
	assert.NoError(t, config.ValidateNonNegativeDuration(time.Second))
	assert.Error(t, config.ValidateNonNegativeDuration(-time.Millisecond))
}
