// Package config loads the runtime configuration for the demo driver.
// Values come from environment variables with an optional YAML file overlay,
// and invalid values fall back to safe defaults with a logged warning
// (fail-open strategy).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "blogflow/pkg/config"
)

// Pipeline holds the tunables for a demo run of the post pipelines.
type Pipeline struct {
	// TopPerCategory is the per-category limit for the grouping pipelines.
	TopPerCategory int

	// FeaturedCategory is the category shown by the single-category feed.
	FeaturedCategory string

	// FixedWindowSize is the batch size for fixed windowing.
	FixedWindowSize int

	// SlidingWindowSize is the window size for sliding windowing.
	SlidingWindowSize int

	// Concurrency is the ceiling for the bounded-concurrency map.
	Concurrency int

	// WorkDelay simulates per-element processing latency in the
	// bounded-concurrency map demo.
	WorkDelay time.Duration

	// RelatedLimit is how many related posts to surface per target.
	RelatedLimit int

	// AuthorLimit is how many top authors to surface.
	AuthorLimit int

	// MetricsAddr is the listen address for the Prometheus endpoint.
	// Empty disables the metrics server.
	MetricsAddr string
}

// fileConfig mirrors Pipeline for the YAML overlay. Durations are strings so
// operators can write "100ms" instead of nanosecond counts.
type fileConfig struct {
	TopPerCategory    *int    `yaml:"top_per_category"`
	FeaturedCategory  *string `yaml:"featured_category"`
	FixedWindowSize   *int    `yaml:"fixed_window_size"`
	SlidingWindowSize *int    `yaml:"sliding_window_size"`
	Concurrency       *int    `yaml:"concurrency"`
	WorkDelay         *string `yaml:"work_delay"`
	RelatedLimit      *int    `yaml:"related_limit"`
	AuthorLimit       *int    `yaml:"author_limit"`
	MetricsAddr       *string `yaml:"metrics_addr"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Pipeline {
	return Pipeline{
		TopPerCategory:    3,
		FeaturedCategory:  "Java",
		FixedWindowSize:   3,
		SlidingWindowSize: 2,
		Concurrency:       4,
		WorkDelay:         100 * time.Millisecond,
		RelatedLimit:      3,
		AuthorLimit:       3,
		MetricsAddr:       "",
	}
}

// Load builds the pipeline configuration. Precedence, lowest to highest:
// defaults, the YAML file named by CONFIG_FILE, then individual environment
// variables. Out-of-range values are replaced by their defaults with a
// warning rather than aborting the run.
func Load(logger *slog.Logger) (Pipeline, error) {
	cfg := Default()

	if path := pkgconfig.GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Pipeline{}, fmt.Errorf("load config file: %w", err)
		}
		logger.Info("config file applied", slog.String("path", path))
	}

	cfg.TopPerCategory = pkgconfig.GetEnvInt("TOP_PER_CATEGORY", cfg.TopPerCategory)
	cfg.FeaturedCategory = pkgconfig.GetEnvString("FEATURED_CATEGORY", cfg.FeaturedCategory)
	cfg.FixedWindowSize = pkgconfig.GetEnvInt("WINDOW_FIXED_SIZE", cfg.FixedWindowSize)
	cfg.SlidingWindowSize = pkgconfig.GetEnvInt("WINDOW_SLIDING_SIZE", cfg.SlidingWindowSize)
	cfg.Concurrency = pkgconfig.GetEnvInt("MAP_CONCURRENCY", cfg.Concurrency)
	cfg.WorkDelay = pkgconfig.GetEnvDuration("MAP_WORK_DELAY", cfg.WorkDelay)
	cfg.RelatedLimit = pkgconfig.GetEnvInt("RELATED_LIMIT", cfg.RelatedLimit)
	cfg.AuthorLimit = pkgconfig.GetEnvInt("AUTHOR_LIMIT", cfg.AuthorLimit)
	cfg.MetricsAddr = pkgconfig.GetEnvString("METRICS_ADDR", cfg.MetricsAddr)

	cfg.sanitize(logger)
	return cfg, nil
}

// applyFile overlays values from a YAML file onto the configuration.
// Only keys present in the file are applied.
func (c *Pipeline) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.TopPerCategory != nil {
		c.TopPerCategory = *fc.TopPerCategory
	}
	if fc.FeaturedCategory != nil {
		c.FeaturedCategory = *fc.FeaturedCategory
	}
	if fc.FixedWindowSize != nil {
		c.FixedWindowSize = *fc.FixedWindowSize
	}
	if fc.SlidingWindowSize != nil {
		c.SlidingWindowSize = *fc.SlidingWindowSize
	}
	if fc.Concurrency != nil {
		c.Concurrency = *fc.Concurrency
	}
	if fc.WorkDelay != nil {
		d, err := time.ParseDuration(*fc.WorkDelay)
		if err != nil {
			return fmt.Errorf("parse work_delay %q: %w", *fc.WorkDelay, err)
		}
		c.WorkDelay = d
	}
	if fc.RelatedLimit != nil {
		c.RelatedLimit = *fc.RelatedLimit
	}
	if fc.AuthorLimit != nil {
		c.AuthorLimit = *fc.AuthorLimit
	}
	if fc.MetricsAddr != nil {
		c.MetricsAddr = *fc.MetricsAddr
	}
	return nil
}

// sanitize clamps out-of-range values back to their defaults, logging each
// fallback.
func (c *Pipeline) sanitize(logger *slog.Logger) {
	defaults := Default()

	clamp := func(name string, value *int, min int, fallback int) {
		if *value < min {
			logger.Warn("configuration value out of range, using default",
				slog.String("key", name),
				slog.Int("value", *value),
				slog.Int("default", fallback))
			*value = fallback
		}
	}

	clamp("fixed window size", &c.FixedWindowSize, 1, defaults.FixedWindowSize)
	clamp("sliding window size", &c.SlidingWindowSize, 1, defaults.SlidingWindowSize)
	clamp("map concurrency", &c.Concurrency, 1, defaults.Concurrency)

	if err := pkgconfig.ValidateNonNegativeDuration(c.WorkDelay); err != nil {
		logger.Warn("work delay out of range, using default",
			slog.Duration("value", c.WorkDelay),
			slog.Duration("default", defaults.WorkDelay))
		c.WorkDelay = defaults.WorkDelay
	}
}
