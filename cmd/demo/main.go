// Command demo runs every blogflow pipeline once over the fixed sample posts
// and renders the results to stdout. It is a thin driver: all observable
// contracts live in the pipeline packages, and rendering here is free-form.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogflow/internal/config"
	"blogflow/internal/domain/entity"
	"blogflow/internal/observability/logging"
	"blogflow/internal/observability/metrics"
	"blogflow/internal/observability/tracing"
	"blogflow/internal/pipeline/aggregate"
	"blogflow/internal/pipeline/grouping"
	"blogflow/internal/pipeline/parallel"
	"blogflow/internal/pipeline/window"
	"blogflow/internal/utils/text"
	"blogflow/tests/fixtures"
)

// Prefix sizes keep the windowing and concurrency demos short enough to read.
const (
	fixedWindowPrefix   = 9
	slidingWindowPrefix = 5
	foldPrefix          = 5
	concurrentPrefix    = 10
)

func main() {
	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	posts := fixtures.SamplePosts()
	if err := entity.ValidateAll(posts); err != nil {
		logger.Error("sample data failed validation", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, logger, cfg.MetricsAddr)
	}

	logger.Info("running pipelines",
		slog.Int("posts", len(posts)),
		slog.Int("concurrency", cfg.Concurrency))

	sections := []struct {
		name string
		run  func(context.Context) error
	}{
		{"category_feed", func(ctx context.Context) error { return categoryFeed(posts, cfg) }},
		{"grouping", func(ctx context.Context) error { return recentByCategory(posts, cfg) }},
		{"fixed_window", func(ctx context.Context) error { return fixedWindows(posts, cfg) }},
		{"sliding_window", func(ctx context.Context) error { return slidingWindows(posts, cfg) }},
		{"fold", func(ctx context.Context) error { return foldTitles(posts) }},
		{"scan", func(ctx context.Context) error { return scanTitles(posts) }},
		{"concurrent_map", func(ctx context.Context) error { return concurrentTitleLengths(ctx, posts, cfg) }},
		{"related_posts", func(ctx context.Context) error { return relatedPosts(posts, cfg) }},
		{"hashtags", func(ctx context.Context) error { return hashtags(posts) }},
		{"reading_times", func(ctx context.Context) error { return readingTimes(posts) }},
		{"popular_authors", func(ctx context.Context) error { return popularAuthors(posts, cfg) }},
		{"monthly_archive", func(ctx context.Context) error { return monthlyArchive(posts) }},
	}

	for _, section := range sections {
		if err := runPipeline(ctx, logger, section.name, len(posts), section.run); err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("run interrupted", slog.String("pipeline", section.name))
				os.Exit(130)
			}
			os.Exit(1)
		}
	}

	logger.Info("all pipelines completed")
}

// runPipeline wraps one pipeline execution with a span, timing, and metrics.
func runPipeline(ctx context.Context, logger *slog.Logger, name string, posts int, run func(context.Context) error) error {
	ctx, span := tracing.StartPipeline(ctx, name)
	defer span.End()

	start := time.Now()
	if err := run(ctx); err != nil {
		metrics.RecordPipelineError(name)
		logging.WithPipeline(logger, name).Error("pipeline failed", slog.Any("error", err))
		return err
	}

	duration := time.Since(start)
	metrics.RecordPipelineRun(name, duration, posts)
	logging.WithPipeline(logger, name).Debug("pipeline completed", slog.Duration("duration", duration))
	return nil
}

func categoryFeed(posts []entity.Post, cfg config.Pipeline) error {
	fmt.Printf("\n=== Posts in category %q ===\n", cfg.FeaturedCategory)
	for _, p := range grouping.FilterByCategory(posts, cfg.FeaturedCategory) {
		fmt.Printf("  - %s (published %s)\n", p.Title, p.PublishedAt.Format(time.DateOnly))
	}
	return nil
}

func recentByCategory(posts []entity.Post, cfg config.Pipeline) error {
	byCategory := func(p entity.Post) string { return p.Category }

	fmt.Printf("\n=== Top %d recent posts per category (aggregate then transform) ===\n", cfg.TopPerCategory)
	printGrouped(grouping.RecentByCategory(posts, cfg.TopPerCategory))

	fmt.Printf("\n=== Top %d recent posts per category (group then map) ===\n", cfg.TopPerCategory)
	printGrouped(grouping.TopNByKeyStreamed(posts, byCategory, cfg.TopPerCategory, grouping.NewestFirst))
	return nil
}

func printGrouped(grouped *grouping.Grouped[string, entity.Post]) {
	for _, pair := range grouped.Pairs() {
		fmt.Printf("\nCategory: %s\n", pair.Key)
		for _, p := range pair.Items {
			fmt.Printf("  - %s (published %s)\n", p.Title, p.PublishedAt.Format(time.DateOnly))
		}
	}
}

func fixedWindows(posts []entity.Post, cfg config.Pipeline) error {
	fmt.Printf("\n=== Posts in batches of %d ===\n", cfg.FixedWindowSize)
	for batch := range window.Fixed(window.All(prefix(posts, fixedWindowPrefix)), cfg.FixedWindowSize) {
		fmt.Println("\nBatch:")
		for _, p := range batch {
			fmt.Printf("  - %s\n", p.Title)
		}
	}
	return nil
}

func slidingWindows(posts []entity.Post, cfg config.Pipeline) error {
	fmt.Printf("\n=== Posts in sliding windows of %d ===\n", cfg.SlidingWindowSize)
	for win := range window.Sliding(window.All(prefix(posts, slidingWindowPrefix)), cfg.SlidingWindowSize) {
		fmt.Println("\nWindow:")
		for _, p := range win {
			fmt.Printf("  - %s\n", p.Title)
		}
	}
	return nil
}

func foldTitles(posts []entity.Post) error {
	fmt.Println("\n=== Folded titles ===")
	result := window.Fold(window.All(prefix(posts, foldPrefix)), "All titles: ",
		func(acc string, p entity.Post) string { return acc + p.Title + ", " })
	fmt.Println(result)
	return nil
}

func scanTitles(posts []entity.Post) error {
	fmt.Println("\n=== Progressive title concatenation ===")
	scanned := window.Scan(window.All(prefix(posts, foldPrefix)), "Titles so far: ",
		func(acc string, p entity.Post) string { return acc + p.Title + ", " })
	for step := range scanned {
		fmt.Println(step)
	}
	return nil
}

// titleLength pairs a post title with its character count.
type titleLength struct {
	Title  string
	Length int
}

func concurrentTitleLengths(ctx context.Context, posts []entity.Post, cfg config.Pipeline) error {
	fmt.Printf("\n=== Title lengths (processed with concurrency %d) ===\n", cfg.Concurrency)

	err := parallel.MapOrdered(ctx, window.All(prefix(posts, concurrentPrefix)),
		parallel.Config{Concurrency: cfg.Concurrency},
		func(ctx context.Context, p entity.Post) (titleLength, error) {
			done := metrics.TrackInFlight()
			defer done()

			// Simulate time-consuming per-post processing.
			select {
			case <-time.After(cfg.WorkDelay):
			case <-ctx.Done():
				return titleLength{}, ctx.Err()
			}
			return titleLength{Title: p.Title, Length: text.CountRunes(p.Title)}, nil
		},
		func(tl titleLength) error {
			fmt.Printf("%s: %d chars\n", tl.Title, tl.Length)
			return nil
		})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			metrics.RecordConcurrentMapCancelled()
		}
		return err
	}
	return nil
}

func relatedPosts(posts []entity.Post, cfg config.Pipeline) error {
	if len(posts) == 0 {
		return nil
	}
	target := posts[0]

	agg := aggregate.NewRelatedPosts(target, cfg.RelatedLimit)
	for _, p := range posts {
		agg.Add(p)
	}

	fmt.Printf("\n=== Posts related to %q ===\n", target.Title)
	for _, p := range agg.Finish() {
		fmt.Printf("  - %s (similarity %.2f)\n", p.Title, aggregate.TitleSimilarity(target.Title, p.Title))
	}
	return nil
}

func hashtags(posts []entity.Post) error {
	agg := aggregate.NewHashtagCounts()
	for _, p := range posts {
		agg.Add(p)
	}

	fmt.Println("\n=== Hashtag frequencies ===")
	counts := agg.Finish()
	for _, tag := range agg.Tags() {
		fmt.Printf("  #%s: %d\n", tag, counts[tag])
	}
	return nil
}

func readingTimes(posts []entity.Post) error {
	agg := aggregate.NewReadingTimes()
	for _, p := range posts {
		agg.Add(p)
	}

	fmt.Println("\n=== Estimated reading times ===")
	times := agg.Finish()
	for _, p := range posts {
		fmt.Printf("  %s: %s\n", p.Title, times[p.ID])
	}
	return nil
}

func popularAuthors(posts []entity.Post, cfg config.Pipeline) error {
	agg := aggregate.NewPopularAuthors(cfg.AuthorLimit)
	for _, p := range posts {
		agg.Add(p)
	}

	fmt.Printf("\n=== Top %d authors ===\n", cfg.AuthorLimit)
	for _, ac := range agg.Finish() {
		fmt.Printf("  %s: %d posts\n", ac.Author, ac.Posts)
	}
	return nil
}

func monthlyArchive(posts []entity.Post) error {
	agg := aggregate.NewMonthlyArchive()
	for _, p := range posts {
		agg.Add(p)
	}

	fmt.Println("\n=== Monthly archive ===")
	for _, group := range agg.Finish() {
		fmt.Printf("\n%s:\n", group.Month)
		for _, p := range group.Posts {
			fmt.Printf("  - %s (published %s)\n", p.Title, p.PublishedAt.Format(time.DateOnly))
		}
	}
	return nil
}

// prefix returns at most n leading posts without copying the backing array.
func prefix(posts []entity.Post, n int) []entity.Post {
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n]
}
