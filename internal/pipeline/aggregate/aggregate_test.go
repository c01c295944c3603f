package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogflow/internal/domain/entity"
	"blogflow/internal/pipeline/aggregate"
)

func post(id int64, title, author, category string, published time.Time) entity.Post {
	return entity.Post{
		ID:          id,
		Title:       title,
		Author:      author,
		Category:    category,
		Content:     "content",
		PublishedAt: published,
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func newestFirst(a, b entity.Post) bool {
	return a.PublishedAt.After(b.PublishedAt)
}

func byCategory(p entity.Post) string { return p.Category }

func titles(posts []entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

// The aggregators all satisfy the two-phase contract.
var (
	_ aggregate.Aggregator[entity.Post, []aggregate.Entry[string, entity.Post]] = (*aggregate.GroupLimit[entity.Post, string])(nil)
	_ aggregate.Aggregator[entity.Post, []entity.Post]                          = (*aggregate.RelatedPosts)(nil)
	_ aggregate.Aggregator[entity.Post, map[string]int]                         = (*aggregate.HashtagCounts)(nil)
	_ aggregate.Aggregator[entity.Post, map[int64]time.Duration]                = (*aggregate.ReadingTimes)(nil)
	_ aggregate.Aggregator[entity.Post, []aggregate.AuthorCount]                = (*aggregate.PopularAuthors)(nil)
	_ aggregate.Aggregator[entity.Post, []aggregate.MonthGroup]                 = (*aggregate.MonthlyArchive)(nil)
)

func TestGroupLimit(t *testing.T) {
	t.Parallel()

	posts := []entity.Post{
		post(1, "Go Iterators", "a", "Go", day(1)),
		post(2, "Java Streams Guide", "b", "Java", day(5)),
		post(3, "Go Generics", "a", "Go", day(3)),
		post(4, "Java Records", "b", "Java", day(7)),
		post(5, "Go Modules", "c", "Go", day(6)),
	}

	t.Run("entries follow first occurrence order", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewGroupLimit(byCategory, 2, newestFirst)
		for _, p := range posts {
			agg.Add(p)
		}

		entries := agg.Finish()
		require.Len(t, entries, 2)
		assert.Equal(t, "Go", entries[0].Key)
		assert.Equal(t, "Java", entries[1].Key)
		assert.Equal(t, []string{"Go Modules", "Go Generics"}, titles(entries[0].Items))
		assert.Equal(t, []string{"Java Records", "Java Streams Guide"}, titles(entries[1].Items))
	})

	t.Run("limit below one yields empty lists", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewGroupLimit(byCategory, 0, newestFirst)
		for _, p := range posts {
			agg.Add(p)
		}

		for _, entry := range agg.Finish() {
			assert.Empty(t, entry.Items)
		}
	})

	t.Run("finish without adds emits nothing", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewGroupLimit(byCategory, 3, newestFirst)
		assert.Empty(t, agg.Finish())
	})
}

func TestGroupLimitMerge(t *testing.T) {
	t.Parallel()

	left := aggregate.NewGroupLimit(byCategory, 3, newestFirst)
	left.Add(post(1, "Go Iterators", "a", "Go", day(1)))
	left.Add(post(2, "Java Streams Guide", "b", "Java", day(5)))

	right := aggregate.NewGroupLimit(byCategory, 3, newestFirst)
	right.Add(post(3, "Java Records", "b", "Java", day(7)))
	right.Add(post(4, "Cloud Native Basics", "c", "Cloud", day(2)))

	left.Merge(right)
	entries := left.Finish()

	require.Len(t, entries, 3)
	// Merge is a key-wise union: the Java lists combine instead of replacing.
	assert.Equal(t, "Java", entries[1].Key)
	assert.Equal(t, []string{"Java Records", "Java Streams Guide"}, titles(entries[1].Items))
	// Keys new to the left partition append after its own keys.
	assert.Equal(t, "Cloud", entries[2].Key)
}
