package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogflow/internal/pipeline/aggregate"
)

func TestPopularAuthors(t *testing.T) {
	t.Parallel()

	t.Run("ranks by descending post count", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewPopularAuthors(2)
		for _, author := range []string{"alice", "bob", "alice", "carol", "alice", "bob"} {
			agg.Add(post(1, "t", author, "Go", day(1)))
		}

		top := agg.Finish()
		require.Len(t, top, 2)
		assert.Equal(t, aggregate.AuthorCount{Author: "alice", Posts: 3}, top[0])
		assert.Equal(t, aggregate.AuthorCount{Author: "bob", Posts: 2}, top[1])
	})

	t.Run("ties keep encounter order", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewPopularAuthors(10)
		for _, author := range []string{"bob", "alice", "bob", "alice"} {
			agg.Add(post(1, "t", author, "Go", day(1)))
		}

		top := agg.Finish()
		require.Len(t, top, 2)
		assert.Equal(t, "bob", top[0].Author)
		assert.Equal(t, "alice", top[1].Author)
	})

	t.Run("limit below one yields nothing", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewPopularAuthors(0)
		agg.Add(post(1, "t", "alice", "Go", day(1)))
		assert.Empty(t, agg.Finish())
	})

	t.Run("fewer authors than limit", func(t *testing.T) {
		t.Parallel()

		agg := aggregate.NewPopularAuthors(5)
		agg.Add(post(1, "t", "alice", "Go", day(1)))

		assert.Len(t, agg.Finish(), 1)
	})
}
