// Package grouping implements the group-and-rank pipelines over blog posts.
// It groups a post list by an arbitrary key and keeps only the top ranked
// entries per group, with two equivalent evaluation strategies that must
// produce identical results for identical inputs.
package grouping

import (
	"sort"

	"blogflow/internal/domain/entity"
)

// categoryFeedLimit is the fixed number of posts returned by the
// single-category feed view.
const categoryFeedLimit = 3

// Pair is one (key, ranked items) result emitted by a grouping pipeline.
type Pair[K comparable, T any] struct {
	Key   K
	Items []T
}

// Grouped is an insertion-ordered mapping from key to a ranked slice of items.
// Keys iterate in order of first occurrence in the source sequence, never
// sorted by key. The zero value is not usable; Grouped values are produced by
// the pipeline functions in this package.
type Grouped[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

func newGrouped[K comparable, T any]() *Grouped[K, T] {
	return &Grouped[K, T]{groups: make(map[K][]T)}
}

func (g *Grouped[K, T]) add(key K, v T) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], v)
}

func (g *Grouped[K, T]) put(key K, items []T) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = items
}

// Keys returns the group keys in first-occurrence order. The returned slice
// is a copy.
func (g *Grouped[K, T]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Get returns the ranked items for a key. The second result reports whether
// the key occurred in the source sequence.
func (g *Grouped[K, T]) Get(key K) ([]T, bool) {
	items, ok := g.groups[key]
	return items, ok
}

// Len returns the number of distinct keys.
func (g *Grouped[K, T]) Len() int {
	return len(g.keys)
}

// Pairs returns the grouped results as an ordered slice of (key, items)
// pairs, in first-occurrence key order.
func (g *Grouped[K, T]) Pairs() []Pair[K, T] {
	pairs := make([]Pair[K, T], 0, len(g.keys))
	for _, key := range g.keys {
		pairs = append(pairs, Pair[K, T]{Key: key, Items: g.groups[key]})
	}
	return pairs
}

// TopNByKey groups items by the extracted key and keeps, per group, the first
// limit items under the less ordering. This is the aggregate-then-transform
// strategy: one pass builds unbounded groups, a second pass sorts and
// truncates each group.
//
// A stable sort is used, so items comparing equal keep their source order and
// results are reproducible run to run. A limit <= 0 yields an empty list for
// every key; groups shorter than limit are returned whole.
func TopNByKey[K comparable, T any](items []T, key func(T) K, limit int, less func(a, b T) bool) *Grouped[K, T] {
	grouped := newGrouped[K, T]()
	for _, item := range items {
		grouped.add(key(item), item)
	}

	for _, k := range grouped.keys {
		grouped.groups[k] = rankAndTruncate(grouped.groups[k], limit, less)
	}
	return grouped
}

// TopNByKeyStreamed is the group-then-map strategy: it groups items by key,
// converts the grouping to a stream of (key, items) pairs, and maps each
// pair's value through sort-and-truncate independently. It must produce
// results identical to TopNByKey for identical inputs.
func TopNByKeyStreamed[K comparable, T any](items []T, key func(T) K, limit int, less func(a, b T) bool) *Grouped[K, T] {
	grouped := newGrouped[K, T]()
	for _, item := range items {
		grouped.add(key(item), item)
	}

	ranked := newGrouped[K, T]()
	for _, pair := range grouped.Pairs() {
		ranked.put(pair.Key, rankAndTruncate(pair.Items, limit, less))
	}
	return ranked
}

// rankAndTruncate returns a fresh slice holding the first limit items of the
// group under the less ordering. The input slice is never mutated.
func rankAndTruncate[T any](items []T, limit int, less func(a, b T) bool) []T {
	if limit <= 0 {
		return []T{}
	}

	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	if limit < len(ranked) {
		ranked = ranked[:limit:limit]
	}
	return ranked
}

// NewestFirst orders posts by descending publish timestamp. Combined with a
// stable sort, posts sharing a timestamp keep their source order.
func NewestFirst(a, b entity.Post) bool {
	return a.PublishedAt.After(b.PublishedAt)
}

// RecentByCategory groups posts by category and keeps the limit most recently
// published posts per category, newest first.
func RecentByCategory(posts []entity.Post, limit int) *Grouped[string, entity.Post] {
	return TopNByKey(posts, func(p entity.Post) string { return p.Category }, limit, NewestFirst)
}

// FilterByCategory returns the three most recently published posts whose
// category matches exactly (case-sensitive), newest first. A category that
// matches no post yields an empty list.
func FilterByCategory(posts []entity.Post, category string) []entity.Post {
	matched := make([]entity.Post, 0, categoryFeedLimit)
	for _, p := range posts {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return rankAndTruncate(matched, categoryFeedLimit, NewestFirst)
}
