// Package aggregate implements the reusable two-phase aggregation primitive
// and the blog-specific aggregations built on it. An aggregator accumulates
// elements one at a time and emits its derived structure once, when finished.
// Aggregators are intended for sequential use; partial aggregations produced
// by concurrent partitions are combined through an explicit merge.
package aggregate

import "sort"

// Aggregator is the two-phase aggregation contract: feed every element
// through Add, then call Finish exactly once to obtain the result. Aggregator
// values are not safe for concurrent use.
type Aggregator[T, R any] interface {
	Add(T)
	Finish() R
}

// Entry is one (key, ranked items) result emitted by a GroupLimit aggregator.
type Entry[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupLimit accumulates elements into per-key lists and, on Finish, ranks
// each list with the configured ordering and truncates it to the configured
// limit. Keys are emitted in first-occurrence order during accumulation.
type GroupLimit[T any, K comparable] struct {
	key    func(T) K
	limit  int
	less   func(a, b T) bool
	order  []K
	groups map[K][]T
}

// NewGroupLimit returns a group-and-limit aggregator parameterized by key
// extraction, per-key limit, and the ordering applied within each group.
func NewGroupLimit[T any, K comparable](key func(T) K, limit int, less func(a, b T) bool) *GroupLimit[T, K] {
	return &GroupLimit[T, K]{
		key:    key,
		limit:  limit,
		less:   less,
		groups: make(map[K][]T),
	}
}

// Add accumulates a single element into its group.
func (g *GroupLimit[T, K]) Add(v T) {
	k := g.key(v)
	if _, ok := g.groups[k]; !ok {
		g.order = append(g.order, k)
	}
	g.groups[k] = append(g.groups[k], v)
}

// Merge folds a partial aggregation from another partition into this one as
// a key-wise union of lists. Keys new to this aggregator keep their relative
// order from the other partition, appended after this aggregator's keys.
func (g *GroupLimit[T, K]) Merge(other *GroupLimit[T, K]) {
	for _, k := range other.order {
		if _, ok := g.groups[k]; !ok {
			g.order = append(g.order, k)
		}
		g.groups[k] = append(g.groups[k], other.groups[k]...)
	}
}

// Finish ranks and truncates every group, emitting one entry per key in
// first-occurrence order. A limit <= 0 produces an empty list for every key.
func (g *GroupLimit[T, K]) Finish() []Entry[K, T] {
	entries := make([]Entry[K, T], 0, len(g.order))
	for _, k := range g.order {
		entries = append(entries, Entry[K, T]{Key: k, Items: rank(g.groups[k], g.limit, g.less)})
	}
	return entries
}

// rank returns a fresh slice with the first limit items under the less
// ordering. The stable sort keeps encounter order for equal items.
func rank[T any](items []T, limit int, less func(a, b T) bool) []T {
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
