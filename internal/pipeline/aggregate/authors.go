package aggregate

import (
	"sort"

	"blogflow/internal/domain/entity"
)

// AuthorCount is one author and the number of posts they published.
type AuthorCount struct {
	Author string
	Posts  int
}

// PopularAuthors ranks authors by how many posts they published. Ties keep
// first-encounter order.
type PopularAuthors struct {
	limit  int
	order  []string
	counts map[string]int
}

// NewPopularAuthors returns an aggregator that keeps the limit most prolific
// authors.
func NewPopularAuthors(limit int) *PopularAuthors {
	return &PopularAuthors{limit: limit, counts: make(map[string]int)}
}

// Add counts a post toward its author.
func (a *PopularAuthors) Add(p entity.Post) {
	if _, ok := a.counts[p.Author]; !ok {
		a.order = append(a.order, p.Author)
	}
	a.counts[p.Author]++
}

// Finish returns the top authors by descending post count.
func (a *PopularAuthors) Finish() []AuthorCount {
	if a.limit <= 0 {
		return []AuthorCount{}
	}

	ranked := make([]AuthorCount, 0, len(a.order))
	for _, author := range a.order {
		ranked = append(ranked, AuthorCount{Author: author, Posts: a.counts[author]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Posts > ranked[j].Posts
	})

	if a.limit < len(ranked) {
		ranked = ranked[:a.limit:a.limit]
	}
	return ranked
}
