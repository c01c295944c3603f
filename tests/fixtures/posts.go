// Package fixtures provides the fixed in-memory sample data consumed by the
// pipeline demos and tests. The posts are deterministic: same IDs, content,
// and timestamps on every run, so pipeline output is reproducible.
package fixtures

import (
	"time"

	"blogflow/internal/domain/entity"
)

// SamplePosts returns the fixed list of blog posts that every pipeline
// consumes. The list spans several categories, authors, and months so each
// grouping, windowing, and aggregation demo has something to show.
func SamplePosts() []entity.Post {
	at := func(y int, m time.Month, d, h int) time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	}

	return []entity.Post{
		{
			ID:          1,
			Title:       "Java Streams Guide",
			Author:      "Maria Chen",
			Category:    "Java",
			Content:     "A walkthrough of the streams API. #java #streams Collectors, mapping, and grouping in practice.",
			PublishedAt: at(2025, time.January, 12, 9),
		},
		{
			ID:          2,
			Title:       "Go Concurrency Patterns",
			Author:      "Tom Akers",
			Category:    "Go",
			Content:     "Worker pools, pipelines, and cancellation with #go channels. Bounded parallelism done right.",
			PublishedAt: at(2025, time.January, 20, 14),
		},
		{
			ID:          3,
			Title:       "Java Streams Tutorial",
			Author:      "Maria Chen",
			Category:    "Java",
			Content:     "Hands-on #java #streams exercises, from filter and map to custom collectors. #java again for emphasis.",
			PublishedAt: at(2025, time.February, 3, 10),
		},
		{
			ID:          4,
			Title:       "Kubernetes Networking Explained",
			Author:      "Priya Nair",
			Category:    "Cloud",
			Content:     "Services, ingress, and the CNI. #kubernetes #networking A practical tour of cluster traffic.",
			PublishedAt: at(2025, time.February, 14, 8),
		},
		{
			ID:          5,
			Title:       "Java Virtual Threads in Production",
			Author:      "Diego Fuentes",
			Category:    "Java",
			Content:     "What changed when we moved to virtual threads. #java #concurrency Pinning, pools, and pitfalls.",
			PublishedAt: at(2025, time.February, 21, 16),
		},
		{
			ID:          6,
			Title:       "Go Generics in Anger",
			Author:      "Tom Akers",
			Category:    "Go",
			Content:     "Type parameters beyond the toy examples. #go #generics Constraints that pull their weight.",
			PublishedAt: at(2025, time.March, 2, 11),
		},
		{
			ID:          7,
			Title:       "Terraform State Deep Dive",
			Author:      "Priya Nair",
			Category:    "Cloud",
			Content:     "Remote state, locking, and drift. #terraform #cloud How state actually works under the hood.",
			PublishedAt: at(2025, time.March, 9, 9),
		},
		{
			ID:          8,
			Title:       "Java Records and Sealed Types",
			Author:      "Maria Chen",
			Category:    "Java",
			Content:     "Modeling data with records and sealed hierarchies. #java #design Exhaustive switches included.",
			PublishedAt: at(2025, time.March, 15, 13),
		},
		{
			ID:          9,
			Title:       "Profiling Go Services",
			Author:      "Sofia Lindqvist",
			Category:    "Go",
			Content:     "pprof, flame graphs, and allocation hunting. #go #performance Finding the slow path fast.",
			PublishedAt: at(2025, time.March, 22, 15),
		},
		{
			ID:          10,
			Title:       "Serverless Cost Modeling",
			Author:      "Priya Nair",
			Category:    "Cloud",
			Content:     "When functions beat containers on price, and when they do not. #serverless #cloud #cost",
			PublishedAt: at(2025, time.April, 5, 10),
		},
		{
			ID:          11,
			Title:       "Java Streams Guide Part Two",
			Author:      "Diego Fuentes",
			Category:    "Java",
			Content:     "Picking up where the first guide stopped: flatMap, teeing, and custom #java #streams collectors.",
			PublishedAt: at(2025, time.April, 11, 9),
		},
		{
			ID:          12,
			Title:       "Go Iterators and the iter Package",
			Author:      "Sofia Lindqvist",
			Category:    "Go",
			Content:     "Range-over-func in practice. #go #iterators Lazy sequences without channel ceremony.",
			PublishedAt: at(2025, time.April, 18, 14),
		},
	}
}
