package aggregate

import (
	"sort"

	"blogflow/internal/domain/entity"
)

// MonthGroup is one calendar month of the archive with its posts, newest
// first.
type MonthGroup struct {
	Month entity.Month
	Posts []entity.Post
}

// MonthlyArchive groups posts by the calendar month they were published in.
// Finish emits months in descending chronological order with each month's
// posts ordered by descending publish time.
type MonthlyArchive struct {
	groups map[entity.Month][]entity.Post
}

// NewMonthlyArchive returns an empty archive aggregator.
func NewMonthlyArchive() *MonthlyArchive {
	return &MonthlyArchive{groups: make(map[entity.Month][]entity.Post)}
}

// Add files a post under its publication month.
func (m *MonthlyArchive) Add(p entity.Post) {
	month := entity.MonthOf(p.PublishedAt)
	m.groups[month] = append(m.groups[month], p)
}

// Finish returns the archive, most recent month first.
func (m *MonthlyArchive) Finish() []MonthGroup {
	months := make([]entity.Month, 0, len(m.groups))
	for month := range m.groups {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[j].Before(months[i])
	})

	archive := make([]MonthGroup, 0, len(months))
	for _, month := range months {
		posts := make([]entity.Post, len(m.groups[month]))
		copy(posts, m.groups[month])
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].PublishedAt.After(posts[j].PublishedAt)
		})
		archive = append(archive, MonthGroup{Month: month, Posts: posts})
	}
	return archive
}
