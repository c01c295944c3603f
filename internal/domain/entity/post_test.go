package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogflow/internal/domain/entity"
)

func validPost() entity.Post {
	return entity.Post{
		ID:          1,
		Title:       "Go Concurrency Patterns",
		Author:      "Alice",
		Category:    "Go",
		Content:     "Channels and goroutines.",
		PublishedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*entity.Post)
		wantField string
	}{
		{
			name:   "valid post",
			mutate: func(p *entity.Post) {},
		},
		{
			name:      "zero id",
			mutate:    func(p *entity.Post) { p.ID = 0 },
			wantField: "id",
		},
		{
			name:      "negative id",
			mutate:    func(p *entity.Post) { p.ID = -5 },
			wantField: "id",
		},
		{
			name:      "empty title",
			mutate:    func(p *entity.Post) { p.Title = "" },
			wantField: "title",
		},
		{
			name:      "empty author",
			mutate:    func(p *entity.Post) { p.Author = "" },
			wantField: "author",
		},
		{
			name:      "empty category",
			mutate:    func(p *entity.Post) { p.Category = "" },
			wantField: "category",
		},
		{
			name:      "zero published timestamp",
			mutate:    func(p *entity.Post) { p.PublishedAt = time.Time{} },
			wantField: "published_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			post := validPost()
			tt.mutate(&post)

			err := post.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)

			var vErr *entity.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.True(t, errors.Is(err, entity.ErrValidationFailed))
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()

		posts := []entity.Post{validPost(), validPost()}
		require.NoError(t, entity.ValidateAll(posts))
	})

	t.Run("reports offending index", func(t *testing.T) {
		t.Parallel()

		bad := validPost()
		bad.Title = ""
		posts := []entity.Post{validPost(), bad}

		err := entity.ValidateAll(posts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 1")
		assert.True(t, errors.Is(err, entity.ErrValidationFailed))
	})

	t.Run("empty list is valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, entity.ValidateAll(nil))
	})
}

func TestMonthOf(t *testing.T) {
	t.Parallel()

	m := entity.MonthOf(time.Date(2025, 11, 30, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, entity.Month{Year: 2025, Month: time.November}, m)
	assert.Equal(t, "2025-11", m.String())
}

func TestMonthBefore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b entity.Month
		want bool
	}{
		{
			name: "earlier year",
			a:    entity.Month{Year: 2024, Month: time.December},
			b:    entity.Month{Year: 2025, Month: time.January},
			want: true,
		},
		{
			name: "same year earlier month",
			a:    entity.Month{Year: 2025, Month: time.March},
			b:    entity.Month{Year: 2025, Month: time.April},
			want: true,
		},
		{
			name: "equal months",
			a:    entity.Month{Year: 2025, Month: time.March},
			b:    entity.Month{Year: 2025, Month: time.March},
			want: false,
		},
		{
			name: "later month",
			a:    entity.Month{Year: 2025, Month: time.May},
			b:    entity.Month{Year: 2025, Month: time.March},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}
