// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Post, along with their
// validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"time"
)

// Post represents a single blog post in the system.
// It is an immutable value: once constructed, no field is ever mutated, and
// every pipeline derives new structures from it instead of views.
type Post struct {
	ID          int64
	Title       string
	Author      string
	Category    string
	Content     string
	PublishedAt time.Time
}

// Validate checks that the post satisfies the caller contract for pipeline input.
// Malformed records are rejected up front so that a corrupted post never
// propagates into derived structures.
// Returns a *ValidationError describing the first offending field.
func (p Post) Validate() error {
	if p.ID <= 0 {
		return &ValidationError{Field: "id", Message: "id must be a positive integer"}
	}
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if p.Author == "" {
		return &ValidationError{Field: "author", Message: "author is required"}
	}
	if p.Category == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if p.PublishedAt.IsZero() {
		return &ValidationError{Field: "published_at", Message: "published timestamp is required"}
	}
	return nil
}

// ValidateAll validates every post in the list and reports the first violation,
// wrapped with the offending position.
func ValidateAll(posts []Post) error {
	for i, p := range posts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("post at index %d: %w", i, err)
		}
	}
	return nil
}
