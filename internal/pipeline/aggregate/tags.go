package aggregate

import (
	"regexp"
	"strings"

	"blogflow/internal/domain/entity"
)

// hashtagPattern matches a '#' followed by one or more word characters; the
// captured group is the tag text without the '#'.
var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// HashtagCounts accumulates a frequency mapping of hashtags found in post
// content. Matching is done against lowercased content, so "#Java" and
// "#java" count as the same tag.
type HashtagCounts struct {
	order  []string
	counts map[string]int
}

// NewHashtagCounts returns an empty hashtag frequency aggregator.
func NewHashtagCounts() *HashtagCounts {
	return &HashtagCounts{counts: make(map[string]int)}
}

// Add scans a post's content for hashtags and bumps their counts.
func (h *HashtagCounts) Add(p entity.Post) {
	content := strings.ToLower(p.Content)
	for _, match := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		tag := match[1]
		if _, ok := h.counts[tag]; !ok {
			h.order = append(h.order, tag)
		}
		h.counts[tag]++
	}
}

// Finish returns the tag frequency mapping accumulated so far.
func (h *HashtagCounts) Finish() map[string]int {
	counts := make(map[string]int, len(h.counts))
	for tag, n := range h.counts {
		counts[tag] = n
	}
	return counts
}

// Tags returns the distinct tags in first-occurrence order, for
// deterministic rendering.
func (h *HashtagCounts) Tags() []string {
	tags := make([]string, len(h.order))
	copy(tags, h.order)
	return tags
}
