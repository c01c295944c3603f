package aggregate

import (
	"sort"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"blogflow/internal/domain/entity"
)

// RelatedPosts finds the posts most similar to a target post. Candidates are
// restricted to the target's category, the target itself is excluded by ID,
// and candidates are ranked by descending title similarity with a stable
// tie-break on encounter order.
type RelatedPosts struct {
	target     entity.Post
	limit      int
	candidates []entity.Post
}

// NewRelatedPosts returns an aggregator that keeps the limit posts most
// related to target.
func NewRelatedPosts(target entity.Post, limit int) *RelatedPosts {
	return &RelatedPosts{target: target, limit: limit}
}

// Add considers a post as a related-post candidate.
func (r *RelatedPosts) Add(p entity.Post) {
	if p.ID == r.target.ID {
		return
	}
	if p.Category != r.target.Category {
		return
	}
	r.candidates = append(r.candidates, p)
}

// Finish ranks the accumulated candidates by similarity to the target.
func (r *RelatedPosts) Finish() []entity.Post {
	if r.limit <= 0 {
		return []entity.Post{}
	}

	targetTokens := titleTokens(r.target.Title)
	scores := make([]float64, len(r.candidates))
	for i, p := range r.candidates {
		scores[i] = jaccard(targetTokens, titleTokens(p.Title))
	}

	idx := make([]int, len(r.candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	ranked := make([]entity.Post, len(idx))
	for i, j := range idx {
		ranked[i] = r.candidates[j]
	}

	if r.limit < len(ranked) {
		ranked = ranked[:r.limit:r.limit]
	}
	return ranked
}

// TitleSimilarity scores how similar two titles are as the Jaccard index of
// their lowercased word-token sets: intersection size over union size. Two
// titles with no tokens at all score zero rather than dividing by zero.
func TitleSimilarity(a, b string) float64 {
	return jaccard(titleTokens(a), titleTokens(b))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// titleTokens segments a title into its set of lowercased word tokens.
// Tokens that carry no letter or digit (punctuation, whitespace runs) are
// discarded.
func titleTokens(title string) map[string]struct{} {
	set := make(map[string]struct{})
	tokens := words.FromString(strings.ToLower(title))
	for tokens.Next() {
		tok := tokens.Value()
		if !hasAlnum(tok) {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
