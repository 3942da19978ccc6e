package similarity

import (
	"context"
	"strings"
)

// Jaccard scores similarity by word-set overlap. It needs no external
// service and never fails, which makes it the terminal fallback.
type Jaccard struct{}

func NewJaccard() Jaccard {
	return Jaccard{}
}

func (Jaccard) Similarity(_ context.Context, a, b string) (float64, error) {
	return WordOverlap(a, b), nil
}

// WordOverlap computes the Jaccard similarity of the lowercase word sets
// of two texts.
func WordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}
