// Package similarity provides text similarity backends for content scoring.
//
// The primary backend embeds both texts with Gemini and compares them by
// cosine similarity. A lexical Jaccard backend serves as the offline
// fallback, and Fallback chains the two.
package similarity

import "context"

// Backend computes a similarity score between two texts in [0, 1].
// Both implementations return 0 when either input is empty.
type Backend interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}
