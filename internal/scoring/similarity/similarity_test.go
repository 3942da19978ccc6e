package similarity

import (
	"context"
	"errors"
	"testing"
)

func TestJaccardIdenticalText(t *testing.T) {
	sim, err := NewJaccard().Similarity(context.Background(), "the quick brown fox", "the quick brown fox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim != 1.0 {
		t.Fatalf("expected 1.0 for identical text, got %v", sim)
	}
}

func TestJaccardDisjointText(t *testing.T) {
	sim, _ := NewJaccard().Similarity(context.Background(), "alpha beta gamma", "delta epsilon zeta")
	if sim != 0.0 {
		t.Fatalf("expected 0.0 for disjoint text, got %v", sim)
	}
}

func TestJaccardEmptyInput(t *testing.T) {
	sim, _ := NewJaccard().Similarity(context.Background(), "", "something")
	if sim != 0.0 {
		t.Fatalf("expected 0.0 for empty input, got %v", sim)
	}
}

func TestWordOverlapPartial(t *testing.T) {
	// Shared: {the, fox}. Union: {the, quick, fox, lazy, dog, a}.
	sim := WordOverlap("the quick fox", "the lazy fox dog a")
	if sim <= 0 || sim >= 1 {
		t.Fatalf("expected partial overlap in (0, 1), got %v", sim)
	}
}

type failingBackend struct{}

func (failingBackend) Similarity(context.Context, string, string) (float64, error) {
	return 0, errors.New("backend unavailable")
}

func TestFallbackUsesSecondaryOnError(t *testing.T) {
	fb := NewFallback(failingBackend{}, NewJaccard())
	sim, err := fb.Similarity(context.Background(), "same words", "same words")
	if err != nil {
		t.Fatalf("fallback should absorb primary failure: %v", err)
	}
	if sim != 1.0 {
		t.Fatalf("expected secondary result 1.0, got %v", sim)
	}
}

func TestNewGeminiEmbedderRequiresKey(t *testing.T) {
	if _, err := NewGeminiEmbedder("", "model"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestCosine(t *testing.T) {
	if c := cosine([]float32{1, 0}, []float32{1, 0}); c != 1.0 {
		t.Fatalf("expected 1.0 for identical vectors, got %v", c)
	}
	if c := cosine([]float32{1, 0}, []float32{0, 1}); c != 0.0 {
		t.Fatalf("expected 0.0 for orthogonal vectors, got %v", c)
	}
	if c := cosine(nil, nil); c != 0.0 {
		t.Fatalf("expected 0.0 for empty vectors, got %v", c)
	}
}
