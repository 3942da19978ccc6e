package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const defaultEmbeddingModel = "gemini-embedding-001"

// GeminiEmbedder scores similarity with Gemini text embeddings and cosine
// distance. The client is created lazily on first use so the process can
// start without network access.
type GeminiEmbedder struct {
	apiKey    string
	modelName string

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

// NewGeminiEmbedder configures an embedding backend. The API key must not
// be empty; model defaults to gemini-embedding-001.
func NewGeminiEmbedder(apiKey, model string) (*GeminiEmbedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbeddingModel
	}
	return &GeminiEmbedder{apiKey: apiKey, modelName: model}, nil
}

func (e *GeminiEmbedder) init(ctx context.Context) error {
	e.initOnce.Do(func() {
		cfg := &genai.ClientConfig{
			APIKey:  e.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		e.client, e.initErr = genai.NewClient(ctx, cfg)
		if e.initErr != nil {
			e.initErr = fmt.Errorf("create genai client: %w", e.initErr)
		}
	})
	return e.initErr
}

// Similarity embeds both texts in a single request and returns the cosine
// similarity remapped from [-1, 1] to [0, 1].
func (e *GeminiEmbedder) Similarity(ctx context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	if err := e.init(ctx); err != nil {
		return 0, err
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: a}}},
		{Parts: []*genai.Part{{Text: b}}},
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.modelName, contents, nil)
	if err != nil {
		return 0, fmt.Errorf("embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) < 2 {
		return 0, errors.New("gemini api returned incomplete embeddings")
	}

	sim := cosine(resp.Embeddings[0].Values, resp.Embeddings[1].Values)

	// Remap to [0, 1] and clamp against floating point drift.
	sim = (sim + 1) / 2
	return math.Max(0, math.Min(1, sim)), nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
