// Package feedback generates coaching feedback for scored answers using
// Gemini, with API key rotation and a static fallback when the LLM is
// unavailable.
package feedback

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/keypool"
)

const answerFeedbackPrompt = `You are an expert interview coach providing specific feedback on a candidate's interview answer. Quote exact words from the answer; generic feedback is not acceptable.

## Interview Question
%s

## Candidate's Answer (Transcribed)
"%s"

## Ideal Answer Reference
%s

## Calculated Scores
- Content Relevance: %.1f/100
- Delivery: %.1f/100 (Speaking pace: %.0f WPM, Filler words: %d)
- Communication: %.1f/100 (Grammar issues: %d)
- Voice Quality: %.1f/100
- Confidence: %.1f/100
- Structure: %.1f/100
- Overall Score: %.1f/100

Respond in JSON format ONLY:
{
    "summary": "3-4 sentence assessment quoting specific phrases",
    "strengths": ["strength with exact quote", "..."],
    "weaknesses": ["weakness with exact quote", "..."],
    "improvements": ["specific actionable improvement", "..."],
    "star_analysis": {
        "situation": "Yes/No/Partial with quoted evidence",
        "task": "Yes/No/Partial with quoted evidence",
        "action": "Yes/No/Partial with quoted evidence",
        "result": "Yes/No/Partial with quoted evidence"
    },
    "tips": ["specific tip referencing their phrasing", "..."],
    "example_answer": "A complete 6-8 sentence STAR-format answer to this exact question"
}`

// StarAnalysis describes how much of the STAR structure the answer covered.
type StarAnalysis struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// Feedback is the structured coaching output for one attempt.
type Feedback struct {
	Summary       string        `json:"summary"`
	Strengths     []string      `json:"strengths"`
	Weaknesses    []string      `json:"weaknesses"`
	Improvements  []string      `json:"improvements"`
	StarAnalysis  *StarAnalysis `json:"star_analysis,omitempty"`
	Tips          []string      `json:"tips"`
	ExampleAnswer string        `json:"example_answer,omitempty"`
	Generated     bool          `json:"generated"`
}

// Service generates feedback via Gemini with key rotation.
type Service struct {
	pool   *keypool.Pool
	model  string
	logger *zap.Logger

	mu      sync.Mutex
	clients map[int]*genai.Client
}

// NewService creates a feedback service. A nil pool disables LLM calls and
// every request gets static fallback feedback.
func NewService(pool *keypool.Pool, model string, logger *zap.Logger) *Service {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Service{
		pool:    pool,
		model:   model,
		logger:  logger,
		clients: make(map[int]*genai.Client),
	}
}

// GenerateAnswerFeedback produces coaching feedback for a scored attempt.
// LLM failures degrade to static feedback derived from the score breakdown;
// the error return covers only invalid input.
func (s *Service) GenerateAnswerFeedback(ctx context.Context, question *entities.Question, transcript string, result *entities.ScoreResult) (*Feedback, error) {
	if question == nil || result == nil {
		return nil, fmt.Errorf("question and score result are required")
	}

	if s.pool == nil {
		return s.staticFeedback(result), nil
	}

	prompt := fmt.Sprintf(answerFeedbackPrompt,
		question.Text,
		transcript,
		question.IdealAnswer,
		result.Content,
		result.Delivery, result.WPM, result.FillerCount,
		result.Communication, result.GrammarErrorCount,
		result.Voice,
		result.Confidence,
		result.Structure,
		result.Final,
	)

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("LLM feedback failed, using static fallback", zap.Error(err))
		return s.staticFeedback(result), nil
	}

	feedback, err := parseFeedback(raw)
	if err != nil {
		s.logger.Warn("failed to parse LLM feedback, using static fallback", zap.Error(err))
		return s.staticFeedback(result), nil
	}
	feedback.Generated = true
	return feedback, nil
}

// generate rotates over pool keys with exponential backoff until one call
// succeeds or the retries are exhausted.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	var output string

	callFn := func() error {
		key, keyID, err := s.pool.Next()
		if err != nil {
			return backoff.Permanent(err)
		}

		client, err := s.clientFor(ctx, keyID, key)
		if err != nil {
			s.pool.ReportFailure(keyID, err)
			return err
		}

		resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			s.pool.ReportFailure(keyID, err)
			return err
		}

		text := collectText(resp)
		if text == "" {
			s.pool.ReportFailure(keyID, fmt.Errorf("empty response"))
			return fmt.Errorf("gemini returned empty response")
		}

		s.pool.ReportSuccess(keyID)
		output = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 45 * time.Second

	if err := backoff.Retry(callFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return output, nil
}

func (s *Service) clientFor(ctx context.Context, keyID int, key string) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[keyID]; ok {
		return client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	s.clients[keyID] = client
	return client, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// staticFeedback builds rule-based feedback from the score breakdown.
func (s *Service) staticFeedback(result *entities.ScoreResult) *Feedback {
	tips := scoring.ImprovementTips(result)

	summary := fmt.Sprintf(
		"Your answer scored %.1f/100 overall. Content relevance was %.1f, delivery %.1f, and structure %.1f.",
		result.Final, result.Content, result.Delivery, result.Structure)

	var strengths []string
	if result.Content >= 70 {
		strengths = append(strengths, "Your answer stayed on topic and covered the expected material.")
	}
	if result.Delivery >= 70 {
		strengths = append(strengths, "Your speaking pace and fluency were solid.")
	}
	if result.Structure >= 70 {
		strengths = append(strengths, "Your answer followed a clear structure.")
	}

	return &Feedback{
		Summary:   summary,
		Strengths: strengths,
		Tips:      tips,
		Generated: false,
	}
}
