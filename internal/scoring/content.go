package scoring

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/similarity"
)

type keywordAnalysis struct {
	Extracted []string
	Found     []string
	Missing   []string
	Coverage  float64
	Score     float64
}

type contentAnalysis struct {
	Score          float64
	Relevance      float64
	KeywordWeight  float64
	SemanticWeight float64
	Keywords       keywordAnalysis
	Feedback       []string
}

// analyzeContentKeywords extracts the key topics of the ideal answer and
// measures how many the transcript covers.
func analyzeContentKeywords(transcript, idealAnswer string) keywordAnalysis {
	var ka keywordAnalysis
	if transcript == "" || idealAnswer == "" {
		return ka
	}

	ka.Extracted = extractKeywords(idealAnswer, maxExtractedKeywords)
	if len(ka.Extracted) == 0 {
		return ka
	}

	ka.Found, ka.Missing = matchKeywords(transcript, ka.Extracted)
	ka.Coverage = round3(float64(len(ka.Found)) / float64(len(ka.Extracted)))
	ka.Score = coverageScore(ka.Coverage)
	return ka
}

// coverageScore maps keyword coverage onto a 0-100 band.
func coverageScore(coverage float64) float64 {
	var score float64
	switch {
	case coverage >= 0.8:
		score = 85 + (coverage-0.8)*75
	case coverage >= 0.6:
		score = 70 + (coverage-0.6)*75
	case coverage >= 0.4:
		score = 50 + (coverage-0.4)*100
	case coverage >= 0.2:
		score = 30 + (coverage-0.2)*100
	default:
		score = coverage * 150
	}
	return clampScore(score)
}

// scoreContent blends keyword coverage with semantic similarity. Short
// answers weight keywords more heavily since they must hit the key points;
// long answers weight overall meaning more.
func (e *Engine) scoreContent(ctx context.Context, transcript, idealAnswer string, providedKeywords []string) contentAnalysis {
	ca := contentAnalysis{KeywordWeight: 0.5, SemanticWeight: 0.5}

	if len(strings.TrimSpace(transcript)) < 10 {
		ca.Feedback = []string{"Provide a more detailed answer"}
		return ca
	}

	if idealAnswer == "" {
		// No reference answer: score on provided keywords alone, or stay
		// neutral when there is nothing to compare against.
		if len(providedKeywords) > 0 {
			found, missing := matchKeywords(transcript, providedKeywords)
			ca.Keywords = keywordAnalysis{
				Extracted: providedKeywords,
				Found:     found,
				Missing:   missing,
				Coverage:  round3(float64(len(found)) / float64(len(providedKeywords))),
			}
			ca.Keywords.Score = coverageScore(ca.Keywords.Coverage)
			ca.Score = ca.Keywords.Score
			return ca
		}
		ca.Score = 50.0
		return ca
	}

	ca.Keywords = analyzeContentKeywords(transcript, idealAnswer)

	sim := e.similarityScore(ctx, transcript, idealAnswer)
	ca.Relevance = round3(sim)
	semanticScore := clampScore(sim * 110)

	wordCount := countWords(transcript)
	if wordCount < 30 {
		ca.KeywordWeight, ca.SemanticWeight = 0.6, 0.4
	} else if wordCount > 100 {
		ca.KeywordWeight, ca.SemanticWeight = 0.4, 0.6
	}

	ca.Score = clampScore(ca.Keywords.Score*ca.KeywordWeight + semanticScore*ca.SemanticWeight)

	if ca.Keywords.Coverage < 0.5 && len(ca.Keywords.Missing) > 0 {
		ca.Feedback = append(ca.Feedback,
			fmt.Sprintf("Try to mention these key topics: %s", strings.Join(head(ca.Keywords.Missing, 3), ", ")))
	}
	if sim < 0.5 {
		ca.Feedback = append(ca.Feedback, "Your answer's overall meaning diverges from the expected response")
	}
	if ca.Score >= 75 {
		ca.Feedback = append(ca.Feedback, "Good job covering the topic!")
	}
	return ca
}

// similarityScore queries the configured backend and degrades to lexical
// overlap when it fails. Content scoring must never error out.
func (e *Engine) similarityScore(ctx context.Context, a, b string) float64 {
	sim, err := e.similarity.Similarity(ctx, a, b)
	if err != nil {
		e.logger.Warn("similarity backend failed, using lexical overlap", zap.Error(err))
		return similarity.WordOverlap(a, b)
	}
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
