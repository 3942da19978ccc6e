package grammar

import (
	"context"
	"regexp"
	"strings"
)

type heuristicRule struct {
	pattern     *regexp.Regexp
	description string
}

var heuristicRules = []heuristicRule{
	{regexp.MustCompile(`\bi\s+is\b`), "Subject-verb disagreement: 'I is'"},
	{regexp.MustCompile(`\bhe\s+have\b`), "Subject-verb disagreement: 'he have'"},
	{regexp.MustCompile(`\bshe\s+have\b`), "Subject-verb disagreement: 'she have'"},
	{regexp.MustCompile(`\bthey\s+was\b`), "Subject-verb disagreement: 'they was'"},
	{regexp.MustCompile(`\bwe\s+was\b`), "Subject-verb disagreement: 'we was'"},
	{regexp.MustCompile(`\bdon't\s+got\b`), `Non-standard: "don't got"`},
	{regexp.MustCompile(`\bcould\s+of\b`), "Common error: should be 'could have'"},
	{regexp.MustCompile(`\bwould\s+of\b`), "Common error: should be 'would have'"},
	{regexp.MustCompile(`\bshould\s+of\b`), "Common error: should be 'should have'"},
}

// Heuristic is a pattern-based grammar checker. It only catches a handful
// of common spoken-English mistakes but works without any external service
// and never returns an error.
type Heuristic struct{}

func NewHeuristic() Heuristic {
	return Heuristic{}
}

func (Heuristic) Check(_ context.Context, text string) ([]Issue, error) {
	lower := strings.ToLower(text)

	var issues []Issue
	for _, rule := range heuristicRules {
		if rule.pattern.MatchString(lower) {
			issues = append(issues, Issue{Message: rule.description, Rule: "heuristic"})
		}
	}
	return issues, nil
}
