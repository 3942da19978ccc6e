package scoring

import (
	"fmt"
	"strings"
)

type structureAnalysis struct {
	Score             float64
	ComponentsFound   []string
	StarScore         float64
	OrganizationScore float64
	ConclusionScore   float64
	Feedback          []string
}

// scoreStructure detects STAR method usage (Situation, Task, Action,
// Result) plus sentence organization and a clear conclusion.
func scoreStructure(transcript string) structureAnalysis {
	var sa structureAnalysis
	if len(transcript) < 20 {
		sa.Feedback = []string{"Answer too short to analyze structure"}
		return sa
	}

	lower := strings.ToLower(transcript)

	components := []struct {
		name     string
		keywords []string
	}{
		{"situation", starSituationKeywords},
		{"task", starTaskKeywords},
		{"action", starActionKeywords},
		{"result", starResultKeywords},
	}

	var missing []string
	for _, c := range components {
		if containsAny(lower, c.keywords) {
			sa.ComponentsFound = append(sa.ComponentsFound, c.name)
		} else {
			missing = append(missing, c.name)
		}
	}

	switch len(sa.ComponentsFound) {
	case 4:
		sa.StarScore = 100.0
		sa.Feedback = append(sa.Feedback, "Excellent STAR method usage!")
	case 3:
		sa.StarScore = 80.0
		sa.Feedback = append(sa.Feedback, fmt.Sprintf("Good structure - consider adding: %s", missing[0]))
	case 2:
		sa.StarScore = 60.0
		sa.Feedback = append(sa.Feedback, fmt.Sprintf("Add more structure - missing: %s", strings.Join(missing, ", ")))
	case 1:
		sa.StarScore = 40.0
		sa.Feedback = append(sa.Feedback, "Try using the STAR method: Situation, Task, Action, Result")
	default:
		sa.StarScore = 25.0
		sa.Feedback = append(sa.Feedback, "Structure your answer using STAR: Situation, Task, Action, Result")
	}

	sentences := splitSentences(transcript)
	switch {
	case len(sentences) >= 3:
		sa.OrganizationScore = minFloat(100, 60+float64(len(sentences))*5)
	case len(sentences) >= 2:
		sa.OrganizationScore = 50.0
	default:
		sa.OrganizationScore = 30.0
		sa.Feedback = append(sa.Feedback, "Break your answer into multiple clear points")
	}

	hasConclusion := containsAny(lower, conclusionIndicators)
	if len(sentences) > 0 {
		hasConclusion = hasConclusion || containsAny(strings.ToLower(sentences[len(sentences)-1]), conclusionStems)
	}
	if hasConclusion {
		sa.ConclusionScore = 90.0
	} else {
		sa.ConclusionScore = 60.0
		sa.Feedback = append(sa.Feedback, "End with a clear conclusion or takeaway")
	}

	sa.Score = round1(structWeightStar*sa.StarScore +
		structWeightOrganization*sa.OrganizationScore +
		structWeightConclusion*sa.ConclusionScore)
	return sa
}

func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
