package scoring

import (
	"fmt"
	"strings"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
)

// ImprovementTips derives actionable feedback from a score result. Used as
// the static fallback when LLM feedback generation is unavailable.
func ImprovementTips(result *entities.ScoreResult) []string {
	if result == nil {
		return nil
	}

	var tips []string

	if result.KeywordMatchPct > 0 && result.KeywordMatchPct < 50 {
		if len(result.KeywordsMissing) > 0 {
			tips = append(tips, fmt.Sprintf("Try to include key concepts: %s",
				strings.Join(head(result.KeywordsMissing, 5), ", ")))
		}
		tips = append(tips, "Your answer is missing several important keywords from the ideal response")
	} else if result.KeywordMatchPct >= 50 && result.KeywordMatchPct < 75 {
		tips = append(tips, "Good coverage of key points, but consider adding more specific details")
	}

	if result.FillerCount > 3 {
		tips = append(tips, fmt.Sprintf("Reduce filler words (%d detected) - try pausing instead", result.FillerCount))
	}

	if result.WPM > 0 && result.WPM < 100 {
		tips = append(tips, "Speak a bit faster to maintain engagement (aim for 130-160 WPM)")
	} else if result.WPM > 180 {
		tips = append(tips, "Slow down slightly for better clarity (aim for 130-160 WPM)")
	}

	if result.GrammarErrorCount > 2 {
		tips = append(tips, "Focus on sentence structure and grammar for clearer communication")
	}

	if result.Structure > 0 && result.Structure < 50 {
		tips = append(tips, "Structure your answer using STAR: Situation, Task, Action, Result")
	}

	tips = append(tips, result.ContentFeedback...)
	tips = append(tips, result.VoiceFeedback...)
	tips = append(tips, result.ConfidenceFeedback...)

	return dedupe(tips)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
