package scoring

import (
	"fmt"
	"strings"
)

// Score caps applied to low quality answers.
const (
	capVeryShort   = 40
	capShort       = 60
	capNoStructure = 55
	capOffTopic    = 35
	capNonsense    = 15
)

const minCoherenceScore = 30.0

type qualityReport struct {
	Issues       []string
	TotalPenalty float64
	// ScoreCap bounds the final score when set. The strictest cap wins.
	ScoreCap *int
}

func (q *qualityReport) applyCap(limit int) {
	if q.ScoreCap == nil || *q.ScoreCap > limit {
		q.ScoreCap = &limit
	}
}

type qualityInputs struct {
	FillerCount    int
	Relevance      float64
	StructureScore float64
	HasIdealAnswer bool
}

// applyQualityGates enforces minimum quality standards so weak answers
// cannot coast on generous category scores. Each failed gate adds a
// penalty; the worst failures also cap the final score.
func applyQualityGates(transcript string, in qualityInputs) qualityReport {
	var report qualityReport

	if transcript == "" {
		report.Issues = append(report.Issues, "No answer provided")
		report.applyCap(0)
		return report
	}

	words := strings.Fields(transcript)
	wordCount := len(words)

	unique := make(map[string]bool)
	for _, w := range words {
		if len(w) > 2 {
			unique[strings.ToLower(w)] = true
		}
	}

	// Gate 1: minimum word count.
	if wordCount < 15 {
		report.Issues = append(report.Issues, "Answer too short - provide more detail")
		report.TotalPenalty += 50
		if wordCount < 10 {
			report.applyCap(capVeryShort)
		} else {
			report.applyCap(capShort)
		}
	}

	// Gate 2: minimum unique words.
	if len(unique) < 10 {
		report.Issues = append(report.Issues, "Limited vocabulary - use more varied words")
		report.TotalPenalty += 30
	}

	// Gate 3: filler ratio.
	if wordCount > 0 && float64(in.FillerCount)/float64(wordCount) > 0.15 {
		report.Issues = append(report.Issues, "Too many filler words - practice speaking clearly")
		report.TotalPenalty += 25
	}

	// Gate 4: relevance to the question.
	if in.HasIdealAnswer && in.Relevance < 0.25 {
		report.Issues = append(report.Issues, "Answer does not address the question")
		report.TotalPenalty += 40
		report.applyCap(capOffTopic)
	}

	// Gate 5: word repetition.
	if wordCount > 10 {
		counts := make(map[string]int)
		for _, w := range words {
			if len(w) > 3 {
				counts[strings.ToLower(w)]++
			}
		}
		if len(counts) > 0 {
			maxCount := 0
			for _, c := range counts {
				if c > maxCount {
					maxCount = c
				}
			}
			if float64(maxCount)/float64(len(counts)) > 0.3 {
				report.Issues = append(report.Issues, "Avoid repeating the same phrases")
				report.TotalPenalty += 20
			}
		}
	}

	// Gate 6: nonsense detection.
	if nonsense := detectNonsense(transcript); nonsense.IsNonsense {
		report.Issues = append(report.Issues, fmt.Sprintf("Answer appears to be nonsense: %s", nonsense.Reason))
		report.TotalPenalty += 50
		report.applyCap(capNonsense)
	}

	// Gate 7: coherence.
	if answerCoherence(transcript) < minCoherenceScore {
		report.Issues = append(report.Issues, "Answer lacks coherent structure")
		report.TotalPenalty += 30
	}

	// Gate 8: structure floor.
	if in.StructureScore < 30 {
		report.applyCap(capNoStructure)
	}

	return report
}

type nonsenseResult struct {
	IsNonsense bool
	Confidence float64
	Patterns   []string
	Reason     string
}

// detectNonsense flags keyboard mashing, test input and gibberish. Each
// suspicious pattern adds 0.3 confidence; 0.5 or more marks the transcript
// as nonsense.
func detectNonsense(transcript string) nonsenseResult {
	var res nonsenseResult

	if len(strings.TrimSpace(transcript)) < 5 {
		res.IsNonsense = true
		res.Confidence = 1.0
		res.Reason = "Input too short"
		return res
	}

	lower := strings.ToLower(transcript)

	for _, m := range head(nonsenseWordPattern.FindAllString(lower, -1), 3) {
		res.Patterns = append(res.Patterns, m)
	}
	for _, m := range head(shortWordRunPattern.FindAllString(lower, -1), 3) {
		res.Patterns = append(res.Patterns, strings.TrimSpace(m))
	}
	if run := longestCharRun(lower); run >= repeatedCharMinRun {
		res.Patterns = append(res.Patterns, fmt.Sprintf("character repeated %d times", run))
	}

	words := strings.Fields(lower)
	if len(words) > 5 {
		counts := make(map[string]int)
		for _, w := range words {
			counts[w]++
		}
		maxCount := 0
		for _, c := range counts {
			if c > maxCount {
				maxCount = c
			}
		}
		if float64(maxCount)/float64(len(words)) > 0.3 {
			res.Patterns = append(res.Patterns, fmt.Sprintf("word repeated %d times", maxCount))
		}
	}

	if len(words) > 10 {
		recognized := 0
		for _, w := range words {
			if commonEnglishWords[w] || len(w) > 3 {
				recognized++
			}
		}
		if float64(recognized)/float64(len(words)) < 0.3 {
			res.Patterns = append(res.Patterns, "low word recognition ratio")
		}
	}

	if len(res.Patterns) > 0 {
		res.Confidence = minFloat(1.0, float64(len(res.Patterns))*0.3)
		res.IsNonsense = res.Confidence >= 0.5
		res.Reason = fmt.Sprintf("Detected patterns: %s", strings.Join(head(res.Patterns, 3), ", "))
	}
	return res
}

// longestCharRun returns the length of the longest run of a single
// repeated non-space character.
func longestCharRun(text string) int {
	longest, current := 0, 0
	var prev rune
	for _, r := range text {
		if r == prev && r != ' ' {
			current++
		} else {
			current = 1
			prev = r
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// answerCoherence is a cheap 0-100 estimate of whether the answer reads
// like organized thought. It starts neutral at 50 and adjusts on sentence
// structure, word diversity, logical connectors and length.
func answerCoherence(transcript string) float64 {
	if len(strings.TrimSpace(transcript)) < 10 {
		return 0
	}

	score := 50.0
	words := strings.Fields(transcript)
	wordCount := len(words)

	sentences := splitSentences(transcript)
	switch {
	case len(sentences) >= 2:
		score += 15
	case len(sentences) == 1 && wordCount >= 15:
		score += 5
	default:
		score -= 10
	}

	unique := make(map[string]bool)
	for _, w := range words {
		if len(w) > 2 {
			unique[strings.ToLower(w)] = true
		}
	}
	diversity := 0.0
	if wordCount > 0 {
		diversity = float64(len(unique)) / float64(wordCount)
	}
	switch {
	case diversity >= 0.6:
		score += 15
	case diversity >= 0.4:
		score += 5
	case diversity < 0.25:
		score -= 15
	}

	lower := strings.ToLower(transcript)
	connectorCount := 0
	for _, c := range coherenceConnectors {
		if strings.Contains(lower, c) {
			connectorCount++
		}
	}
	if connectorCount >= 3 {
		score += 10
	} else if connectorCount >= 1 {
		score += 5
	}

	switch {
	case wordCount >= 30 && wordCount <= 200:
		score += 10
	case wordCount < 15:
		score -= 15
	case wordCount > 300:
		score -= 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
