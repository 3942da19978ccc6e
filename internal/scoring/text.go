package scoring

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenizeWords extracts lowercase alphabetic words of 3+ characters.
func tokenizeWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// splitSentences splits text on sentence terminators and drops empties.
func splitSentences(text string) []string {
	parts := sentencePattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// countWords counts whitespace-separated tokens.
func countWords(text string) int {
	return len(strings.Fields(text))
}

var fillerPatterns = buildBoundaryPatterns(fillerWords)

func buildBoundaryPatterns(terms []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(terms))
	for _, t := range terms {
		patterns[t] = regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
	}
	return patterns
}

// countFillers counts filler word occurrences in the transcript.
// Returns the total count and a per-filler breakdown like "um (2)".
func countFillers(transcript string) (int, []string) {
	if transcript == "" {
		return 0, nil
	}

	lower := strings.ToLower(transcript)
	var details []string
	total := 0

	for _, filler := range fillerWords {
		n := len(fillerPatterns[filler].FindAllString(lower, -1))
		if n > 0 {
			details = append(details, fmt.Sprintf("%s (%d)", filler, n))
			total += n
		}
	}
	return total, details
}

// computeWPM calculates the speaking rate in words per minute,
// rounded to one decimal.
func computeWPM(transcript string, durationSeconds float64) float64 {
	if transcript == "" || durationSeconds <= 0 {
		return 0
	}
	minutes := durationSeconds / 60.0
	return round1(float64(countWords(transcript)) / minutes)
}

// wpmAssessment maps a speaking rate to a feedback message and a
// delivery penalty in the range 0-30.
func wpmAssessment(wpm float64) (string, float64) {
	switch {
	case wpm < wpmTooSlow:
		penalty := math.Min(30, math.Trunc((wpmTooSlow-wpm)*0.5))
		return "Speaking too slowly - try to maintain better flow", penalty
	case wpm > wpmTooFast:
		penalty := math.Min(30, math.Trunc((wpm-wpmTooFast)*0.3))
		return "Speaking too fast - slow down for clarity", penalty
	case wpm >= optimalWPMMin && wpm <= optimalWPMMax:
		return "Good speaking pace", 0
	case wpm < optimalWPMMin:
		return "Slightly slow - could pick up the pace a bit", 5
	default:
		return "Slightly fast - could slow down a bit", 5
	}
}

// extractKeywords returns up to topN keywords from text ordered by
// frequency. Ties break on first occurrence so the output is deterministic.
func extractKeywords(text string, topN int) []string {
	words := tokenizeWords(text)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range words {
		if keywordStopWords[w] {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	keywords := make([]string, 0, len(counts))
	for w := range counts {
		keywords = append(keywords, w)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// matchKeywords checks which keywords appear in the transcript, either as
// an exact token or via a shared 4-character stem. Returns found and
// missing keywords in input order.
func matchKeywords(transcript string, keywords []string) (found, missing []string) {
	if transcript == "" || len(keywords) == 0 {
		return nil, keywords
	}

	tokens := tokenizeWords(transcript)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		if tokenSet[lower] {
			found = append(found, keyword)
			continue
		}

		matched := false
		for token := range tokenSet {
			if len(lower) >= 4 && strings.Contains(token, lower[:4]) {
				matched = true
				break
			}
			if len(token) >= 4 && strings.Contains(lower, token[:4]) {
				matched = true
				break
			}
		}
		if matched {
			found = append(found, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return found, missing
}

// meanStd returns the mean and population standard deviation.
func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
