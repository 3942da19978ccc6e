package scoring

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/grammar"
)

type commFactor struct {
	Name       string
	Score      float64
	Weight     float64
	Assessment string
}

type communicationAnalysis struct {
	Score          float64
	GrammarErrors  int
	GrammarDetails []string
	Factors        []commFactor
	Feedback       []string
	Strengths      []string
}

// scoreCommunication combines grammar quality, vocabulary diversity,
// sentence structure, coherence and professional vocabulary into a single
// communication score.
func (e *Engine) scoreCommunication(ctx context.Context, transcript string) communicationAnalysis {
	var ca communicationAnalysis
	if len(strings.TrimSpace(transcript)) < 10 {
		ca.Feedback = []string{"Provide more text for accurate communication analysis"}
		return ca
	}

	// Grammar
	issues := e.grammarIssues(ctx, transcript)
	errorCount := len(issues)
	penalty := float64(errorCount) * grammarPenaltyPerError
	if penalty > maxGrammarPenalty {
		penalty = maxGrammarPenalty
	}
	grammarScore := clampScore(100 - penalty)

	ca.GrammarErrors = errorCount
	for _, issue := range head(issueMessages(issues), 5) {
		ca.GrammarDetails = append(ca.GrammarDetails, issue)
	}

	grammarAssessment := "Good grammar"
	if errorCount > 2 {
		grammarAssessment = fmt.Sprintf("Found %d grammar issues", errorCount)
	}

	vocab := scoreVocabularyDiversity(transcript)
	sentences := scoreSentenceComplexity(transcript)
	coherence := scoreCoherenceTransitions(transcript)
	professional := scoreProfessionalVocabulary(transcript)

	ca.Factors = []commFactor{
		{Name: "grammar", Score: grammarScore, Weight: commWeightGrammar, Assessment: grammarAssessment},
		{Name: "vocabulary_diversity", Score: vocab.Score, Weight: commWeightVocabulary, Assessment: vocab.Assessment},
		{Name: "sentence_complexity", Score: sentences.Score, Weight: commWeightSentences, Assessment: sentences.Assessment},
		{Name: "coherence", Score: coherence.Score, Weight: commWeightCoherence, Assessment: coherence.Assessment},
		{Name: "professional_vocab", Score: professional.Score, Weight: commWeightProfessional, Assessment: professional.Assessment},
	}

	var final float64
	for _, f := range ca.Factors {
		final += f.Score * f.Weight
	}
	ca.Score = round1(final)

	for _, f := range ca.Factors {
		if f.Score < 60 {
			ca.Feedback = append(ca.Feedback, f.Assessment)
		} else if f.Score >= 80 {
			ca.Strengths = append(ca.Strengths, fmt.Sprintf("%s: %s", factorTitle(f.Name), f.Assessment))
		}
	}
	if len(ca.Feedback) == 0 {
		ca.Feedback = append(ca.Feedback, "Good overall communication - keep it up!")
	}
	return ca
}

func (e *Engine) grammarIssues(ctx context.Context, transcript string) []grammar.Issue {
	if len(transcript) < 10 {
		return nil
	}
	issues, err := e.grammar.Check(ctx, transcript)
	if err != nil {
		e.logger.Warn("grammar backend failed", zap.Error(err))
		return nil
	}
	return issues
}

func issueMessages(issues []grammar.Issue) []string {
	msgs := make([]string, 0, len(issues))
	for _, i := range issues {
		msgs = append(msgs, i.Message)
	}
	return msgs
}

func factorTitle(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

type factorResult struct {
	Score      float64
	Assessment string
}

// scoreVocabularyDiversity scores the type-token ratio of the transcript.
func scoreVocabularyDiversity(transcript string) factorResult {
	words := tokenizeWords(transcript)
	total := len(words)
	if total < minWordsForAnalysis {
		return factorResult{Score: 0, Assessment: "insufficient text"}
	}

	unique := make(map[string]bool, total)
	for _, w := range words {
		unique[w] = true
	}
	ttr := float64(len(unique)) / float64(total)

	var score float64
	var assessment string
	switch {
	case ttr >= ttrExcellent:
		score = 85 + (ttr-ttrExcellent)*100
		assessment = "Excellent vocabulary diversity"
	case ttr >= ttrGood:
		score = 70 + (ttr-ttrGood)/(ttrExcellent-ttrGood)*15
		assessment = "Good vocabulary diversity"
	case ttr >= ttrPoor:
		score = 40 + (ttr-ttrPoor)/(ttrGood-ttrPoor)*30
		assessment = "Moderate vocabulary - try using more varied words"
	default:
		score = ttr / ttrPoor * 40
		assessment = "Limited vocabulary - try to avoid repeating the same words"
	}
	return factorResult{Score: clampScore(score), Assessment: assessment}
}

// scoreSentenceComplexity evaluates average sentence length against an
// optimal band of 12-20 words, with a small bonus for healthy variation.
func scoreSentenceComplexity(transcript string) factorResult {
	sentences := splitSentences(transcript)
	if len(sentences) < 2 {
		return factorResult{Score: 50.0, Assessment: "Need more sentences for analysis"}
	}

	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(countWords(s))
	}
	avg, std := meanStd(lengths)

	score := 100.0
	var assessment string
	switch {
	case avg < sentenceLengthMin:
		score -= (sentenceLengthMin - avg) * 5
		assessment = "Sentences too short - try to elaborate more"
	case avg > sentenceLengthMax:
		score -= (avg - sentenceLengthMax) * 3
		assessment = "Sentences too long - try to be more concise"
	case avg >= sentenceLengthOptimalMin && avg <= sentenceLengthOptimalMax:
		assessment = "Good sentence structure"
	case avg < sentenceLengthOptimalMin:
		score -= 10
		assessment = "Slightly short sentences - consider adding more detail"
	default:
		score -= 10
		assessment = "Slightly long sentences - consider being more concise"
	}

	if std >= 3 && std <= 8 {
		score += 5
		if strings.Contains(assessment, "Good") {
			assessment += " with nice variation"
		}
	}
	return factorResult{Score: clampScore(score), Assessment: assessment}
}

// scoreCoherenceTransitions scores flow by the number of distinct
// transition words used.
func scoreCoherenceTransitions(transcript string) factorResult {
	lower := strings.ToLower(transcript)
	if len(strings.Fields(lower)) < minWordsForAnalysis {
		return factorResult{Score: 0, Assessment: "insufficient text"}
	}

	count := 0
	for _, t := range transitionWords {
		if strings.Contains(t, " ") {
			if strings.Contains(lower, t) {
				count++
			}
		} else if transitionPatterns[t].MatchString(lower) {
			count++
		}
	}

	var score float64
	var assessment string
	switch {
	case count >= 5:
		score = 90 + minFloat(10, float64(count-5)*2)
		assessment = "Excellent use of transitions - well-organized speech"
	case count >= 3:
		score = 75 + float64(count-3)*7.5
		assessment = "Good use of transitions"
	case count >= 1:
		score = 50 + float64(count-1)*12.5
		assessment = "Some transitions used - consider adding more connectors"
	default:
		score = 40
		assessment = "No transitions detected - use words like 'first', 'however', 'therefore'"
	}
	return factorResult{Score: clampScore(score), Assessment: assessment}
}

var transitionPatterns = buildBoundaryPatterns(singleWordTerms(transitionWords))

func singleWordTerms(terms []string) []string {
	var out []string
	for _, t := range terms {
		if !strings.Contains(t, " ") {
			out = append(out, t)
		}
	}
	return out
}

// scoreProfessionalVocabulary scores usage of action verbs and business
// terms, matching on 6-character stems so "implement" counts for
// "implemented".
func scoreProfessionalVocabulary(transcript string) factorResult {
	lower := strings.ToLower(transcript)
	words := tokenizeWords(transcript)
	if len(words) < minWordsForAnalysis {
		return factorResult{Score: 0, Assessment: "insufficient text"}
	}

	seen := make(map[string]bool)
	count := 0
	for _, term := range professionalTerms {
		stem := term
		if len(stem) > 6 {
			stem = stem[:6]
		}
		matches := professionalStemPattern(stem).FindAllString(lower, -1)
		for _, m := range head(matches, 3) {
			if !seen[m] {
				seen[m] = true
				count++
			}
		}
	}

	var score float64
	var assessment string
	switch {
	case count >= 6:
		score = 90 + minFloat(10, float64(count-6)*2)
		assessment = "Excellent professional vocabulary"
	case count >= 4:
		score = 75 + float64(count-4)*7.5
		assessment = "Good use of professional language"
	case count >= 2:
		score = 55 + float64(count-2)*10
		assessment = "Some professional terms - consider using more action verbs"
	case count >= 1:
		score = 45
		assessment = "Limited professional vocabulary - use words like 'implemented', 'achieved', 'led'"
	default:
		score = 35
		assessment = "Consider using professional action verbs (implemented, developed, managed)"
	}
	return factorResult{Score: clampScore(score), Assessment: assessment}
}

var professionalStems = buildProfessionalStems()

func buildProfessionalStems() map[string]*regexp.Regexp {
	stems := make(map[string]*regexp.Regexp, len(professionalTerms))
	for _, term := range professionalTerms {
		stem := term
		if len(stem) > 6 {
			stem = stem[:6]
		}
		if _, ok := stems[stem]; !ok {
			stems[stem] = regexp.MustCompile(`\b` + regexp.QuoteMeta(stem) + `[a-z]*\b`)
		}
	}
	return stems
}

func professionalStemPattern(stem string) *regexp.Regexp {
	return professionalStems[stem]
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
