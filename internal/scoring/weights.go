package scoring

import (
	"fmt"
	"math"
)

// Category weights for the final score. Content carries the most weight
// since relevance to the question matters more than delivery polish.
const (
	WeightContent       = 0.30
	WeightDelivery      = 0.15
	WeightCommunication = 0.15
	WeightVoice         = 0.15
	WeightConfidence    = 0.15
	WeightStructure     = 0.10
)

// Communication sub-factor weights.
const (
	commWeightGrammar      = 0.30
	commWeightVocabulary   = 0.25
	commWeightSentences    = 0.15
	commWeightCoherence    = 0.15
	commWeightProfessional = 0.15
)

// Confidence sub-factor weights.
const (
	confWeightVoice      = 0.40
	confWeightEyeContact = 0.30
	confWeightStability  = 0.20
	confWeightEmotion    = 0.10
)

// Structure sub-factor weights.
const (
	structWeightStar         = 0.50
	structWeightOrganization = 0.30
	structWeightConclusion   = 0.20
)

// Speaking pace thresholds (words per minute).
const (
	optimalWPMMin = 130.0
	optimalWPMMax = 160.0
	wpmTooSlow    = 100.0
	wpmTooFast    = 180.0
)

// Filler penalties. The full pipeline is more lenient per filler but allows
// a larger total penalty than the keyword-only path.
const (
	fillerPenaltyPerWord     = 2.0
	maxFillerPenalty         = 30.0
	keywordFillerPerWord     = 3.0
	keywordMaxFillerPenalty  = 20.0
)

// Grammar penalties.
const (
	grammarPenaltyPerError = 3.0
	maxGrammarPenalty      = 40.0
)

// Vocabulary diversity (type-token ratio) bands.
const (
	ttrExcellent = 0.65
	ttrGood      = 0.50
	ttrPoor      = 0.30
)

// Sentence length bands (words per sentence).
const (
	sentenceLengthMin        = 8.0
	sentenceLengthMax        = 30.0
	sentenceLengthOptimalMin = 12.0
	sentenceLengthOptimalMax = 20.0
)

// Minimum word count for the communication sub-analyses to be meaningful.
const minWordsForAnalysis = 20

const maxExtractedKeywords = 15

const weightSumTolerance = 1e-9

// ValidateWeights checks that every weight table sums to 1.0. Called once
// at startup so a bad edit fails fast instead of silently skewing scores.
func ValidateWeights() error {
	tables := map[string]float64{
		"category": WeightContent + WeightDelivery + WeightCommunication +
			WeightVoice + WeightConfidence + WeightStructure,
		"communication": commWeightGrammar + commWeightVocabulary +
			commWeightSentences + commWeightCoherence + commWeightProfessional,
		"confidence": confWeightVoice + confWeightEyeContact +
			confWeightStability + confWeightEmotion,
		"structure": structWeightStar + structWeightOrganization + structWeightConclusion,
	}

	for name, sum := range tables {
		if math.Abs(sum-1.0) > weightSumTolerance {
			return fmt.Errorf("%s weights sum to %.4f, expected 1.0", name, sum)
		}
	}
	return nil
}

// clampScore bounds a score to [0, 100] and rounds to one decimal place.
// All published scores go through this so results are stable across runs.
func clampScore(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
