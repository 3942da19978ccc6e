package scoring

import (
	"strings"
	"testing"
)

func TestValidateWeights(t *testing.T) {
	if err := ValidateWeights(); err != nil {
		t.Fatalf("weight tables should validate: %v", err)
	}
}

func TestScoreDeliveryOptimalPace(t *testing.T) {
	// 29 words in 12 seconds = 145 WPM, no fillers.
	words := make([]string, 29)
	for i := range words {
		words[i] = "word"
	}
	da := scoreDelivery(strings.Join(words, " "), 12, ModeFull)

	if da.WPM != 145.0 {
		t.Fatalf("expected 145 wpm, got %v", da.WPM)
	}
	if da.FillerCount != 0 {
		t.Fatalf("expected no fillers, got %d", da.FillerCount)
	}
	if da.Score != 100.0 {
		t.Fatalf("expected perfect delivery, got %v", da.Score)
	}
}

func TestScoreDeliveryFastSpeechScoresLower(t *testing.T) {
	words := strings.Repeat("word ", 25)
	fast := scoreDelivery(strings.TrimSpace(words), 6, ModeFull)  // 250 WPM
	good := scoreDelivery(strings.TrimSpace(words), 10, ModeFull) // 150 WPM

	if fast.Score >= good.Score {
		t.Fatalf("250 WPM (%v) should score below 150 WPM (%v)", fast.Score, good.Score)
	}
}

func TestScoreDeliveryFillerPenaltyCaps(t *testing.T) {
	// 20 ums at 2.0 each would be 40; the full pipeline caps at 30.
	transcript := strings.TrimSpace(strings.Repeat("um steady answer continues here ", 20))
	da := scoreDelivery(transcript, 40, ModeFull) // 100 words in 40s = 150 WPM
	if da.FillerCount != 20 {
		t.Fatalf("expected 20 fillers, got %d", da.FillerCount)
	}
	if da.Score != 70.0 {
		t.Fatalf("expected 100-30 capped filler penalty, got %v", da.Score)
	}

	// Keyword-only path: 3.0 per filler capped at 20.
	ka := scoreDelivery(transcript, 40, ModeKeywordOnly)
	if ka.Score != 80.0 {
		t.Fatalf("expected keyword-only cap of 20, got %v", ka.Score)
	}
}

func TestScoreVocabularyDiversityBands(t *testing.T) {
	// All-unique words: TTR 1.0, excellent band.
	unique := "alpha bravo charlie delta echo foxtrot golf hotel india juliet " +
		"kilo lima mike november oscar papa quebec romeo sierra tango"
	fr := scoreVocabularyDiversity(unique)
	if fr.Score < 85 {
		t.Fatalf("expected excellent diversity score, got %v", fr.Score)
	}

	// Repetitive: 20 copies of one word, TTR 0.05.
	fr = scoreVocabularyDiversity(strings.TrimSpace(strings.Repeat("repeat ", 20)))
	if fr.Score >= 40 {
		t.Fatalf("expected poor diversity score, got %v", fr.Score)
	}

	// Too short for analysis.
	fr = scoreVocabularyDiversity("just a few words")
	if fr.Score != 0 {
		t.Fatalf("expected 0 for insufficient text, got %v", fr.Score)
	}
}

func TestScoreSentenceComplexityNeutralForOneSentence(t *testing.T) {
	fr := scoreSentenceComplexity("A single short sentence only")
	if fr.Score != 50.0 {
		t.Fatalf("expected neutral 50 for one sentence, got %v", fr.Score)
	}
}

func TestScoreCoherenceTransitions(t *testing.T) {
	text := "First we gathered requirements from the client team. " +
		"However the timeline was short. Therefore we reduced scope early. " +
		"Additionally we automated deployment. Finally we shipped the release on schedule."
	fr := scoreCoherenceTransitions(text)
	if fr.Score < 90 {
		t.Fatalf("expected excellent coherence with 5+ transitions, got %v", fr.Score)
	}

	fr = scoreCoherenceTransitions("too short")
	if fr.Score != 0 {
		t.Fatalf("expected 0 for insufficient text, got %v", fr.Score)
	}
}

func TestScoreStructureStarDetection(t *testing.T) {
	full := "The situation was a failing deployment pipeline. My task was to stabilize releases. " +
		"The action I took was rewriting the build scripts. The result was a forty percent faster release cycle."
	sa := scoreStructure(full)
	if sa.StarScore != 100.0 {
		t.Fatalf("expected STAR score 100 with all components, got %v (found %v)", sa.StarScore, sa.ComponentsFound)
	}

	none := "Cooking dinner involves chopping vegetables and heating oil in a pan before serving everything warm."
	sa = scoreStructure(none)
	if sa.StarScore != 25.0 {
		t.Fatalf("expected STAR score 25 with no components, got %v (found %v)", sa.StarScore, sa.ComponentsFound)
	}
}

func TestScoreStructureShortAnswer(t *testing.T) {
	sa := scoreStructure("too short")
	if sa.Score != 0 {
		t.Fatalf("expected 0 structure score for short answer, got %v", sa.Score)
	}
}

func TestScoreConfidenceDefaults(t *testing.T) {
	ca := scoreConfidence(neutralSignal, neutralSignal, neutralSignal, neutralSignal)
	if ca.Score != 70.0 {
		t.Fatalf("expected neutral 70 confidence, got %v", ca.Score)
	}

	ca = scoreConfidence(80, 80, 80, 80)
	if ca.Score != 80.0 {
		t.Fatalf("expected 80 confidence, got %v", ca.Score)
	}
}

func TestCoverageScoreBands(t *testing.T) {
	cases := []struct {
		coverage float64
		min, max float64
	}{
		{1.0, 100, 100},
		{0.8, 85, 85},
		{0.6, 70, 70},
		{0.4, 50, 50},
		{0.2, 30, 30},
		{0.1, 15, 15},
		{0.0, 0, 0},
	}
	for _, tc := range cases {
		got := coverageScore(tc.coverage)
		if got < tc.min || got > tc.max {
			t.Errorf("coverage %v: expected score in [%v, %v], got %v", tc.coverage, tc.min, tc.max, got)
		}
	}
}
