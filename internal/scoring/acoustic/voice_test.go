package acoustic

import "testing"

func TestScorePitchVariationBands(t *testing.T) {
	cases := []struct {
		pitchStd float64
		min, max float64
	}{
		{0, 0, 0},
		{7.5, 20, 30},   // monotone band
		{20, 60, 70},    // approaching optimal
		{25, 80, 80},    // optimal floor
		{50, 100, 100},  // optimal ceiling
		{60, 80, 90},    // overly expressive
		{100, 50, 60},   // dramatic
	}
	for _, tc := range cases {
		got := scorePitchVariation(tc.pitchStd)
		if got < tc.min || got > tc.max {
			t.Errorf("pitch std %v: expected score in [%v, %v], got %v", tc.pitchStd, tc.min, tc.max, got)
		}
	}
}

func TestScorePausePatternOptimalRange(t *testing.T) {
	if got := scorePausePattern(5); got < 90 {
		t.Fatalf("5 pauses/min should score >= 90, got %v", got)
	}
	if got := scorePausePattern(0); got > 60 {
		t.Fatalf("0 pauses/min should score poorly, got %v", got)
	}
	if got := scorePausePattern(20); got > 60 {
		t.Fatalf("20 pauses/min should score poorly, got %v", got)
	}
}

func TestScoreEnergyConsistencyBands(t *testing.T) {
	if got := scoreEnergyConsistency(1); got != 75 {
		t.Fatalf("very flat energy should score 75, got %v", got)
	}
	if got := scoreEnergyConsistency(6); got < 90 {
		t.Fatalf("controlled dynamics should score >= 90, got %v", got)
	}
	if got := scoreEnergyConsistency(25); got > 60 {
		t.Fatalf("erratic energy should score <= 60, got %v", got)
	}
}

func TestScoreRhythmStabilityBands(t *testing.T) {
	if got := scoreRhythmStability(0.05); got != 70 {
		t.Fatalf("robotic rhythm should score 70, got %v", got)
	}
	if got := scoreRhythmStability(0.3); got != 100 {
		t.Fatalf("optimal rhythm should score 100, got %v", got)
	}
	if got := scoreRhythmStability(1.2); got < 50 {
		t.Fatalf("scores never drop below 50 on erratic rhythm, got %v", got)
	}
}

func TestScoreMetricsBounds(t *testing.T) {
	m := &Metrics{
		PitchStdHz:      35,
		EnergyMeanDB:    -12,
		EnergyStdDB:     6,
		PausesPerMinute: 5,
		RhythmVariance:  0.25,
	}
	s := ScoreMetrics(m)

	for name, score := range map[string]float64{
		"pitch":       s.PitchVariation,
		"energy":      s.EnergyProjection,
		"pauses":      s.PauseAppropriate,
		"consistency": s.EnergyConsistency,
		"rhythm":      s.RhythmStability,
		"overall":     s.Overall,
		"confidence":  s.VoiceConfidence,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s score out of range: %v", name, score)
		}
	}
	if s.Overall < 80 {
		t.Fatalf("healthy metrics should score well overall, got %v", s.Overall)
	}
}

func TestNeutralScores(t *testing.T) {
	s := NeutralScores("no audio")
	if s.Overall != 70 || s.VoiceConfidence != 70 {
		t.Fatalf("neutral scores should sit at 70, got %+v", s)
	}
	if len(s.Feedback) != 1 || s.Feedback[0] != "no audio" {
		t.Fatalf("expected the note as only feedback, got %v", s.Feedback)
	}
}

func TestVoiceConfidenceComposition(t *testing.T) {
	// Confidence = 0.5*projection + 0.3*consistency + 0.2*pitch.
	m := &Metrics{
		PitchStdHz:      50,  // pitch score 100
		EnergyMeanDB:    -10, // normalized 20 -> projection 100
		EnergyStdDB:     8,   // consistency 90
		PausesPerMinute: 5,
		RhythmVariance:  0.3,
	}
	s := ScoreMetrics(m)
	expected := 0.5*s.EnergyProjection + 0.3*s.EnergyConsistency + 0.2*s.PitchVariation
	if s.VoiceConfidence != expected {
		t.Fatalf("expected voice confidence %v, got %v", expected, s.VoiceConfidence)
	}
}
