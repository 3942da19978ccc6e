package acoustic

import "math"

// Voice score component weights.
const (
	weightPitchVariation = 0.25
	weightEnergyProject  = 0.25
	weightPauses         = 0.20
	weightEnergyConsist  = 0.15
	weightRhythm         = 0.15
)

// Pitch variation thresholds (Hz standard deviation).
const (
	pitchStdMonotone   = 15.0
	pitchStdOptimalMin = 25.0
	pitchStdOptimalMax = 50.0
	pitchStdDramatic   = 70.0
)

// Pause rate thresholds (pauses per minute).
const (
	pausesTooFew     = 2.0
	pausesOptimalMin = 3.0
	pausesOptimalMax = 8.0
	pausesTooMany    = 12.0
)

// Scores holds the per-component voice scores, each in [0, 100].
type Scores struct {
	PitchVariation      float64
	EnergyProjection    float64
	PauseAppropriate    float64
	EnergyConsistency   float64
	RhythmStability     float64
	Overall             float64
	VoiceConfidence     float64
	Feedback            []string
}

// NeutralScores is used when no audio is available or analysis fails.
// Everything sits at 70 so missing audio neither rewards nor punishes.
func NeutralScores(note string) Scores {
	return Scores{
		PitchVariation:    70,
		EnergyProjection:  70,
		PauseAppropriate:  70,
		EnergyConsistency: 70,
		RhythmStability:   70,
		Overall:           70,
		VoiceConfidence:   70,
		Feedback:          []string{note},
	}
}

// ScoreMetrics converts extracted metrics into component voice scores.
func ScoreMetrics(m *Metrics) Scores {
	s := Scores{
		PitchVariation:    scorePitchVariation(m.PitchStdHz),
		EnergyProjection:  scoreEnergyProjection(m.EnergyMeanDB),
		PauseAppropriate:  scorePausePattern(m.PausesPerMinute),
		EnergyConsistency: scoreEnergyConsistency(m.EnergyStdDB),
		RhythmStability:   scoreRhythmStability(m.RhythmVariance),
	}

	s.Overall = weightPitchVariation*s.PitchVariation +
		weightEnergyProject*s.EnergyProjection +
		weightPauses*s.PauseAppropriate +
		weightEnergyConsist*s.EnergyConsistency +
		weightRhythm*s.RhythmStability

	// Projection dominates the confidence estimate; nervous speakers
	// mostly show up as inconsistent energy.
	s.VoiceConfidence = math.Max(0, math.Min(100,
		0.5*s.EnergyProjection+0.3*s.EnergyConsistency+0.2*s.PitchVariation))

	s.Feedback = voiceFeedback(s, m)
	return s
}

// scorePitchVariation rewards expressive but controlled pitch movement.
// Optimal is a 25-50 Hz standard deviation.
func scorePitchVariation(pitchStd float64) float64 {
	switch {
	case pitchStd < pitchStdMonotone:
		return math.Max(0, pitchStd/pitchStdMonotone*50)
	case pitchStd <= pitchStdOptimalMin:
		ratio := (pitchStd - pitchStdMonotone) / (pitchStdOptimalMin - pitchStdMonotone)
		return 50 + ratio*30
	case pitchStd <= pitchStdOptimalMax:
		ratio := (pitchStd - pitchStdOptimalMin) / (pitchStdOptimalMax - pitchStdOptimalMin)
		return 80 + ratio*20
	case pitchStd <= pitchStdDramatic:
		ratio := (pitchStd - pitchStdOptimalMax) / (pitchStdDramatic - pitchStdOptimalMax)
		return 100 - ratio*30
	default:
		return math.Max(50, 70-(pitchStd-pitchStdDramatic)*0.5)
	}
}

// scoreEnergyProjection scores loudness. Energy is dB relative to the
// loudest frame, so it is shifted by +30 before banding.
func scoreEnergyProjection(energyMeanDB float64) float64 {
	normalized := energyMeanDB + 30
	switch {
	case normalized < 0:
		return math.Max(30, 50+normalized*2)
	case normalized < 10:
		return 50 + normalized*3
	case normalized < 20:
		return 80 + (normalized-10)*2
	default:
		return 100
	}
}

// scorePausePattern rewards a natural 3-8 pauses per minute.
func scorePausePattern(pausesPerMinute float64) float64 {
	switch {
	case pausesPerMinute < pausesTooFew:
		return math.Max(40, 60+(pausesPerMinute-pausesTooFew)*10)
	case pausesPerMinute <= pausesOptimalMin:
		ratio := (pausesPerMinute - pausesTooFew) / (pausesOptimalMin - pausesTooFew)
		return 60 + ratio*20
	case pausesPerMinute <= pausesOptimalMax:
		return 90 + math.Min(10, (pausesPerMinute-pausesOptimalMin)*2)
	case pausesPerMinute <= pausesTooMany:
		ratio := (pausesPerMinute - pausesOptimalMax) / (pausesTooMany - pausesOptimalMax)
		return 100 - ratio*30
	default:
		return math.Max(40, 70-(pausesPerMinute-pausesTooMany)*3)
	}
}

// scoreEnergyConsistency rewards controlled dynamics. Very flat delivery
// scores 75; a 5-8 dB standard deviation is ideal.
func scoreEnergyConsistency(energyStd float64) float64 {
	switch {
	case energyStd < 3:
		return 75
	case energyStd <= 8:
		return 90 + math.Min(10, 8-energyStd)
	case energyStd <= 15:
		ratio := (energyStd - 8) / 7
		return 90 - ratio*20
	default:
		return math.Max(50, 70-(energyStd-15)*2)
	}
}

// scoreRhythmStability rewards steady but natural pacing. Below 0.1 CV is
// robotic, above 0.6 is erratic.
func scoreRhythmStability(rhythmVariance float64) float64 {
	switch {
	case rhythmVariance < 0.1:
		return 70
	case rhythmVariance <= 0.3:
		ratio := (rhythmVariance - 0.1) / 0.2
		return 85 + ratio*15
	case rhythmVariance <= 0.6:
		ratio := (rhythmVariance - 0.3) / 0.3
		return 100 - ratio*20
	default:
		return math.Max(50, 80-(rhythmVariance-0.6)*50)
	}
}

func voiceFeedback(s Scores, m *Metrics) []string {
	var feedback []string

	if s.PitchVariation < 60 {
		if m.PitchStdHz < pitchStdOptimalMin {
			feedback = append(feedback, "Try varying your pitch more to sound more engaging and expressive.")
		} else {
			feedback = append(feedback, "Your pitch variation is excessive; try to moderate your tone.")
		}
	} else if s.PitchVariation >= 85 {
		feedback = append(feedback, "Excellent vocal expressiveness!")
	}

	if s.EnergyProjection < 60 {
		feedback = append(feedback, "Speak up! Project your voice more confidently.")
	} else if s.EnergyProjection >= 85 {
		feedback = append(feedback, "Great voice projection and volume.")
	}

	if s.PauseAppropriate < 60 {
		if m.PausesPerMinute < pausesOptimalMin {
			feedback = append(feedback, "Try to pause more between thoughts to let ideas sink in.")
		} else {
			feedback = append(feedback, "Reduce hesitation pauses; practice for smoother delivery.")
		}
	} else if s.PauseAppropriate >= 85 {
		feedback = append(feedback, "Natural and effective use of pauses.")
	}

	if s.EnergyConsistency < 60 {
		feedback = append(feedback, "Work on maintaining consistent energy throughout your response.")
	}

	if s.RhythmStability < 60 {
		feedback = append(feedback, "Focus on steady pacing; avoid rushing or slowing down erratically.")
	} else if s.RhythmStability >= 85 {
		feedback = append(feedback, "Excellent pacing and rhythm.")
	}

	if s.Overall >= 80 {
		feedback = append([]string{"Strong overall vocal delivery!"}, feedback...)
	} else if s.Overall < 50 {
		feedback = append([]string{"Voice delivery needs significant improvement."}, feedback...)
	}

	return feedback
}
