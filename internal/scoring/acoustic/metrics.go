// Package acoustic extracts prosodic metrics from raw audio samples and
// scores vocal delivery. The analysis is intentionally lightweight:
// frame-level RMS energy, autocorrelation pitch tracking and energy-flux
// onset detection, all on mono PCM.
package acoustic

// Metrics holds the prosodic measurements extracted from a recording.
// Energy values are in dB relative to the loudest frame, so they are
// negative or zero.
type Metrics struct {
	PitchMeanHz  float64
	PitchStdHz   float64
	PitchRangeHz float64

	EnergyMeanDB  float64
	EnergyStdDB   float64
	EnergyRangeDB float64

	PauseCount        int
	PauseTotalSeconds float64
	PauseMeanSeconds  float64
	PausesPerMinute   float64

	// RhythmVariance is the coefficient of variation of inter-onset
	// intervals. Lower means steadier pacing.
	RhythmVariance float64

	TotalDurationSeconds  float64
	SpeechDurationSeconds float64
}
