package acoustic

import (
	"errors"
	"math"
)

const (
	defaultFrameLength = 2048
	defaultHopLength   = 512

	silenceThresholdDB = -40.0
	minPauseSeconds    = 0.3

	// Pitch search range, roughly C2 to C6.
	pitchMinHz = 65.0
	pitchMaxHz = 1047.0

	// Minimum normalized autocorrelation for a frame to count as voiced.
	voicedCorrThreshold = 0.5

	epsilon = 1e-10
)

// Fallback metric values used when a signal is too short or has no usable
// pitch content.
const (
	fallbackPitchMean  = 150.0
	fallbackPitchStd   = 20.0
	fallbackPitchRange = 50.0
	fallbackRhythmVar  = 0.5
)

// Analyzer extracts Metrics from mono PCM samples.
type Analyzer struct {
	frameLength int
	hopLength   int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		frameLength: defaultFrameLength,
		hopLength:   defaultHopLength,
	}
}

// Extract computes all prosodic metrics for the given signal.
// Returns an error only when the input cannot be analyzed at all.
func (a *Analyzer) Extract(samples []float64, sampleRate int) (*Metrics, error) {
	if len(samples) == 0 || sampleRate <= 0 {
		return nil, errors.New("empty audio signal")
	}

	m := &Metrics{
		TotalDurationSeconds: float64(len(samples)) / float64(sampleRate),
	}

	frames := a.frames(samples)
	rms := frameRMS(frames)
	rmsDB := toDecibels(rms)

	a.extractEnergy(rmsDB, m)
	a.extractPauses(rmsDB, sampleRate, m)
	a.extractPitch(frames, rmsDB, sampleRate, m)
	a.extractRhythm(rms, sampleRate, m)

	return m, nil
}

// frames slices the signal into overlapping analysis windows. Signals
// shorter than one window produce a single truncated frame.
func (a *Analyzer) frames(samples []float64) [][]float64 {
	if len(samples) <= a.frameLength {
		return [][]float64{samples}
	}
	n := 1 + (len(samples)-a.frameLength)/a.hopLength
	frames := make([][]float64, n)
	for i := 0; i < n; i++ {
		start := i * a.hopLength
		frames[i] = samples[start : start+a.frameLength]
	}
	return frames
}

func frameRMS(frames [][]float64) []float64 {
	rms := make([]float64, len(frames))
	for i, frame := range frames {
		var sum float64
		for _, s := range frame {
			sum += s * s
		}
		if len(frame) > 0 {
			rms[i] = math.Sqrt(sum / float64(len(frame)))
		}
	}
	return rms
}

// toDecibels converts RMS amplitudes to dB relative to the loudest frame.
func toDecibels(rms []float64) []float64 {
	maxRMS := epsilon
	for _, v := range rms {
		if v > maxRMS {
			maxRMS = v
		}
	}
	db := make([]float64, len(rms))
	for i, v := range rms {
		db[i] = 20 * math.Log10((v+epsilon)/maxRMS)
	}
	return db
}

func (a *Analyzer) extractEnergy(rmsDB []float64, m *Metrics) {
	var active []float64
	for _, db := range rmsDB {
		if db > silenceThresholdDB {
			active = append(active, db)
		}
	}

	if len(active) == 0 {
		m.EnergyMeanDB = -20.0
		m.EnergyStdDB = 5.0
		m.EnergyRangeDB = 15.0
		return
	}

	mean, std := meanStd(active)
	minDB, maxDB := active[0], active[0]
	for _, db := range active {
		minDB = math.Min(minDB, db)
		maxDB = math.Max(maxDB, db)
	}

	m.EnergyMeanDB = mean
	m.EnergyStdDB = std
	m.EnergyRangeDB = maxDB - minDB
}

func (a *Analyzer) extractPauses(rmsDB []float64, sampleRate int, m *Metrics) {
	frameTime := float64(a.hopLength) / float64(sampleRate)

	var pauses []float64
	current := 0.0
	for _, db := range rmsDB {
		if db < silenceThresholdDB {
			current += frameTime
			continue
		}
		if current >= minPauseSeconds {
			pauses = append(pauses, current)
		}
		current = 0
	}
	if current >= minPauseSeconds {
		pauses = append(pauses, current)
	}

	m.PauseCount = len(pauses)
	for _, p := range pauses {
		m.PauseTotalSeconds += p
	}
	if len(pauses) > 0 {
		m.PauseMeanSeconds = m.PauseTotalSeconds / float64(len(pauses))
	}
	m.SpeechDurationSeconds = m.TotalDurationSeconds - m.PauseTotalSeconds
	if m.TotalDurationSeconds > 0 {
		m.PausesPerMinute = float64(m.PauseCount) / m.TotalDurationSeconds * 60
	}
}

// extractPitch estimates the fundamental frequency of each active frame by
// normalized autocorrelation and aggregates over voiced frames.
func (a *Analyzer) extractPitch(frames [][]float64, rmsDB []float64, sampleRate int, m *Metrics) {
	minLag := int(float64(sampleRate) / pitchMaxHz)
	maxLag := int(float64(sampleRate) / pitchMinHz)
	if minLag < 1 {
		minLag = 1
	}

	var voiced []float64
	for i, frame := range frames {
		if rmsDB[i] <= silenceThresholdDB || len(frame) <= maxLag {
			continue
		}
		if f0, ok := framePitch(frame, sampleRate, minLag, maxLag); ok {
			voiced = append(voiced, f0)
		}
	}

	if len(voiced) == 0 {
		m.PitchMeanHz = fallbackPitchMean
		m.PitchStdHz = fallbackPitchStd
		m.PitchRangeHz = fallbackPitchRange
		return
	}

	mean, std := meanStd(voiced)
	minF0, maxF0 := voiced[0], voiced[0]
	for _, f0 := range voiced {
		minF0 = math.Min(minF0, f0)
		maxF0 = math.Max(maxF0, f0)
	}

	m.PitchMeanHz = mean
	m.PitchStdHz = std
	m.PitchRangeHz = maxF0 - minF0
}

// framePitch returns the frame's fundamental frequency, or false when no
// lag in the search range correlates strongly enough to call it voiced.
func framePitch(frame []float64, sampleRate, minLag, maxLag int) (float64, bool) {
	mean := 0.0
	for _, s := range frame {
		mean += s
	}
	mean /= float64(len(frame))

	centered := make([]float64, len(frame))
	var energy float64
	for i, s := range frame {
		centered[i] = s - mean
		energy += centered[i] * centered[i]
	}
	if energy < epsilon {
		return 0, false
	}

	bestLag := 0
	bestCorr := 0.0
	for lag := minLag; lag <= maxLag && lag < len(centered); lag++ {
		var corr float64
		for i := 0; i < len(centered)-lag; i++ {
			corr += centered[i] * centered[i+lag]
		}
		corr /= energy
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}

	if bestLag == 0 || bestCorr < voicedCorrThreshold {
		return 0, false
	}
	return float64(sampleRate) / float64(bestLag), true
}

// extractRhythm detects onsets from positive energy flux and measures the
// regularity of the intervals between them.
func (a *Analyzer) extractRhythm(rms []float64, sampleRate int, m *Metrics) {
	if len(rms) < 3 {
		m.RhythmVariance = fallbackRhythmVar
		return
	}

	flux := make([]float64, len(rms)-1)
	for i := 1; i < len(rms); i++ {
		flux[i-1] = math.Max(0, rms[i]-rms[i-1])
	}

	mean, std := meanStd(flux)
	threshold := mean + std

	frameTime := float64(a.hopLength) / float64(sampleRate)
	minGap := 0.05 // seconds between distinct onsets

	var onsets []float64
	lastOnset := -minGap
	for i, f := range flux {
		if f <= threshold {
			continue
		}
		t := float64(i) * frameTime
		if t-lastOnset >= minGap {
			onsets = append(onsets, t)
			lastOnset = t
		}
	}

	if len(onsets) < 2 {
		m.RhythmVariance = fallbackRhythmVar
		return
	}

	intervals := make([]float64, len(onsets)-1)
	for i := 1; i < len(onsets); i++ {
		intervals[i-1] = onsets[i] - onsets[i-1]
	}
	iMean, iStd := meanStd(intervals)
	m.RhythmVariance = iStd / (iMean + epsilon)
}

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
