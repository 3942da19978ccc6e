package acoustic

import (
	"math"
	"testing"
)

const testSampleRate = 22050

// sine generates a tone at the given frequency and amplitude.
func sine(freq, amplitude float64, seconds float64) []float64 {
	n := int(seconds * testSampleRate)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/testSampleRate)
	}
	return samples
}

func silence(seconds float64) []float64 {
	return make([]float64, int(seconds*testSampleRate))
}

func TestExtractEmptySignal(t *testing.T) {
	if _, err := NewAnalyzer().Extract(nil, testSampleRate); err == nil {
		t.Fatal("expected error for empty signal")
	}
	if _, err := NewAnalyzer().Extract([]float64{0.1}, 0); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}
}

func TestExtractPitchOfSineTone(t *testing.T) {
	m, err := NewAnalyzer().Extract(sine(220, 0.5, 2.0), testSampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(m.PitchMeanHz-220) > 10 {
		t.Fatalf("expected pitch near 220 Hz, got %v", m.PitchMeanHz)
	}
	// A pure tone has essentially no pitch movement.
	if m.PitchStdHz > 5 {
		t.Fatalf("expected near-zero pitch deviation for pure tone, got %v", m.PitchStdHz)
	}
}

func TestExtractDetectsPause(t *testing.T) {
	signal := append(sine(220, 0.5, 1.0), silence(0.6)...)
	signal = append(signal, sine(220, 0.5, 1.0)...)

	m, err := NewAnalyzer().Extract(signal, testSampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.PauseCount < 1 {
		t.Fatalf("expected at least one pause, got %d", m.PauseCount)
	}
	if m.PauseTotalSeconds < 0.3 {
		t.Fatalf("expected pause duration >= 0.3s, got %v", m.PauseTotalSeconds)
	}
	if m.SpeechDurationSeconds >= m.TotalDurationSeconds {
		t.Fatalf("speech duration %v should be below total %v", m.SpeechDurationSeconds, m.TotalDurationSeconds)
	}
}

func TestExtractDuration(t *testing.T) {
	m, err := NewAnalyzer().Extract(sine(330, 0.4, 1.5), testSampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(m.TotalDurationSeconds-1.5) > 0.01 {
		t.Fatalf("expected 1.5s duration, got %v", m.TotalDurationSeconds)
	}
}

func TestExtractMetricsInValidRanges(t *testing.T) {
	// Alternate two tones with small gaps to resemble speech cadence.
	var signal []float64
	for i := 0; i < 4; i++ {
		freq := 180.0
		if i%2 == 1 {
			freq = 240.0
		}
		signal = append(signal, sine(freq, 0.5, 0.5)...)
		signal = append(signal, silence(0.35)...)
	}

	m, err := NewAnalyzer().Extract(signal, testSampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.EnergyMeanDB > 0 {
		t.Fatalf("energy is relative to loudest frame, must be <= 0, got %v", m.EnergyMeanDB)
	}
	if m.PausesPerMinute < 0 {
		t.Fatalf("negative pause rate: %v", m.PausesPerMinute)
	}
	if m.RhythmVariance < 0 {
		t.Fatalf("negative rhythm variance: %v", m.RhythmVariance)
	}
	if m.PitchRangeHz < 0 {
		t.Fatalf("negative pitch range: %v", m.PitchRangeHz)
	}
}
