package acoustic

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// encodeWAV builds a minimal 16-bit PCM WAV payload for tests.
func encodeWAV(samples []float64, sampleRate int, channels uint16) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		for ch := uint16(0); ch < channels; ch++ {
			v := int16(math.Round(s * 32767))
			_ = binary.Write(&data, binary.LittleEndian, v)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, channels)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*int(channels)*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())
	return buf.Bytes()
}

func TestDecodeWAVRoundTrip(t *testing.T) {
	original := sine(220, 0.5, 0.5)
	payload := encodeWAV(original, testSampleRate, 1)

	samples, rate, err := DecodeWAV(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != testSampleRate {
		t.Fatalf("expected sample rate %d, got %d", testSampleRate, rate)
	}
	if len(samples) != len(original) {
		t.Fatalf("expected %d samples, got %d", len(original), len(samples))
	}
	for i := 0; i < len(samples); i += 1000 {
		if math.Abs(samples[i]-original[i]) > 0.001 {
			t.Fatalf("sample %d diverged: %v vs %v", i, samples[i], original[i])
		}
	}
}

func TestDecodeWAVStereoDownmix(t *testing.T) {
	original := sine(220, 0.5, 0.2)
	payload := encodeWAV(original, testSampleRate, 2)

	samples, _, err := DecodeWAV(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != len(original) {
		t.Fatalf("expected %d downmixed samples, got %d", len(original), len(samples))
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	if _, _, err := DecodeWAV(bytes.NewReader([]byte("definitely not audio data"))); err == nil {
		t.Fatal("expected error for non-wav input")
	}
}
