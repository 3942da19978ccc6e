package acoustic

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// DecodeWAV reads a PCM WAV stream and returns normalized mono samples in
// [-1, 1] plus the sample rate. Supports 8/16/32-bit integer PCM and
// 32-bit float; multi-channel audio is downmixed by averaging.
func DecodeWAV(r io.Reader) ([]float64, int, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, 0, fmt.Errorf("failed to read riff header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, 0, errors.New("not a wav file")
	}

	var (
		audioFormat   uint16
		numChannels   uint16
		sampleRate    uint32
		bitsPerSample uint16
		haveFmt       bool
	)

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(r, chunkHeader[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, 0, errors.New("wav data chunk not found")
			}
			return nil, 0, fmt.Errorf("failed to read chunk header: %w", err)
		}

		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			fmtChunk := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, fmtChunk); err != nil {
				return nil, 0, fmt.Errorf("failed to read fmt chunk: %w", err)
			}
			if chunkSize < 16 {
				return nil, 0, errors.New("wav fmt chunk too small")
			}
			audioFormat = binary.LittleEndian.Uint16(fmtChunk[0:2])
			numChannels = binary.LittleEndian.Uint16(fmtChunk[2:4])
			sampleRate = binary.LittleEndian.Uint32(fmtChunk[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(fmtChunk[14:16])
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, 0, errors.New("wav data chunk before fmt chunk")
			}
			data := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, data); err != nil {
				return nil, 0, fmt.Errorf("failed to read data chunk: %w", err)
			}
			samples, err := decodeSamples(data, audioFormat, numChannels, bitsPerSample)
			if err != nil {
				return nil, 0, err
			}
			return samples, int(sampleRate), nil

		default:
			// Skip unknown chunks (LIST, cue, etc).
			if _, err := io.CopyN(io.Discard, r, int64(chunkSize)); err != nil {
				return nil, 0, fmt.Errorf("failed to skip %q chunk: %w", chunkID, err)
			}
		}
	}
}

func decodeSamples(data []byte, format, channels, bits uint16) ([]float64, error) {
	const (
		formatPCM   = 1
		formatFloat = 3
	)

	if channels == 0 {
		return nil, errors.New("wav has zero channels")
	}

	bytesPerSample := int(bits) / 8
	if bytesPerSample == 0 {
		return nil, errors.New("wav has zero sample width")
	}
	frameSize := bytesPerSample * int(channels)
	frameCount := len(data) / frameSize

	samples := make([]float64, frameCount)
	for i := 0; i < frameCount; i++ {
		var sum float64
		for ch := 0; ch < int(channels); ch++ {
			offset := i*frameSize + ch*bytesPerSample
			v, err := decodeSample(data[offset:offset+bytesPerSample], format, bits)
			if err != nil {
				return nil, err
			}
			sum += v
		}
		samples[i] = sum / float64(channels)
	}
	return samples, nil
}

func decodeSample(b []byte, format, bits uint16) (float64, error) {
	switch {
	case format == 1 && bits == 16:
		return float64(int16(binary.LittleEndian.Uint16(b))) / 32768.0, nil
	case format == 1 && bits == 32:
		return float64(int32(binary.LittleEndian.Uint32(b))) / 2147483648.0, nil
	case format == 1 && bits == 8:
		// 8-bit WAV is unsigned.
		return (float64(b[0]) - 128) / 128.0, nil
	case format == 3 && bits == 32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
	default:
		return 0, fmt.Errorf("unsupported wav encoding: format=%d bits=%d", format, bits)
	}
}
