package entities

// AudioClip is a decoded mono waveform handed to the acoustic branch.
// The caller owns the sample slice for the duration of the scoring call.
type AudioClip struct {
	Samples    []float64
	SampleRate int
}

// DurationSeconds returns the clip length implied by the sample count.
func (a *AudioClip) DurationSeconds() float64 {
	if a == nil || a.SampleRate <= 0 {
		return 0
	}
	return float64(len(a.Samples)) / float64(a.SampleRate)
}

// VideoSignals are pre-scored confidence cues from an external video
// analyzer. All values are 0-100; absent signals default to neutral 70.
type VideoSignals struct {
	EyeContact        float64 `json:"eye_contact"`
	BodyStability     float64 `json:"body_stability"`
	EmotionPositivity float64 `json:"emotion_positivity"`
}

// AnswerInput is one evaluation request: the transcribed answer plus
// optional audio and video-derived signals.
type AnswerInput struct {
	Transcript      string
	DurationSeconds float64
	Audio           *AudioClip
	Video           *VideoSignals
}

// HasAudio reports whether usable raw audio was supplied.
func (in *AnswerInput) HasAudio() bool {
	return in != nil && in.Audio != nil && len(in.Audio.Samples) > 0 && in.Audio.SampleRate > 0
}
