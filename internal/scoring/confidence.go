package scoring

// neutralSignal is used for any confidence input that was not measured.
const neutralSignal = 70.0

type confidenceAnalysis struct {
	Score    float64
	Feedback []string
}

// scoreConfidence blends the voice-derived confidence estimate with video
// signals. Missing signals default to neutral so audio-only attempts are
// not penalized.
func scoreConfidence(voiceConfidence, eyeContact, bodyStability, emotionPositivity float64) confidenceAnalysis {
	var ca confidenceAnalysis

	final := confWeightVoice*voiceConfidence +
		confWeightEyeContact*eyeContact +
		confWeightStability*bodyStability +
		confWeightEmotion*emotionPositivity
	ca.Score = clampScore(final)

	if voiceConfidence < 60 {
		ca.Feedback = append(ca.Feedback, "Project your voice with more confidence")
	}
	if eyeContact < 60 {
		ca.Feedback = append(ca.Feedback, "Maintain better eye contact with the camera")
	}
	if bodyStability < 60 {
		ca.Feedback = append(ca.Feedback, "Try to reduce fidgeting and stay more still")
	}
	if emotionPositivity < 60 {
		ca.Feedback = append(ca.Feedback, "Try to appear more positive and engaged")
	}

	switch {
	case ca.Score >= 80:
		ca.Feedback = append([]string{"You appear confident and composed!"}, ca.Feedback...)
	case ca.Score >= 60:
		ca.Feedback = append([]string{"Good confidence level with room for improvement"}, ca.Feedback...)
	default:
		ca.Feedback = append([]string{"Work on projecting more confidence"}, ca.Feedback...)
	}
	return ca
}
