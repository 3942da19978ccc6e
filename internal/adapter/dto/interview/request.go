package interview

// StartSessionRequest represents the request to start a practice session
type StartSessionRequest struct {
	Category   string `json:"category" validate:"omitempty,oneof=general behavioral technical management situational"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Domain     string `json:"domain,omitempty" validate:"omitempty,max=100"`
}

// VideoSignalsRequest carries pre-scored video confidence cues
type VideoSignalsRequest struct {
	EyeContact        float64 `json:"eye_contact" validate:"min=0,max=100"`
	BodyStability     float64 `json:"body_stability" validate:"min=0,max=100"`
	EmotionPositivity float64 `json:"emotion_positivity" validate:"min=0,max=100"`
}

// SubmitAnswerRequest represents one answer submission. AudioBase64 is an
// optional base64-encoded WAV payload; when the transcript is empty the
// server transcribes the audio.
type SubmitAnswerRequest struct {
	QuestionID      int                  `json:"question_id" validate:"required,min=1"`
	Transcript      string               `json:"transcript"`
	DurationSeconds float64              `json:"duration_seconds" validate:"omitempty,min=0"`
	Mode            string               `json:"mode" validate:"omitempty,oneof=full keyword_only"`
	AudioBase64     string               `json:"audio_base64,omitempty"`
	Video           *VideoSignalsRequest `json:"video,omitempty"`
	WithFeedback    bool                 `json:"with_feedback"`
}

// ScoreResumeRequest represents a resume-to-job-description match request
type ScoreResumeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=20"`
	JobDescription string `json:"job_description" validate:"required,min=20"`
}
