package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attempt is one scored answer inside an interview session. The full
// ScoreResult is stored as jsonb so the feedback layer can re-read it
// without recomputing.
type Attempt struct {
	ID              uuid.UUID                          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID       uuid.UUID                          `json:"session_id" gorm:"type:uuid;not null;index"`
	QuestionID      int                                `json:"question_id" gorm:"not null;index"`
	Transcript      string                             `json:"transcript" gorm:"type:text"`
	DurationSeconds float64                            `json:"duration_seconds"`
	AudioObjectKey  string                             `json:"audio_object_key,omitempty" gorm:"type:varchar(512)"`
	Mode            string                             `json:"mode" gorm:"type:varchar(20);default:'full'"`
	FinalScore      float64                            `json:"final_score" gorm:"index"`
	Scores          datatypes.JSONType[*ScoreResult]   `json:"scores" gorm:"type:jsonb"`
	Feedback        string                             `json:"feedback,omitempty" gorm:"type:text"`
	CreatedAt       time.Time                          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                          `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Attempt) TableName() string {
	return "attempts"
}

// NewAttempt creates an attempt record for a scored answer
func NewAttempt(sessionID uuid.UUID, questionID int, transcript string, duration float64, mode string, result *ScoreResult) *Attempt {
	a := &Attempt{
		ID:              uuid.New(),
		SessionID:       sessionID,
		QuestionID:      questionID,
		Transcript:      transcript,
		DurationSeconds: duration,
		Mode:            mode,
		CreatedAt:       time.Now(),
	}
	if result != nil {
		a.FinalScore = result.Final
		a.Scores = datatypes.NewJSONType(result)
	}
	return a
}
