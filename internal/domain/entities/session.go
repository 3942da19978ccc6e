package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus tracks interview session lifecycle
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusAbandoned SessionStatus = "abandoned"
)

// InterviewSession groups the attempts of one practice interview run.
type InterviewSession struct {
	ID         uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID          `json:"user_id" gorm:"type:uuid;not null;index"`
	Category   QuestionCategory   `json:"category" gorm:"type:varchar(30)"`
	Difficulty QuestionDifficulty `json:"difficulty" gorm:"type:varchar(10)"`
	Domain     string             `json:"domain,omitempty" gorm:"type:varchar(100)"`
	Status     SessionStatus      `json:"status" gorm:"type:varchar(20);default:'active';index"`
	StartedAt  time.Time          `json:"started_at" gorm:"autoCreateTime"`
	EndedAt    *time.Time         `json:"ended_at,omitempty" gorm:"type:timestamp"`
	CreatedAt  time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// NewInterviewSession creates a new active session
func NewInterviewSession(userID uuid.UUID, category QuestionCategory, difficulty QuestionDifficulty, domain string) *InterviewSession {
	return &InterviewSession{
		ID:         uuid.New(),
		UserID:     userID,
		Category:   category,
		Difficulty: difficulty,
		Domain:     domain,
		Status:     SessionStatusActive,
		StartedAt:  time.Now(),
	}
}

// Complete marks the session as finished
func (s *InterviewSession) Complete() {
	now := time.Now()
	s.Status = SessionStatusCompleted
	s.EndedAt = &now
}

// IsActive reports whether the session is still accepting attempts
func (s *InterviewSession) IsActive() bool {
	return s != nil && s.Status == SessionStatusActive
}
