package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
)

// SessionStats aggregates attempt scores for a finished session.
type SessionStats struct {
	AttemptCount int     `json:"attempt_count"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`
}

// AttemptRepository defines the interface for attempt data access
type AttemptRepository interface {
	// Create persists a scored attempt
	Create(ctx context.Context, attempt *entities.Attempt) error

	// FindByID finds an attempt by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error)

	// FindBySessionID lists a session's attempts in chronological order
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*entities.Attempt, error)

	// UpdateFeedback stores generated feedback for an attempt
	UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error

	// SessionStats aggregates final scores for a session
	SessionStats(ctx context.Context, sessionID uuid.UUID) (*SessionStats, error)
}
