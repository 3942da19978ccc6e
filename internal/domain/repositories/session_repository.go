package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
)

// SessionRepository defines the interface for interview session data access
type SessionRepository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entities.InterviewSession) error

	// FindByID finds a session by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error)

	// FindByUserID finds sessions for a user, most recent first
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error)

	// Update persists session state changes
	Update(ctx context.Context, session *entities.InterviewSession) error
}
