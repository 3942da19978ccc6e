package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/repositories"
)

// AttemptRepository implements the attempt repository interface using GORM
type AttemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{
		db: db,
	}
}

// Create persists a scored attempt
func (r *AttemptRepository) Create(ctx context.Context, attempt *entities.Attempt) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// FindByID finds an attempt by ID
func (r *AttemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error) {
	var attempt entities.Attempt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to find attempt by ID: %w", err)
	}
	return &attempt, nil
}

// FindBySessionID lists a session's attempts in chronological order
func (r *AttemptRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*entities.Attempt, error) {
	var attempts []*entities.Attempt
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to find attempts by session ID: %w", err)
	}
	return attempts, nil
}

// UpdateFeedback stores generated feedback for an attempt
func (r *AttemptRepository) UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Attempt{}).
		Where("id = ?", id).
		Update("feedback", feedback)
	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrAttemptNotFound
	}
	return nil
}

// SessionStats aggregates final scores for a session
func (r *AttemptRepository) SessionStats(ctx context.Context, sessionID uuid.UUID) (*repositories.SessionStats, error) {
	var row struct {
		AttemptCount int
		AverageScore float64
		BestScore    float64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Attempt{}).
		Select("COUNT(*) AS attempt_count, COALESCE(AVG(final_score), 0) AS average_score, COALESCE(MAX(final_score), 0) AS best_score").
		Where("session_id = ?", sessionID).
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate session stats: %w", err)
	}
	return &repositories.SessionStats{
		AttemptCount: row.AttemptCount,
		AverageScore: row.AverageScore,
		BestScore:    row.BestScore,
	}, nil
}
