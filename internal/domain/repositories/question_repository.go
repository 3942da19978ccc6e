package repositories

import (
	"context"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
)

// QuestionFilter narrows question pool queries. Zero values match anything.
type QuestionFilter struct {
	Category   entities.QuestionCategory
	Difficulty entities.QuestionDifficulty
	Domain     string
}

// QuestionRepository defines the interface for question pool data access
type QuestionRepository interface {
	// Create adds a question to the pool
	Create(ctx context.Context, question *entities.Question) error

	// FindByID finds a question by ID
	FindByID(ctx context.Context, id int) (*entities.Question, error)

	// FindRandom picks a random question matching the filter, excluding the
	// given IDs. Returns entities.ErrPoolExhausted when nothing is left.
	FindRandom(ctx context.Context, filter QuestionFilter, excludeIDs []int) (*entities.Question, error)

	// List returns questions matching the filter with pagination
	List(ctx context.Context, filter QuestionFilter, limit, offset int) ([]*entities.Question, int64, error)

	// Count returns the pool size for the filter
	Count(ctx context.Context, filter QuestionFilter) (int64, error)
}
