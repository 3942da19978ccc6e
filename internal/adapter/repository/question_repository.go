package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/repositories"
)

// QuestionRepository implements the question repository interface using GORM
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// Create adds a question to the pool
func (r *QuestionRepository) Create(ctx context.Context, question *entities.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// FindByID finds a question by ID
func (r *QuestionRepository) FindByID(ctx context.Context, id int) (*entities.Question, error) {
	var question entities.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question by ID: %w", err)
	}
	return &question, nil
}

// FindRandom picks a random question matching the filter, excluding IDs the
// session has already seen.
func (r *QuestionRepository) FindRandom(ctx context.Context, filter repositories.QuestionFilter, excludeIDs []int) (*entities.Question, error) {
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var question entities.Question
	if err := query.Order("RANDOM()").First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrPoolExhausted
		}
		return nil, fmt.Errorf("failed to pick random question: %w", err)
	}
	return &question, nil
}

// List returns questions matching the filter with pagination
func (r *QuestionRepository) List(ctx context.Context, filter repositories.QuestionFilter, limit, offset int) ([]*entities.Question, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&entities.Question{}), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	var questions []*entities.Question
	query := r.applyFilter(r.db.WithContext(ctx), filter).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, total, nil
}

// Count returns the pool size for the filter
func (r *QuestionRepository) Count(ctx context.Context, filter repositories.QuestionFilter) (int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&entities.Question{}), filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return total, nil
}

func (r *QuestionRepository) applyFilter(query *gorm.DB, filter repositories.QuestionFilter) *gorm.DB {
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Domain != "" {
		query = query.Where("domain = ?", filter.Domain)
	}
	return query
}
