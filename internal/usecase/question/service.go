// Package question manages the interview question pool and per-session
// asked-question tracking.
package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/Bhavya-Chawat/AI-Interview-Assistant/errors"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/repositories"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/cache"
)

// askedSetTTL bounds how long a session's asked-question set lives in cache.
const askedSetTTL = 24 * time.Hour

// questionCacheTTL bounds how long an individual question is cached.
// Questions are near-immutable reference data.
const questionCacheTTL = time.Hour

// Service handles question pool business logic
type Service struct {
	questionRepo repositories.QuestionRepository
	store        cache.Store
	logger       *zap.Logger
}

// NewService creates a new question service
func NewService(questionRepo repositories.QuestionRepository, store cache.Store, logger *zap.Logger) *Service {
	return &Service{
		questionRepo: questionRepo,
		store:        store,
		logger:       logger,
	}
}

// NextQuestion picks a random unseen question for the session. When the pool
// for the filter is exhausted it returns entities.ErrPoolExhausted.
func (s *Service) NextQuestion(ctx context.Context, sessionID uuid.UUID, filter repositories.QuestionFilter) (*entities.Question, error) {
	askedIDs, err := s.askedQuestionIDs(ctx, sessionID)
	if err != nil {
		// Cache trouble should not block the interview; worst case a
		// question repeats.
		s.logger.Warn("failed to read asked-question set", zap.Error(err))
		askedIDs = nil
	}

	question, err := s.questionRepo.FindRandom(ctx, filter, askedIDs)
	if err != nil {
		if errors.Is(err, entities.ErrPoolExhausted) {
			return nil, apperrors.ErrQuestionPoolEmpty(string(filter.Category))
		}
		return nil, apperrors.ErrDBQueryFailed("pick question", err)
	}

	if err := s.markAsked(ctx, sessionID, question.ID); err != nil {
		s.logger.Warn("failed to record asked question",
			zap.String("session_id", sessionID.String()),
			zap.Int("question_id", question.ID),
			zap.Error(err))
	}

	return question, nil
}

// GetQuestion finds a question by ID, read-through cached.
func (s *Service) GetQuestion(ctx context.Context, id int) (*entities.Question, error) {
	cacheKey := fmt.Sprintf("question:%d", id)
	if cached, found, err := s.store.Get(ctx, cacheKey); err == nil && found {
		var question entities.Question
		if err := json.Unmarshal([]byte(cached), &question); err == nil {
			return &question, nil
		}
	}

	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrQuestionNotFound) {
			return nil, apperrors.ErrQuestionNotFound(strconv.Itoa(id))
		}
		return nil, apperrors.ErrDBQueryFailed("find question", err)
	}

	if data, err := json.Marshal(question); err == nil {
		if err := s.store.Set(ctx, cacheKey, string(data), questionCacheTTL); err != nil {
			s.logger.Warn("failed to cache question", zap.Int("question_id", id), zap.Error(err))
		}
	}
	return question, nil
}

// ListQuestions returns questions matching the filter with pagination
func (s *Service) ListQuestions(ctx context.Context, filter repositories.QuestionFilter, limit, offset int) ([]*entities.Question, int64, error) {
	return s.questionRepo.List(ctx, filter, limit, offset)
}

// AddQuestionInput represents input for adding a question to the pool
type AddQuestionInput struct {
	Text             string
	IdealAnswer      string
	Keywords         []string
	Category         entities.QuestionCategory
	Domain           string
	Difficulty       entities.QuestionDifficulty
	TimeLimitSeconds int
}

// AddQuestion adds a new question to the pool
func (s *Service) AddQuestion(ctx context.Context, input AddQuestionInput) (*entities.Question, error) {
	if input.Text == "" {
		return nil, apperrors.ErrInvalidArgument("question text is required")
	}
	if input.Category == "" {
		input.Category = entities.CategoryGeneral
	}
	if !entities.ValidCategory(input.Category) {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("invalid category: %s", input.Category))
	}
	if input.Difficulty == "" {
		input.Difficulty = entities.DifficultyMedium
	}
	if !entities.ValidDifficulty(input.Difficulty) {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("invalid difficulty: %s", input.Difficulty))
	}
	if input.TimeLimitSeconds <= 0 {
		input.TimeLimitSeconds = 120
	}

	question := &entities.Question{
		Text:             input.Text,
		IdealAnswer:      input.IdealAnswer,
		Keywords:         input.Keywords,
		Category:         input.Category,
		Domain:           input.Domain,
		Difficulty:       input.Difficulty,
		TimeLimitSeconds: input.TimeLimitSeconds,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create question", err)
	}
	return question, nil
}

// PoolSize reports the number of questions matching the filter
func (s *Service) PoolSize(ctx context.Context, filter repositories.QuestionFilter) (int64, error) {
	return s.questionRepo.Count(ctx, filter)
}

func askedSetKey(sessionID uuid.UUID) string {
	return "session:" + sessionID.String() + ":asked"
}

func (s *Service) askedQuestionIDs(ctx context.Context, sessionID uuid.UUID) ([]int, error) {
	members, err := s.store.SetMembers(ctx, askedSetKey(sessionID))
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Service) markAsked(ctx context.Context, sessionID uuid.UUID, questionID int) error {
	key := askedSetKey(sessionID)
	if err := s.store.AddToSet(ctx, key, strconv.Itoa(questionID)); err != nil {
		return err
	}
	return s.store.Expire(ctx, key, askedSetTTL)
}
