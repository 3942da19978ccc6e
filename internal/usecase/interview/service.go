// Package interview orchestrates practice sessions: question selection,
// answer evaluation, persistence, and feedback generation.
package interview

import (
	"bytes"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/Bhavya-Chawat/AI-Interview-Assistant/errors"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/repositories"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/acoustic"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/usecase/feedback"
)

// Transcriber converts recorded audio to text.
type Transcriber interface {
	TranscribeReader(ctx context.Context, r io.Reader) (*TranscriptionResult, error)
}

// TranscriptionResult is the transcriber output consumed here.
type TranscriptionResult struct {
	Text            string
	DurationSeconds float64
}

// AudioStore persists answer recordings.
type AudioStore interface {
	UploadAudio(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
}

// Service handles interview session business logic
type Service struct {
	sessionRepo  repositories.SessionRepository
	attemptRepo  repositories.AttemptRepository
	questionRepo repositories.QuestionRepository
	engine       *scoring.Engine
	feedback     *feedback.Service
	transcriber  Transcriber
	audioStore   AudioStore
	logger       *zap.Logger
}

// NewService creates a new interview service. Transcriber and audioStore are
// optional; without them audio answers require a client-side transcript and
// recordings are not archived.
func NewService(
	sessionRepo repositories.SessionRepository,
	attemptRepo repositories.AttemptRepository,
	questionRepo repositories.QuestionRepository,
	engine *scoring.Engine,
	feedbackSvc *feedback.Service,
	transcriber Transcriber,
	audioStore AudioStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		engine:       engine,
		feedback:     feedbackSvc,
		transcriber:  transcriber,
		audioStore:   audioStore,
		logger:       logger,
	}
}

// StartSessionInput represents input for starting a session
type StartSessionInput struct {
	UserID     uuid.UUID
	Category   entities.QuestionCategory
	Difficulty entities.QuestionDifficulty
	Domain     string
}

// StartSession creates a new active interview session
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*entities.InterviewSession, error) {
	if input.Category == "" {
		input.Category = entities.CategoryGeneral
	}
	if !entities.ValidCategory(input.Category) {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("invalid category %q", input.Category))
	}
	if input.Difficulty == "" {
		input.Difficulty = entities.DifficultyMedium
	}
	if !entities.ValidDifficulty(input.Difficulty) {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("invalid difficulty %q", input.Difficulty))
	}

	session := entities.NewInterviewSession(input.UserID, input.Category, input.Difficulty, input.Domain)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create session", err)
	}

	s.logger.Info("interview session started",
		zap.String("session_id", session.ID.String()),
		zap.String("category", string(session.Category)))

	return session, nil
}

// GetSession finds a session by ID
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, entities.ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound(id.String())
		}
		return nil, apperrors.ErrDBQueryFailed("find session", err)
	}
	return session, nil
}

// ListSessions returns a user's most recent sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sessions, err := s.sessionRepo.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list sessions", err)
	}
	return sessions, nil
}

// SessionSummary bundles a session with its attempts and aggregate stats.
type SessionSummary struct {
	Session  *entities.InterviewSession `json:"session"`
	Attempts []*entities.Attempt        `json:"attempts"`
	Stats    *repositories.SessionStats `json:"stats"`
}

// GetSessionSummary returns the session, its attempts, and score aggregates
func (s *Service) GetSessionSummary(ctx context.Context, id uuid.UUID) (*SessionSummary, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	attempts, err := s.attemptRepo.FindBySessionID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list attempts", err)
	}

	stats, err := s.attemptRepo.SessionStats(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("session stats", err)
	}

	return &SessionSummary{Session: session, Attempts: attempts, Stats: stats}, nil
}

// CompleteSession marks a session finished and returns its summary
func (s *Service) CompleteSession(ctx context.Context, id uuid.UUID) (*SessionSummary, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.IsActive() {
		return nil, apperrors.ErrSessionNotActive(id.String())
	}

	session.Complete()
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, apperrors.ErrDBQueryFailed("complete session", err)
	}

	return s.GetSessionSummary(ctx, id)
}

// EvaluateAnswerInput represents one answer submission
type EvaluateAnswerInput struct {
	SessionID       uuid.UUID
	QuestionID      int
	Transcript      string
	DurationSeconds float64
	AudioWAV        []byte
	Video           *entities.VideoSignals
	Mode            scoring.Mode
	WithFeedback    bool
}

// EvaluateAnswerOutput is the evaluation result for one submission
type EvaluateAnswerOutput struct {
	Attempt  *entities.Attempt     `json:"attempt"`
	Scores   *entities.ScoreResult `json:"scores"`
	Feedback *feedback.Feedback    `json:"feedback,omitempty"`
}

// EvaluateAnswer scores one answer, persists the attempt, and optionally
// generates coaching feedback.
func (s *Service) EvaluateAnswer(ctx context.Context, input EvaluateAnswerInput) (*EvaluateAnswerOutput, error) {
	session, err := s.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive() {
		return nil, apperrors.ErrSessionNotActive(session.ID.String())
	}

	question, err := s.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		if goerrors.Is(err, entities.ErrQuestionNotFound) {
			return nil, apperrors.ErrQuestionNotFound(fmt.Sprintf("%d", input.QuestionID))
		}
		return nil, apperrors.ErrDBQueryFailed("find question", err)
	}

	if input.Mode == "" {
		input.Mode = scoring.ModeFull
	}

	answer := &entities.AnswerInput{
		Transcript:      input.Transcript,
		DurationSeconds: input.DurationSeconds,
		Video:           input.Video,
	}

	var audioObjectKey string
	if len(input.AudioWAV) > 0 {
		audioObjectKey = s.processAudio(ctx, session.ID, input.AudioWAV, answer)
	}

	if answer.Transcript == "" {
		return nil, apperrors.ErrInvalidArgument("transcript is required")
	}

	result, err := s.engine.EvaluateAnswer(ctx, question, answer, input.Mode)
	if err != nil {
		return nil, apperrors.ErrEvaluationFailed(err)
	}

	attempt := entities.NewAttempt(session.ID, question.ID, answer.Transcript, answer.DurationSeconds, string(input.Mode), result)
	attempt.AudioObjectKey = audioObjectKey
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create attempt", err)
	}

	output := &EvaluateAnswerOutput{Attempt: attempt, Scores: result}

	if input.WithFeedback && s.feedback != nil {
		fb, err := s.feedback.GenerateAnswerFeedback(ctx, question, answer.Transcript, result)
		if err != nil {
			s.logger.Warn("feedback generation failed", zap.Error(err))
		} else {
			output.Feedback = fb
			if encoded, err := json.Marshal(fb); err == nil {
				if err := s.attemptRepo.UpdateFeedback(ctx, attempt.ID, string(encoded)); err != nil {
					s.logger.Warn("failed to store feedback", zap.Error(err))
				} else {
					attempt.Feedback = string(encoded)
				}
			}
		}
	}

	s.logger.Info("answer evaluated",
		zap.String("session_id", session.ID.String()),
		zap.Int("question_id", question.ID),
		zap.String("mode", string(input.Mode)),
		zap.Float64("final_score", result.Final))

	return output, nil
}

// processAudio decodes the WAV payload for acoustic scoring, fills in a
// missing transcript via the transcription provider, and archives the
// recording. Each step degrades independently.
func (s *Service) processAudio(ctx context.Context, sessionID uuid.UUID, wav []byte, answer *entities.AnswerInput) string {
	samples, sampleRate, err := acoustic.DecodeWAV(bytes.NewReader(wav))
	if err != nil {
		s.logger.Warn("failed to decode audio, voice scoring will use neutral defaults", zap.Error(err))
	} else {
		answer.Audio = &entities.AudioClip{Samples: samples, SampleRate: sampleRate}
		if answer.DurationSeconds <= 0 {
			answer.DurationSeconds = answer.Audio.DurationSeconds()
		}
	}

	if answer.Transcript == "" && s.transcriber != nil {
		result, err := s.transcriber.TranscribeReader(ctx, bytes.NewReader(wav))
		if err != nil {
			s.logger.Warn("transcription failed", zap.Error(err))
		} else {
			answer.Transcript = result.Text
			if answer.DurationSeconds <= 0 {
				answer.DurationSeconds = result.DurationSeconds
			}
		}
	}

	if s.audioStore == nil {
		return ""
	}
	objectKey := fmt.Sprintf("attempts/%s/%s.wav", sessionID, uuid.New())
	uploadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.audioStore.UploadAudio(uploadCtx, objectKey, bytes.NewReader(wav), int64(len(wav)), "audio/wav"); err != nil {
		s.logger.Warn("failed to archive recording", zap.Error(err))
		return ""
	}
	return objectKey
}

// GetAttempt finds an attempt by ID
func (s *Service) GetAttempt(ctx context.Context, id uuid.UUID) (*entities.Attempt, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, entities.ErrAttemptNotFound) {
			return nil, apperrors.ErrAttemptNotFound(id.String())
		}
		return nil, apperrors.ErrDBQueryFailed("find attempt", err)
	}
	return attempt, nil
}

// ScoreResume evaluates resume-to-job-description fit
func (s *Service) ScoreResume(ctx context.Context, resumeText, jobDescription string) (*scoring.ResumeScore, error) {
	if resumeText == "" || jobDescription == "" {
		return nil, apperrors.ErrInvalidArgument("resume text and job description are required")
	}
	score := s.engine.ScoreResume(ctx, resumeText, jobDescription)
	return &score, nil
}
