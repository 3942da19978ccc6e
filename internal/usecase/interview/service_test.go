package interview

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/Bhavya-Chawat/AI-Interview-Assistant/errors"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/repositories"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/acoustic"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/grammar"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/similarity"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entities.InterviewSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entities.InterviewSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entities.InterviewSession) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.InterviewSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) FindByUserID(_ context.Context, userID uuid.UUID, _ int) ([]*entities.InterviewSession, error) {
	var out []*entities.InterviewSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, s *entities.InterviewSession) error {
	f.sessions[s.ID] = s
	return nil
}

type fakeAttemptRepo struct {
	attempts map[uuid.UUID]*entities.Attempt
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uuid.UUID]*entities.Attempt)}
}

func (f *fakeAttemptRepo) Create(_ context.Context, a *entities.Attempt) error {
	f.attempts[a.ID] = a
	return nil
}

func (f *fakeAttemptRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, entities.ErrAttemptNotFound
	}
	return a, nil
}

func (f *fakeAttemptRepo) FindBySessionID(_ context.Context, sessionID uuid.UUID) ([]*entities.Attempt, error) {
	var out []*entities.Attempt
	for _, a := range f.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) UpdateFeedback(_ context.Context, id uuid.UUID, fb string) error {
	a, ok := f.attempts[id]
	if !ok {
		return entities.ErrAttemptNotFound
	}
	a.Feedback = fb
	return nil
}

func (f *fakeAttemptRepo) SessionStats(_ context.Context, sessionID uuid.UUID) (*repositories.SessionStats, error) {
	stats := &repositories.SessionStats{}
	var sum float64
	for _, a := range f.attempts {
		if a.SessionID != sessionID {
			continue
		}
		stats.AttemptCount++
		sum += a.FinalScore
		if a.FinalScore > stats.BestScore {
			stats.BestScore = a.FinalScore
		}
	}
	if stats.AttemptCount > 0 {
		stats.AverageScore = sum / float64(stats.AttemptCount)
	}
	return stats, nil
}

type fakeQuestionRepo struct {
	questions map[int]*entities.Question
}

func newFakeQuestionRepo(qs ...*entities.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[int]*entities.Question)}
	for _, q := range qs {
		repo.questions[q.ID] = q
	}
	return repo
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *entities.Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) FindByID(_ context.Context, id int) (*entities.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, entities.ErrQuestionNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindRandom(_ context.Context, _ repositories.QuestionFilter, excludeIDs []int) (*entities.Question, error) {
	excluded := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	for id, q := range f.questions {
		if !excluded[id] {
			return q, nil
		}
	}
	return nil, entities.ErrPoolExhausted
}

func (f *fakeQuestionRepo) List(_ context.Context, _ repositories.QuestionFilter, _, _ int) ([]*entities.Question, int64, error) {
	var out []*entities.Question
	for _, q := range f.questions {
		out = append(out, q)
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuestionRepo) Count(_ context.Context, _ repositories.QuestionFilter) (int64, error) {
	return int64(len(f.questions)), nil
}

func newTestService() (*Service, *fakeSessionRepo, *fakeQuestionRepo) {
	question := &entities.Question{
		ID:   1,
		Text: "Describe a production incident you resolved.",
		IdealAnswer: "In my previous role our checkout service latency spiked during a sale. " +
			"I was responsible for restoring performance. I profiled the service, found an unindexed query, " +
			"added caching, and deployed the fix. As a result latency dropped by 60 percent.",
		Keywords: []string{"latency", "caching", "profiling"},
	}

	engine := scoring.NewEngine(
		similarity.NewJaccard(),
		grammar.NewHeuristic(),
		acoustic.NewAnalyzer(),
		zap.NewNop(),
	)

	sessions := newFakeSessionRepo()
	questions := newFakeQuestionRepo(question)
	svc := NewService(sessions, newFakeAttemptRepo(), questions, engine, nil, nil, nil, zap.NewNop())
	return svc, sessions, questions
}

func TestStartSessionDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	session, err := svc.StartSession(context.Background(), StartSessionInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Category != entities.CategoryGeneral || session.Difficulty != entities.DifficultyMedium {
		t.Fatalf("expected defaults, got %s/%s", session.Category, session.Difficulty)
	}
	if !session.IsActive() {
		t.Fatal("new session must be active")
	}
}

func TestListSessionsFiltersByUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	for _, userID := range []uuid.UUID{owner, owner, other} {
		if _, err := svc.StartSession(ctx, StartSessionInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	sessions, err := svc.ListSessions(ctx, owner, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions for owner, got %d", len(sessions))
	}
	for _, s := range sessions {
		if s.UserID != owner {
			t.Fatalf("session %s belongs to %s, not owner", s.ID, s.UserID)
		}
	}
}

func TestStartSessionRejectsBadCategory(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.StartSession(context.Background(), StartSessionInput{
		UserID:   uuid.New(),
		Category: "astrology",
	})
	if err == nil {
		t.Fatal("expected error for invalid category")
	}
}

func TestEvaluateAnswerPersistsAttempt(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx, StartSessionInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := svc.EvaluateAnswer(ctx, EvaluateAnswerInput{
		SessionID:  session.ID,
		QuestionID: 1,
		Transcript: "Our checkout latency spiked during a sale. I profiled the service, " +
			"found the slow query, added caching, and latency dropped by 60 percent.",
		DurationSeconds: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Scores == nil || out.Scores.Final <= 0 {
		t.Fatalf("expected positive final score, got %+v", out.Scores)
	}
	if out.Attempt.SessionID != session.ID || out.Attempt.QuestionID != 1 {
		t.Fatalf("attempt not linked correctly: %+v", out.Attempt)
	}

	summary, err := svc.GetSessionSummary(ctx, session.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Stats.AttemptCount != 1 {
		t.Fatalf("expected 1 attempt, got %d", summary.Stats.AttemptCount)
	}
}

func TestEvaluateAnswerRequiresActiveSession(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.StartSession(ctx, StartSessionInput{UserID: uuid.New()})
	if _, err := svc.CompleteSession(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.EvaluateAnswer(ctx, EvaluateAnswerInput{
		SessionID:  session.ID,
		QuestionID: 1,
		Transcript: "some answer text here",
	})
	var appErr apperrors.AppError
	if err == nil {
		t.Fatal("expected error for completed session")
	}
	if !asAppError(err, &appErr) || appErr.Code != apperrors.ErrorCode_SESSION_NOT_ACTIVE {
		t.Fatalf("expected SESSION_NOT_ACTIVE, got %v", err)
	}
}

func TestEvaluateAnswerUnknownQuestion(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.StartSession(ctx, StartSessionInput{UserID: uuid.New()})
	_, err := svc.EvaluateAnswer(ctx, EvaluateAnswerInput{
		SessionID:  session.ID,
		QuestionID: 999,
		Transcript: "some answer",
	})
	var appErr apperrors.AppError
	if err == nil || !asAppError(err, &appErr) || appErr.Code != apperrors.ErrorCode_QUESTION_NOT_FOUND {
		t.Fatalf("expected QUESTION_NOT_FOUND, got %v", err)
	}
}

func TestCompleteSessionTwiceFails(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	session, _ := svc.StartSession(ctx, StartSessionInput{UserID: uuid.New()})
	if _, err := svc.CompleteSession(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CompleteSession(ctx, session.ID); err == nil {
		t.Fatal("expected error completing a finished session")
	}
}

func TestScoreResumeValidation(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.ScoreResume(context.Background(), "", "job description"); err == nil {
		t.Fatal("expected error for empty resume")
	}

	score, err := svc.ScoreResume(context.Background(),
		"Senior Go engineer with five years building distributed payment systems.",
		"Looking for a Go engineer experienced with distributed systems and payments.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.OverallScore <= 0 || score.OverallScore > 100 {
		t.Fatalf("score out of range: %+v", score)
	}
}

func asAppError(err error, target *apperrors.AppError) bool {
	appErr, ok := err.(apperrors.AppError)
	if ok {
		*target = appErr
		return true
	}
	return false
}
