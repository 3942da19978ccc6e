package handler

import (
	"encoding/base64"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/errors"
	interviewdto "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/adapter/dto/interview"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/http/middleware"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring"
	interviewuse "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/usecase/interview"
)

// maxAudioBytes bounds uploaded recordings (25 MB).
const maxAudioBytes = 25 << 20

// Session handles interview session endpoints
type Session struct {
	service *interviewuse.Service
	logger  *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *interviewuse.Service, logger *zap.Logger) *Session {
	return &Session{
		service: service,
		logger:  logger,
	}
}

// Start handles POST /sessions
// @Summary      Start a practice session
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      interview.StartSessionRequest  true  "Session settings"
// @Success      200      {object}  entities.InterviewSession
// @Failure      400      {object}  map[string]interface{}
// @Router       /sessions [post]
func (h *Session) Start(c echo.Context) error {
	var req interviewdto.StartSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	session, err := h.service.StartSession(c.Request().Context(), interviewuse.StartSessionInput{
		UserID:     userID,
		Category:   entities.QuestionCategory(req.Category),
		Difficulty: entities.QuestionDifficulty(req.Difficulty),
		Domain:     req.Domain,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, session)
}

// List handles GET /sessions
// @Summary      List recent sessions
// @Description  Returns the authenticated user's most recent sessions, newest first
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum sessions to return (default 20)"
// @Success      200    {array}   entities.InterviewSession
// @Router       /sessions [get]
func (h *Session) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	sessions, err := h.service.ListSessions(c.Request().Context(), userID, limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, sessions)
}

// Get handles GET /sessions/:id
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  entities.InterviewSession
// @Failure      404  {object}  map[string]interface{}
// @Router       /sessions/{id} [get]
func (h *Session) Get(c echo.Context) error {
	id, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	session, err := h.service.GetSession(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, session)
}

// Summary handles GET /sessions/:id/summary
// @Summary      Get session summary
// @Description  Returns the session, its attempts, and aggregate score stats
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  interview.SessionSummary
// @Router       /sessions/{id}/summary [get]
func (h *Session) Summary(c echo.Context) error {
	id, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.service.GetSessionSummary(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, summary)
}

// Complete handles POST /sessions/:id/complete
// @Summary      Complete a session
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  interview.SessionSummary
// @Failure      409  {object}  map[string]interface{}  "Session not active"
// @Router       /sessions/{id}/complete [post]
func (h *Session) Complete(c echo.Context) error {
	id, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.service.CompleteSession(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, summary)
}

// SubmitAnswer handles POST /sessions/:id/answers
// @Summary      Evaluate an answer
// @Description  Scores a transcribed answer, optionally with base64 WAV audio for voice analysis
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Session ID"
// @Param        request  body      interview.SubmitAnswerRequest  true  "Answer"
// @Success      200      {object}  interview.EvaluateAnswerOutput
// @Failure      400      {object}  map[string]interface{}
// @Router       /sessions/{id}/answers [post]
func (h *Session) SubmitAnswer(c echo.Context) error {
	id, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req interviewdto.SubmitAnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var audio []byte
	if req.AudioBase64 != "" {
		audio, err = base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("audio_base64 is not valid base64"))
		}
		if len(audio) > maxAudioBytes {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("audio payload exceeds 25 MB limit"))
		}
	}

	input := interviewuse.EvaluateAnswerInput{
		SessionID:       id,
		QuestionID:      req.QuestionID,
		Transcript:      req.Transcript,
		DurationSeconds: req.DurationSeconds,
		AudioWAV:        audio,
		Mode:            scoring.Mode(req.Mode),
		WithFeedback:    req.WithFeedback,
	}
	if req.Video != nil {
		input.Video = &entities.VideoSignals{
			EyeContact:        req.Video.EyeContact,
			BodyStability:     req.Video.BodyStability,
			EmotionPositivity: req.Video.EmotionPositivity,
		}
	}

	output, err := h.service.EvaluateAnswer(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, output)
}

// SubmitAudioAnswer handles POST /sessions/:id/answers/audio (multipart)
// @Summary      Evaluate a recorded answer
// @Description  Accepts a multipart WAV upload; the server transcribes it when no transcript field is given
// @Tags         Sessions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Session ID"
// @Param        question_id  formData  int     true   "Question ID"
// @Param        audio        formData  file    true   "WAV recording"
// @Param        transcript   formData  string  false  "Client-side transcript"
// @Param        mode         formData  string  false  "Evaluation mode"
// @Success      200          {object}  interview.EvaluateAnswerOutput
// @Router       /sessions/{id}/answers/audio [post]
func (h *Session) SubmitAudioAnswer(c echo.Context) error {
	id, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req struct {
		QuestionID   int    `form:"question_id" validate:"required,min=1"`
		Transcript   string `form:"transcript"`
		Mode         string `form:"mode" validate:"omitempty,oneof=full keyword_only"`
		WithFeedback bool   `form:"with_feedback"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio file is required"))
	}
	if fileHeader.Size > maxAudioBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio payload exceeds 25 MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes+1))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	output, err := h.service.EvaluateAnswer(c.Request().Context(), interviewuse.EvaluateAnswerInput{
		SessionID:    id,
		QuestionID:   req.QuestionID,
		Transcript:   req.Transcript,
		AudioWAV:     audio,
		Mode:         scoring.Mode(req.Mode),
		WithFeedback: req.WithFeedback,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, output)
}

// GetAttempt handles GET /attempts/:id
// @Summary      Get an attempt
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Attempt ID"
// @Success      200  {object}  entities.Attempt
// @Failure      404  {object}  map[string]interface{}
// @Router       /attempts/{id} [get]
func (h *Session) GetAttempt(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("attempt id must be a UUID"))
	}

	attempt, err := h.service.GetAttempt(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, attempt)
}

// ScoreResume handles POST /resume/score
// @Summary      Score a resume against a job description
// @Tags         Resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      interview.ScoreResumeRequest  true  "Resume and job description"
// @Success      200      {object}  scoring.ResumeScore
// @Router       /resume/score [post]
func (h *Session) ScoreResume(c echo.Context) error {
	var req interviewdto.ScoreResumeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	score, err := h.service.ScoreResume(c.Request().Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, score)
}

func (h *Session) sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("session id must be a UUID")
	}
	return id, nil
}
