package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/errors"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/adapter/dto/common"
	questiondto "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/adapter/dto/question"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/repositories"
	questionuse "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/usecase/question"
)

// Question handles question pool endpoints
type Question struct {
	service *questionuse.Service
	logger  *zap.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(service *questionuse.Service, logger *zap.Logger) *Question {
	return &Question{
		service: service,
		logger:  logger,
	}
}

// Next handles GET /questions/next
// @Summary      Pick the next question
// @Description  Picks a random unseen question for the session, honoring category/difficulty/domain filters
// @Tags         Questions
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  query     string  true   "Session ID"
// @Param        category    query     string  false  "Question category"
// @Param        difficulty  query     string  false  "Question difficulty"
// @Param        domain      query     string  false  "Question domain"
// @Success      200         {object}  entities.Question
// @Failure      404         {object}  map[string]interface{}  "Pool exhausted"
// @Router       /questions/next [get]
func (h *Question) Next(c echo.Context) error {
	var req questiondto.NextQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("session_id must be a UUID"))
	}

	filter := repositories.QuestionFilter{
		Category:   entities.QuestionCategory(req.Category),
		Difficulty: entities.QuestionDifficulty(req.Difficulty),
		Domain:     req.Domain,
	}

	question, err := h.service.NextQuestion(c.Request().Context(), sessionID, filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, question)
}

// Get handles GET /questions/:id
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Question ID"
// @Success      200  {object}  entities.Question
// @Failure      404  {object}  map[string]interface{}
// @Router       /questions/{id} [get]
func (h *Question) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("question id must be a positive integer"))
	}

	question, err := h.service.GetQuestion(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, question)
}

// List handles GET /questions
// @Summary      List questions
// @Tags         Questions
// @Produce      json
// @Security     BearerAuth
// @Param        category    query     string  false  "Question category"
// @Param        difficulty  query     string  false  "Question difficulty"
// @Param        page        query     int     false  "Page number"
// @Param        page_size   query     int     false  "Page size"
// @Success      200  {object}  common.ListResponse
// @Router       /questions [get]
func (h *Question) List(c echo.Context) error {
	var req questiondto.ListQuestionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	filter := repositories.QuestionFilter{
		Category:   entities.QuestionCategory(req.Category),
		Difficulty: entities.QuestionDifficulty(req.Difficulty),
		Domain:     req.Domain,
	}

	questions, total, err := h.service.ListQuestions(c.Request().Context(), filter, req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: questions,
		Pagination: &common.PaginationResponse{
			Page:       req.Page,
			PageSize:   req.PageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
	})
}

// Create handles POST /questions
// @Summary      Add a question to the pool
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      question.AddQuestionRequest  true  "Question"
// @Success      200      {object}  entities.Question
// @Failure      400      {object}  map[string]interface{}
// @Router       /questions [post]
func (h *Question) Create(c echo.Context) error {
	var req questiondto.AddQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.service.AddQuestion(c.Request().Context(), questionuse.AddQuestionInput{
		Text:             req.Text,
		IdealAnswer:      req.IdealAnswer,
		Keywords:         req.Keywords,
		Category:         entities.QuestionCategory(req.Category),
		Domain:           req.Domain,
		Difficulty:       entities.QuestionDifficulty(req.Difficulty),
		TimeLimitSeconds: req.TimeLimitSeconds,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, created)
}
