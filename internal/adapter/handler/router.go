package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	questionHandler *Question
	sessionHandler  *Session
	systemHandler   *System
	authMW          echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	questionHandler *Question,
	sessionHandler *Session,
	systemHandler *System,
	authMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:             cfg,
		questionHandler: questionHandler,
		sessionHandler:  sessionHandler,
		systemHandler:   systemHandler,
		authMW:          authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group, bearer-token protected
	v1 := e.Group("/v1")
	if rt.authMW != nil {
		v1.Use(rt.authMW)
	}

	rt.setupQuestionRoutes(v1)
	rt.setupSessionRoutes(v1)
	rt.setupSystemRoutes(v1)
}

func (rt *Router) setupQuestionRoutes(g *echo.Group) {
	questionGroup := g.Group("/questions")
	questionGroup.GET("", rt.questionHandler.List)
	questionGroup.POST("", rt.questionHandler.Create)
	questionGroup.GET("/next", rt.questionHandler.Next)
	questionGroup.GET("/:id", rt.questionHandler.Get)
}

func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessionGroup := g.Group("/sessions")
	sessionGroup.POST("", rt.sessionHandler.Start)
	sessionGroup.GET("", rt.sessionHandler.List)
	sessionGroup.GET("/:id", rt.sessionHandler.Get)
	sessionGroup.GET("/:id/summary", rt.sessionHandler.Summary)
	sessionGroup.POST("/:id/complete", rt.sessionHandler.Complete)
	sessionGroup.POST("/:id/answers", rt.sessionHandler.SubmitAnswer)
	sessionGroup.POST("/:id/answers/audio", rt.sessionHandler.SubmitAudioAnswer)

	g.GET("/attempts/:id", rt.sessionHandler.GetAttempt)
	g.POST("/resume/score", rt.sessionHandler.ScoreResume)
}

func (rt *Router) setupSystemRoutes(g *echo.Group) {
	systemGroup := g.Group("/system")
	systemGroup.GET("/keys", rt.systemHandler.KeyHealth)
	systemGroup.GET("/storage", rt.systemHandler.StorageInfo)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
