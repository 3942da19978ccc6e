package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/validator"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/adapter/handler"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/adapter/repository"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/cache"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/database"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/external/assemblyai"
	httpmw "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/http/middleware"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/storage"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/acoustic"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/grammar"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/similarity"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/usecase/feedback"
	interviewuse "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/usecase/interview"
	questionuse "github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/usecase/question"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/config"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/jwt"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/keypool"
)

// @title           AI Interview Assistant API
// @version         1.0
// @description     API for practicing interview answers with automated scoring and feedback

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// transcriberAdapter bridges the AssemblyAI client to the interview usecase.
type transcriberAdapter struct {
	client *assemblyai.Client
}

func (t *transcriberAdapter) TranscribeReader(ctx context.Context, r io.Reader) (*interviewuse.TranscriptionResult, error) {
	result, err := t.client.TranscribeReader(ctx, r)
	if err != nil {
		return nil, err
	}
	return &interviewuse.TranscriptionResult{
		Text:            result.Text,
		DurationSeconds: result.DurationSeconds,
	}, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.GetAllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache; the in-memory store keeps single-node deployments
	// working when Redis is unreachable.
	log.Println("📦 Connecting to Redis...")
	var store cache.Store
	redisStore, err := cache.NewRedisStore(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory cache", err)
		store = cache.NewMemoryStore()
	} else {
		store = redisStore
	}
	defer store.Close()

	// Initialize object storage (optional)
	log.Println("🗄️  Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable (%v), audio archiving disabled", err)
		minioClient = nil
	}

	// Initialize Gemini key pool (optional)
	var pool *keypool.Pool
	if keys := cfg.GetGeminiAPIKeys(); len(keys) > 0 {
		pool, err = keypool.New(keys)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini key pool: %v", err)
		}
		log.Printf("🔑 Gemini key pool ready with %d key(s)", len(keys))
	} else {
		log.Println("⚠️  No Gemini API keys configured; LLM feedback disabled, lexical fallbacks in use")
	}

	// Initialize scoring engine
	log.Println("🧮 Initializing scoring engine...")
	var simBackend similarity.Backend = similarity.NewJaccard()
	if keys := cfg.GetGeminiAPIKeys(); len(keys) > 0 {
		embedder, err := similarity.NewGeminiEmbedder(keys[0], cfg.Gemini.EmbeddingModel)
		if err != nil {
			log.Printf("⚠️  Gemini embedder unavailable (%v), using lexical similarity", err)
		} else {
			simBackend = similarity.NewFallback(embedder, similarity.NewJaccard())
		}
	}

	var gramBackend grammar.Backend = grammar.NewHeuristic()
	if cfg.Grammar.LanguageToolURL != "" {
		gramBackend = grammar.NewFallback(grammar.NewLanguageTool(cfg.Grammar.LanguageToolURL), grammar.NewHeuristic())
	}

	engine := scoring.NewEngine(simBackend, gramBackend, acoustic.NewAnalyzer(), logger)

	// Initialize transcription (optional)
	var transcriber interviewuse.Transcriber
	if cfg.Transcription.AssemblyAIKey != "" {
		log.Println("🎙️  Initializing AssemblyAI transcription...")
		transcriber = &transcriberAdapter{client: assemblyai.NewClient(cfg.Transcription.AssemblyAIKey, logger)}
	} else {
		log.Println("⚠️  No AssemblyAI key configured; audio answers require a client transcript")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	questionRepo := repository.NewQuestionRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	// Initialize services
	log.Println("🤖 Initializing services...")
	feedbackService := feedback.NewService(pool, cfg.Gemini.Model, logger)
	questionService := questionuse.NewService(questionRepo, store, logger)

	var audioStore interviewuse.AudioStore
	if minioClient != nil {
		audioStore = minioClient
	}
	interviewService := interviewuse.NewService(
		sessionRepo,
		attemptRepo,
		questionRepo,
		engine,
		feedbackService,
		transcriber,
		audioStore,
		logger,
	)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	expiry, err := time.ParseDuration(cfg.JWT.Expiry)
	if err != nil {
		log.Fatalf("Invalid JWT_EXPIRY: %v", err)
	}
	jwtManager := jwt.NewManager(cfg.JWT.Secret, expiry)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	questionHandler := handler.NewQuestionHandler(questionService, logger)
	sessionHandler := handler.NewSessionHandler(interviewService, logger)
	systemHandler := handler.NewSystemHandler(minioClient, pool, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authMW := httpmw.NewAuthMiddleware(jwtManager)
	router := handler.NewRouter(cfg, questionHandler, sessionHandler, systemHandler, authMW.Authenticate)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
