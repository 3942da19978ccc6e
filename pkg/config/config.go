package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Storage       StorageConfig
	JWT           JWTConfig
	Gemini        GeminiConfig
	Transcription TranscriptionConfig
	Grammar       GrammarConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"interview_assistant"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	AudioBucket     string `envconfig:"STORAGE_BUCKET_AUDIO" default:"audio-recordings"`
	ResumeBucket    string `envconfig:"STORAGE_BUCKET_RESUMES" default:"resumes"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	Expiry string `envconfig:"JWT_EXPIRY" default:"24h"`
}

// GeminiConfig holds Gemini API configuration. Multiple keys may be supplied
// comma-separated for quota rotation.
type GeminiConfig struct {
	APIKeys        string `envconfig:"GEMINI_API_KEYS" default:""`
	Model          string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	EmbeddingModel string `envconfig:"GEMINI_EMBEDDING_MODEL" default:"gemini-embedding-001"`
}

// TranscriptionConfig holds speech-to-text configuration
type TranscriptionConfig struct {
	AssemblyAIKey string `envconfig:"ASSEMBLYAI_API_KEY" default:""`
}

// GrammarConfig holds grammar checker configuration
type GrammarConfig struct {
	LanguageToolURL string `envconfig:"LANGUAGETOOL_URL" default:""`
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration. Scoring weights are checked here so a
// bad weight table aborts startup instead of skewing every evaluation.
func (c *Config) Validate() error {
	if err := scoring.ValidateWeights(); err != nil {
		return err
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetAllowedOrigins parses the comma-separated CORS origin list.
func (c *Config) GetAllowedOrigins() []string {
	return splitAndTrim(c.Server.AllowedOrigins)
}

// GetGeminiAPIKeys parses the comma-separated API key list.
func (c *Config) GetGeminiAPIKeys() []string {
	return splitAndTrim(c.Gemini.APIKeys)
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
