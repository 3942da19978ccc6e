package main

import (
	"log"

	"gorm.io/datatypes"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/database"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/config"
)

// Seeds a starter question pool for local development.
func main() {
	log.Println("🚀 Seeding question pool...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	questions := []entities.Question{
		{
			Text:             "Tell me about yourself and your background.",
			IdealAnswer:      "A concise walk through relevant experience, key accomplishments, and why this role is the next logical step.",
			Keywords:         datatypes.NewJSONSlice([]string{"experience", "background", "skills", "motivation"}),
			Category:         entities.CategoryGeneral,
			Difficulty:       entities.DifficultyEasy,
			TimeLimitSeconds: 120,
		},
		{
			Text:             "Describe a time you disagreed with a teammate. How did you resolve it?",
			IdealAnswer:      "A specific situation, the competing positions, how the disagreement was surfaced constructively, and the outcome with what was learned.",
			Keywords:         datatypes.NewJSONSlice([]string{"conflict", "communication", "compromise", "outcome"}),
			Category:         entities.CategoryBehavioral,
			Difficulty:       entities.DifficultyMedium,
			TimeLimitSeconds: 150,
		},
		{
			Text:             "How would you reduce the latency of a slow API endpoint?",
			IdealAnswer:      "Measure first with profiling and tracing, then attack the dominant cost: query optimization, caching, connection pooling, payload trimming, or moving work off the request path.",
			Keywords:         datatypes.NewJSONSlice([]string{"profiling", "caching", "database", "indexing", "latency"}),
			Category:         entities.CategoryTechnical,
			Domain:           "backend",
			Difficulty:       entities.DifficultyMedium,
			TimeLimitSeconds: 180,
		},
		{
			Text:             "How do you prioritize work when everything is urgent?",
			IdealAnswer:      "Clarify impact and deadlines with stakeholders, sequence by business value and dependency, communicate tradeoffs explicitly, and protect the team from thrash.",
			Keywords:         datatypes.NewJSONSlice([]string{"prioritization", "stakeholders", "impact", "tradeoffs"}),
			Category:         entities.CategoryManagement,
			Difficulty:       entities.DifficultyMedium,
			TimeLimitSeconds: 150,
		},
		{
			Text:             "A production deployment just broke checkout for all users. Walk me through your first fifteen minutes.",
			IdealAnswer:      "Declare the incident, roll back the deploy immediately, verify recovery with monitoring, communicate status, and only then dig into root cause.",
			Keywords:         datatypes.NewJSONSlice([]string{"incident", "rollback", "monitoring", "communication", "root cause"}),
			Category:         entities.CategorySituational,
			Domain:           "backend",
			Difficulty:       entities.DifficultyHard,
			TimeLimitSeconds: 180,
		},
		{
			Text:             "What is your greatest professional achievement?",
			IdealAnswer:      "One concrete achievement framed with the situation, the actions taken personally, and a measurable result.",
			Keywords:         datatypes.NewJSONSlice([]string{"achievement", "impact", "result", "ownership"}),
			Category:         entities.CategoryGeneral,
			Difficulty:       entities.DifficultyEasy,
			TimeLimitSeconds: 120,
		},
	}

	created := 0
	for i := range questions {
		q := questions[i]
		var count int64
		db.Model(&entities.Question{}).Where("text = ?", q.Text).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&q).Error; err != nil {
			log.Fatalf("Failed to create question: %v", err)
		}
		created++
	}

	log.Printf("✅ Seeded %d new question(s)", created)
}
