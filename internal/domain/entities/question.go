package entities

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionCategory classifies the interview question type
type QuestionCategory string

const (
	CategoryGeneral     QuestionCategory = "general"
	CategoryBehavioral  QuestionCategory = "behavioral"
	CategoryTechnical   QuestionCategory = "technical"
	CategoryManagement  QuestionCategory = "management"
	CategorySituational QuestionCategory = "situational"
)

// QuestionDifficulty is the difficulty level of a question
type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

// Question is immutable reference data supplied by the question pool.
// The scoring pipeline reads it and never mutates it.
type Question struct {
	ID               int                          `json:"id" gorm:"primaryKey;autoIncrement"`
	Text             string                       `json:"text" gorm:"type:text;not null"`
	IdealAnswer      string                       `json:"ideal_answer" gorm:"type:text"`
	Keywords         datatypes.JSONSlice[string]  `json:"keywords" gorm:"type:jsonb"`
	Category         QuestionCategory             `json:"category" gorm:"type:varchar(30);index;default:'general'"`
	Domain           string                       `json:"domain" gorm:"type:varchar(100);index"`
	Difficulty       QuestionDifficulty           `json:"difficulty" gorm:"type:varchar(10);default:'medium'"`
	TimeLimitSeconds int                          `json:"time_limit_seconds" gorm:"default:120"`
	CreatedAt        time.Time                    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time                    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c QuestionCategory) bool {
	switch c {
	case CategoryGeneral, CategoryBehavioral, CategoryTechnical, CategoryManagement, CategorySituational:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the known difficulty levels.
func ValidDifficulty(d QuestionDifficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
