package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quiz is created once by the assembler and only ever soft-deactivated afterwards.
type Quiz struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Title         string         `json:"title" gorm:"not null;size:200"`
	Description   string         `json:"description" gorm:"type:text"`
	GameFormat    GameFormat     `json:"game_format" gorm:"size:30;not null;index"`
	GameOptions   datatypes.JSON `json:"game_options" gorm:"type:jsonb"`
	Criteria      datatypes.JSON `json:"criteria" gorm:"type:jsonb"` // effective criteria, kept for reproducibility
	QuestionCount int            `json:"question_count" gorm:"not null"`
	RandomSeed    *int64         `json:"random_seed,omitempty"`
	IsActive      bool           `json:"is_active" gorm:"not null;default:true;index"`

	CreatedBy string    `json:"created_by" gorm:"not null;size:255;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion binds a bank question to a quiz with its presentation order.
type QuizQuestion struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	QuizID         uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_question;uniqueIndex:idx_quiz_question_number,priority:1"`
	QuestionID     uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_quiz_question;index"`
	QuestionNumber int       `json:"question_number" gorm:"not null;uniqueIndex:idx_quiz_question_number,priority:2"`
	CreatedAt      time.Time `json:"created_at"`

	Question *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// HangmanOptions, KnowledgeTowerOptions and MemoryGridOptions are the
// per-format game_options payloads.
type HangmanOptions struct {
	MaxAttempts int  `json:"maxAttempts"`
	ShowHints   bool `json:"showHints"`
}

type KnowledgeTowerOptions struct {
	LevelsRequired int `json:"levelsRequired"`
}

type MemoryGridOptions struct {
	GridSize int `json:"gridSize"`
}
