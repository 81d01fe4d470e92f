package models

import (
	"time"

	"gorm.io/datatypes"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
	AttemptAbandoned  AttemptStatus = "abandoned"
)

// QuizAttempt is owned by the game runtime. The selection engine only reads
// SelectedQuestions to keep a session free of repeats.
type QuizAttempt struct {
	ID                uint                      `json:"id" gorm:"primaryKey"`
	QuizID            *uint                     `json:"quiz_id,omitempty" gorm:"index"`
	UserID            string                    `json:"user_id" gorm:"not null;size:255;index"`
	Status            AttemptStatus             `json:"status" gorm:"size:20;default:in_progress;index"`
	SelectedQuestions datatypes.JSONSlice[uint] `json:"selected_questions" gorm:"type:jsonb"`

	StartedAt time.Time `json:"started_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) IsActive() bool {
	return a.Status == AttemptInProgress
}
