package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	Essay          QuestionType = "essay"
	FillInBlank    QuestionType = "fill_blank"
	Matching       QuestionType = "matching"
	Ordering       QuestionType = "ordering"
	ShortAnswer    QuestionType = "short_answer"
)

// QuestionTypes lists every accepted question type.
var QuestionTypes = []QuestionType{MultipleChoice, TrueFalse, Essay, FillInBlank, Matching, Ordering, ShortAnswer}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "Easy"
	DifficultyMedium DifficultyLevel = "Medium"
	DifficultyHard   DifficultyLevel = "Hard"
)

var DifficultyLevels = []DifficultyLevel{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is a row of the shared question bank. Rows with a non-nil QuizID
// belong to a fixed, hand-curated quiz and are never picked dynamically.
type Question struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Domain          string          `json:"domain" gorm:"size:100;index:idx_questions_criteria,priority:1"`
	Subject         string          `json:"subject" gorm:"size:100;index:idx_questions_criteria,priority:2"`
	Source          string          `json:"source" gorm:"size:100;index:idx_questions_criteria,priority:3"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" gorm:"size:20;default:Medium;index:idx_questions_criteria,priority:4"`
	Type            QuestionType    `json:"type" gorm:"size:30;not null;index"`
	QuestionText    string          `json:"question_text" gorm:"type:text;not null"`

	// Type-specific payload
	Options       datatypes.JSON `json:"options,omitempty" gorm:"type:jsonb"`
	CorrectAnswer datatypes.JSON `json:"correct_answer,omitempty" gorm:"type:jsonb"`
	Pairs         datatypes.JSON `json:"pairs,omitempty" gorm:"type:jsonb"`
	OrderingItems datatypes.JSON `json:"ordering_items,omitempty" gorm:"type:jsonb"`
	Explanation   *string        `json:"explanation,omitempty" gorm:"type:text"`

	QuizID *uint `json:"quiz_id,omitempty" gorm:"index"`

	CreatedBy string    `json:"created_by" gorm:"size:255;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

// IsBankQuestion reports whether the question is eligible for dynamic selection.
func (q *Question) IsBankQuestion() bool {
	return q.QuizID == nil
}
