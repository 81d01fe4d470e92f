package models

import (
	"slices"
)

type GameFormat string

const (
	GameFormatTraditional    GameFormat = "traditional"
	GameFormatHangman        GameFormat = "hangman"
	GameFormatKnowledgeTower GameFormat = "knowledge_tower"
	GameFormatWordLadder     GameFormat = "word_ladder"
	GameFormatMemoryGrid     GameFormat = "memory_grid"
)

var GameFormats = []GameFormat{
	GameFormatTraditional,
	GameFormatHangman,
	GameFormatKnowledgeTower,
	GameFormatWordLadder,
	GameFormatMemoryGrid,
}

const (
	DefaultNumQuestions = 10
	MinNumQuestions     = 1
	MaxNumQuestions     = 50
	DefaultGameFormat   = GameFormatHangman
)

// Criteria is the validated, sparse selection request. A nil filter field
// means "no constraint". Build it through validator.CriteriaValidator.
type Criteria struct {
	Domain             *string          `json:"domain,omitempty" validate:"omitempty,max=100"`
	Subject            *string          `json:"subject,omitempty" validate:"omitempty,max=100"`
	Source             *string          `json:"source,omitempty" validate:"omitempty,max=100"`
	DifficultyLevel    *DifficultyLevel `json:"difficulty_level,omitempty" validate:"omitempty,difficulty_level"`
	Type               *QuestionType    `json:"type,omitempty" validate:"omitempty,question_type"`
	GameFormat         GameFormat       `json:"game_format" validate:"required,game_format"`
	NumQuestions       int              `json:"num_questions" validate:"min=1,max=50"`
	RandomSeed         *int64           `json:"random_seed,omitempty"`
	ExcludeQuestionIDs []uint           `json:"exclude_question_ids,omitempty" validate:"omitempty,dive,min=1"`
}

// Clone returns a deep copy so relaxations never alias the caller's criteria.
func (c *Criteria) Clone() *Criteria {
	if c == nil {
		return nil
	}
	out := &Criteria{
		GameFormat:         c.GameFormat,
		NumQuestions:       c.NumQuestions,
		ExcludeQuestionIDs: slices.Clone(c.ExcludeQuestionIDs),
	}
	out.Domain = clonePtr(c.Domain)
	out.Subject = clonePtr(c.Subject)
	out.Source = clonePtr(c.Source)
	out.DifficultyLevel = clonePtr(c.DifficultyLevel)
	out.Type = clonePtr(c.Type)
	out.RandomSeed = clonePtr(c.RandomSeed)
	return out
}

// SameFilters reports whether both criteria constrain the bank identically.
// Presentation fields (format, count, seed) are ignored.
func (c *Criteria) SameFilters(other *Criteria) bool {
	if c == nil || other == nil {
		return c == other
	}
	return equalPtr(c.Domain, other.Domain) &&
		equalPtr(c.Subject, other.Subject) &&
		equalPtr(c.Source, other.Source) &&
		equalPtr(c.DifficultyLevel, other.DifficultyLevel) &&
		equalPtr(c.Type, other.Type)
}

// HasFilters reports whether any bank filter is set.
func (c *Criteria) HasFilters() bool {
	return c.Domain != nil || c.Subject != nil || c.Source != nil || c.DifficultyLevel != nil || c.Type != nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
