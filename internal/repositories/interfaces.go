package repositories

import (
	"slices"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// QuestionFilters is the equality filter set applied to bank questions.
// Bank-only restriction (quiz_id IS NULL) is always applied by implementations.
type QuestionFilters struct {
	Domain          *string                 `json:"domain,omitempty"`
	Subject         *string                 `json:"subject,omitempty"`
	Source          *string                 `json:"source,omitempty"`
	DifficultyLevel *models.DifficultyLevel `json:"difficulty_level,omitempty"`
	Type            *models.QuestionType    `json:"type,omitempty"`
	ExcludeIDs      []uint                  `json:"exclude_ids,omitempty"`
}

// NewQuestionFilters projects criteria onto bank filters. Extra exclusions
// are merged with criteria.ExcludeQuestionIDs.
func NewQuestionFilters(criteria *models.Criteria, extraExcludeIDs []uint) QuestionFilters {
	filters := QuestionFilters{
		ExcludeIDs: MergeIDs(nil, extraExcludeIDs),
	}
	if criteria == nil {
		return filters
	}

	filters.Domain = criteria.Domain
	filters.Subject = criteria.Subject
	filters.Source = criteria.Source
	filters.DifficultyLevel = criteria.DifficultyLevel
	filters.Type = criteria.Type
	filters.ExcludeIDs = MergeIDs(criteria.ExcludeQuestionIDs, extraExcludeIDs)
	return filters
}

// Excludes reports whether id is filtered out explicitly.
func (f QuestionFilters) Excludes(id uint) bool {
	_, found := slices.BinarySearch(f.ExcludeIDs, id)
	return found
}

// Matches applies the filters to an in-memory question.
func (f QuestionFilters) Matches(q *models.Question) bool {
	if !q.IsBankQuestion() || f.Excludes(q.ID) {
		return false
	}
	if f.Domain != nil && q.Domain != *f.Domain {
		return false
	}
	if f.Subject != nil && q.Subject != *f.Subject {
		return false
	}
	if f.Source != nil && q.Source != *f.Source {
		return false
	}
	if f.DifficultyLevel != nil && q.DifficultyLevel != *f.DifficultyLevel {
		return false
	}
	if f.Type != nil && q.Type != *f.Type {
		return false
	}
	return true
}

// MergeIDs returns the sorted union of both id sets.
func MergeIDs(a, b []uint) []uint {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make([]uint, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.Sort(merged)
	return slices.Compact(merged)
}
