package postgres

import (
	"gorm.io/gorm"

	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

// applyBankScope restricts a query to reusable bank questions
func applyBankScope(query *gorm.DB) *gorm.DB {
	return query.Where("quiz_id IS NULL")
}

// applyQuestionFilters applies the equality filters and exclusions on top of the bank scope
func applyQuestionFilters(query *gorm.DB, filters repositories.QuestionFilters) *gorm.DB {
	query = applyBankScope(query)

	if filters.Domain != nil {
		query = query.Where("domain = ?", *filters.Domain)
	}
	if filters.Subject != nil {
		query = query.Where("subject = ?", *filters.Subject)
	}
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}
	if filters.DifficultyLevel != nil {
		query = query.Where("difficulty_level = ?", *filters.DifficultyLevel)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if len(filters.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filters.ExcludeIDs)
	}
	return query
}
