package repositories

import (
	"context"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"gorm.io/gorm"
)

// QuestionRepository is the read-only query interface over the question bank
type QuestionRepository interface {
	// Selection queries
	Count(ctx context.Context, tx *gorm.DB, filters QuestionFilters) (int64, error)
	SelectRandom(ctx context.Context, tx *gorm.DB, filters QuestionFilters, limit int) ([]*models.Question, error)
	SelectAll(ctx context.Context, tx *gorm.DB, filters QuestionFilters) ([]*models.Question, error) // random order
	ByIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]*models.Question, error)

	// Assembly queries
	ListAvailable(ctx context.Context, tx *gorm.DB, filters QuestionFilters) ([]*models.Question, error) // id order
	CountBank(ctx context.Context, tx *gorm.DB) (int64, error)

	// Statistics
	CriteriaStats(ctx context.Context, tx *gorm.DB) ([]models.CriteriaStat, error)
}
