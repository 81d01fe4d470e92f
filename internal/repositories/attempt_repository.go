package repositories

import (
	"context"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"gorm.io/gorm"
)

// AttemptRepository exposes the attempt rows the uniqueness check reads
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *models.QuizAttempt) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizAttempt, error)
	// GetByIDForUpdate reads the attempt and holds a row lock until tx ends
	GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizAttempt, error)
	AppendSelectedQuestions(ctx context.Context, tx *gorm.DB, id uint, questionIDs []uint) error
}
