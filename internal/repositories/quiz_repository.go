package repositories

import (
	"context"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"gorm.io/gorm"
)

// QuizRepository persists assembled quizzes and their question associations
type QuizRepository interface {
	Create(ctx context.Context, tx *gorm.DB, quiz *models.Quiz) error
	CreateQuestions(ctx context.Context, tx *gorm.DB, associations []*models.QuizQuestion) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Quiz, error)
	GetQuestions(ctx context.Context, tx *gorm.DB, quizID uint) ([]*models.QuizQuestion, error) // question_number order
	Deactivate(ctx context.Context, tx *gorm.DB, id uint) error
}
