package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

// Create inserts the quiz row only; associations go through CreateQuestions
func (q *QuizPostgreSQL) Create(ctx context.Context, tx *gorm.DB, quiz *models.Quiz) error {
	db := q.getDB(tx)
	if err := db.WithContext(ctx).Omit("Questions").Create(quiz).Error; err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// CreateQuestions batch-inserts quiz/question associations
func (q *QuizPostgreSQL) CreateQuestions(ctx context.Context, tx *gorm.DB, associations []*models.QuizQuestion) error {
	if len(associations) == 0 {
		return nil
	}

	db := q.getDB(tx)
	if err := db.WithContext(ctx).Omit("Question").CreateInBatches(associations, 100).Error; err != nil {
		return fmt.Errorf("failed to create quiz questions: %w", err)
	}
	return nil
}

func (q *QuizPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Quiz, error) {
	db := q.getDB(tx)
	var quiz models.Quiz
	if err := db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NotFound("quiz", id)
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return &quiz, nil
}

// GetQuestions returns the associations in presentation order
func (q *QuizPostgreSQL) GetQuestions(ctx context.Context, tx *gorm.DB, quizID uint) ([]*models.QuizQuestion, error) {
	db := q.getDB(tx)
	var associations []*models.QuizQuestion
	if err := db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("question_number ASC").
		Find(&associations).Error; err != nil {
		return nil, fmt.Errorf("failed to get quiz questions: %w", err)
	}
	return associations, nil
}

// Deactivate soft-deletes a quiz; its rows are kept
func (q *QuizPostgreSQL) Deactivate(ctx context.Context, tx *gorm.DB, id uint) error {
	db := q.getDB(tx)
	result := db.WithContext(ctx).Model(&models.Quiz{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate quiz: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.NotFound("quiz", id)
	}
	return nil
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (q *QuizPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return q.db
}
