package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Create(ctx context.Context, tx *gorm.DB, attempt *models.QuizAttempt) error {
	db := a.getDB(tx)
	if attempt.StartedAt.IsZero() {
		attempt.StartedAt = time.Now()
	}
	if attempt.Status == "" {
		attempt.Status = models.AttemptInProgress
	}
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

func (a *AttemptPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizAttempt, error) {
	db := a.getDB(tx)
	var attempt models.QuizAttempt
	if err := db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NotFound("attempt", id)
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizAttempt, error) {
	db := a.getDB(tx)
	var attempt models.QuizAttempt
	if err := db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&attempt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NotFound("attempt", id)
		}
		return nil, fmt.Errorf("failed to lock attempt: %w", err)
	}
	return &attempt, nil
}

// AppendSelectedQuestions adds ids to the attempt's selected list under a row lock
func (a *AttemptPostgreSQL) AppendSelectedQuestions(ctx context.Context, tx *gorm.DB, id uint, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}

	return a.getDB(tx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attempt models.QuizAttempt
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&attempt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repositories.NotFound("attempt", id)
			}
			return fmt.Errorf("failed to lock attempt: %w", err)
		}

		selected := append(attempt.SelectedQuestions, questionIDs...)
		if err := tx.Model(&attempt).Update("selected_questions", selected).Error; err != nil {
			return fmt.Errorf("failed to append selected questions: %w", err)
		}
		return nil
	})
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (a *AttemptPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return a.db
}
