package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// ===== SELECTION QUERIES =====

// Count returns how many bank questions match the filters
func (q *QuestionPostgreSQL) Count(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters) (int64, error) {
	db := q.getDB(tx)
	var count int64
	query := applyQuestionFilters(db.WithContext(ctx).Model(&models.Question{}), filters)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// SelectRandom returns up to limit matching questions in database-random order
func (q *QuestionPostgreSQL) SelectRandom(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters, limit int) ([]*models.Question, error) {
	if limit <= 0 {
		return []*models.Question{}, nil
	}

	db := q.getDB(tx)
	var questions []*models.Question
	query := applyQuestionFilters(db.WithContext(ctx).Model(&models.Question{}), filters)
	if err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to select random questions: %w", err)
	}
	return questions, nil
}

// SelectAll returns every matching question in database-random order
func (q *QuestionPostgreSQL) SelectAll(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters) ([]*models.Question, error) {
	db := q.getDB(tx)
	var questions []*models.Question
	query := applyQuestionFilters(db.WithContext(ctx).Model(&models.Question{}), filters)
	if err := query.Order("RANDOM()").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to select questions: %w", err)
	}
	return questions, nil
}

// ByIDs loads questions keyed by id; missing ids are simply absent from the map
func (q *QuestionPostgreSQL) ByIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]*models.Question, error) {
	result := make(map[uint]*models.Question, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	db := q.getDB(tx)
	var questions []*models.Question
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get questions by IDs: %w", err)
	}

	for _, question := range questions {
		result[question.ID] = question
	}
	return result, nil
}

// ===== ASSEMBLY QUERIES =====

// ListAvailable returns every matching question in id order
func (q *QuestionPostgreSQL) ListAvailable(ctx context.Context, tx *gorm.DB, filters repositories.QuestionFilters) ([]*models.Question, error) {
	db := q.getDB(tx)
	var questions []*models.Question
	query := applyQuestionFilters(db.WithContext(ctx).Model(&models.Question{}), filters)
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list available questions: %w", err)
	}
	return questions, nil
}

// CountBank returns the size of the whole bank, ignoring all filters
func (q *QuestionPostgreSQL) CountBank(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := q.getDB(tx)
	var count int64
	if err := applyBankScope(db.WithContext(ctx).Model(&models.Question{})).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bank questions: %w", err)
	}
	return count, nil
}

// ===== STATISTICS =====

// CriteriaStats groups the bank by domain, subject, source and difficulty
func (q *QuestionPostgreSQL) CriteriaStats(ctx context.Context, tx *gorm.DB) ([]models.CriteriaStat, error) {
	db := q.getDB(tx)
	var stats []models.CriteriaStat
	err := applyBankScope(db.WithContext(ctx).Model(&models.Question{})).
		Select("domain, subject, source, difficulty_level, COUNT(*) AS count").
		Group("domain, subject, source, difficulty_level").
		Order("domain, subject, source, difficulty_level").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get criteria stats: %w", err)
	}
	return stats, nil
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (q *QuestionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return q.db
}
