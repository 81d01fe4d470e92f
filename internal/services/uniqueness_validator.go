package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

// UniquenessValidator reports overlap between a new selection and the
// questions an attempt has already seen. It never mutates the attempt.
type UniquenessValidator struct {
	attempts repositories.AttemptRepository
}

func NewUniquenessValidator(attempts repositories.AttemptRepository) *UniquenessValidator {
	return &UniquenessValidator{attempts: attempts}
}

func (v *UniquenessValidator) Check(ctx context.Context, selected []uint, attemptID *uint) (*models.UniquenessResult, error) {
	if attemptID == nil {
		return &models.UniquenessResult{IsValid: true, Duplicates: []uint{}}, nil
	}

	attempt, err := v.attempts.GetByID(ctx, nil, *attemptID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %d", ErrAttemptNotFound, *attemptID)
		}
		return nil, fmt.Errorf("failed to load attempt: %w", err)
	}

	duplicates := findDuplicates(selected, attempt.SelectedQuestions)
	return &models.UniquenessResult{
		IsValid:    len(duplicates) == 0,
		Duplicates: duplicates,
	}, nil
}

// findDuplicates returns the ids of selected already present in previous,
// in selected order and without repeats
func findDuplicates(selected, previous []uint) []uint {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	duplicates := []uint{}
	reported := make(map[uint]struct{})
	for _, id := range selected {
		if _, ok := seen[id]; !ok {
			continue
		}
		if _, ok := reported[id]; ok {
			continue
		}
		reported[id] = struct{}{}
		duplicates = append(duplicates, id)
	}
	return duplicates
}
