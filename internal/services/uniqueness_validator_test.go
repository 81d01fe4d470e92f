package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories/mocks"
)

func TestUniquenessValidator_Check(t *testing.T) {
	repo := newFakeRepository()
	attempt := &models.QuizAttempt{UserID: "student-1", Status: models.AttemptInProgress, SelectedQuestions: []uint{3, 5, 8}}
	require.NoError(t, repo.Attempt().Create(context.Background(), nil, attempt))

	v := NewUniquenessValidator(repo.Attempt())

	tests := []struct {
		name       string
		selected   []uint
		attemptID  *uint
		valid      bool
		duplicates []uint
	}{
		{name: "no attempt", selected: []uint{3, 5}, valid: true, duplicates: []uint{}},
		{name: "disjoint", selected: []uint{1, 2}, attemptID: &attempt.ID, valid: true, duplicates: []uint{}},
		{name: "overlap in selected order", selected: []uint{8, 1, 3}, attemptID: &attempt.ID, duplicates: []uint{8, 3}},
		{name: "repeats reported once", selected: []uint{5, 5, 5}, attemptID: &attempt.ID, duplicates: []uint{5}},
		{name: "empty selection", selected: nil, attemptID: &attempt.ID, valid: true, duplicates: []uint{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Check(context.Background(), tt.selected, tt.attemptID)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Equal(t, tt.duplicates, result.Duplicates)
		})
	}

	stored, err := repo.Attempt().GetByID(context.Background(), nil, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 5, 8}, []uint(stored.SelectedQuestions))
}

func TestUniquenessValidator_UnknownAttempt(t *testing.T) {
	v := NewUniquenessValidator(newFakeRepository().Attempt())

	_, err := v.Check(context.Background(), []uint{1}, ptr(uint(404)))
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestUniquenessValidator_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	attempts := mocks.NewMockAttemptRepository(ctrl)
	dbErr := errors.New("timeout")
	attempts.EXPECT().GetByID(gomock.Any(), gomock.Any(), uint(9)).Return(nil, dbErr)

	_, err := NewUniquenessValidator(attempts).Check(context.Background(), []uint{1}, ptr(uint(9)))
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrAttemptNotFound)
}
