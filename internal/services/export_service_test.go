package services

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExportService_ExportCriteriaStats(t *testing.T) {
	repo := newFakeRepository(
		bankQuestion(1, "ComputerScience", "Algorithms", "CLRS", models.DifficultyEasy, models.MultipleChoice),
		bankQuestion(2, "ComputerScience", "Algorithms", "CLRS", models.DifficultyEasy, models.TrueFalse),
	)
	deps := newTestDependencies(repo)
	selection := NewSelectionService(deps, DefaultSelectionConfig())
	export := NewExportService(selection, NewQuizService(deps), discardLogger())

	data, err := export.ExportCriteriaStats(context.Background())
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{statsSheet}, f.GetSheetList())

	rows, err := f.GetRows(statsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Domain", "Subject", "Source", "Difficulty", "Questions"},
		{"ComputerScience", "Algorithms", "CLRS", "Easy", "2"},
	}, rows)
}

func TestExportService_ExportQuiz(t *testing.T) {
	repo := newFakeRepository(uniformBank(6, "Mathematics", "Algebra", "Khan", models.DifficultyMedium)...)
	deps := newTestDependencies(repo)
	quizzes := NewQuizService(deps)
	export := NewExportService(NewSelectionService(deps, DefaultSelectionConfig()), quizzes, discardLogger())

	quiz := generateTestQuiz(t, quizzes, map[string]interface{}{"num_questions": 4, "random_seed": 5})

	data, err := export.ExportQuiz(context.Background(), quiz.ID)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{quizSheet, questionsSheet}, f.GetSheetList())

	summary, err := f.GetRows(quizSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", quiz.Title}, summary[0])
	assert.Equal(t, []string{"Random seed", "5"}, summary[len(summary)-1])

	rows, err := f.GetRows(questionsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Question ID", rows[0][1])
	for i, q := range quiz.OrderedQuestions {
		assert.Equal(t, strconv.Itoa(i+1), rows[i+1][0])
		assert.Equal(t, strconv.FormatUint(uint64(q.ID), 10), rows[i+1][1])
		assert.Equal(t, "Mathematics", rows[i+1][2])
	}

	_, err = export.ExportQuiz(context.Background(), 999)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}
