package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
	"github.com/SAP-F-2025/quiz-selection-service/internal/validator"
)

func TestSelectionHandler_SelectQuestions(t *testing.T) {
	sm := newStubServiceManager()
	var gotCount *int
	var gotExclude []uint
	var gotCriteria map[string]interface{}
	sm.selection.selectFn = func(raw map[string]interface{}, count *int, exclude []uint) (*models.SelectionResult, error) {
		gotCriteria, gotCount, gotExclude = raw, count, exclude
		return &models.SelectionResult{
			Questions:    []*models.Question{{ID: 7}, {ID: 3}},
			IsFallback:   true,
			FallbackStep: "drop_source",
		}, nil
	}
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodPost, "/api/v1/selection/select",
		`{"criteria":{"domain":"Biology"},"count":2,"exclude_ids":[1,2]}`, "student-1", models.RoleStudent)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Biology", gotCriteria["domain"])
	require.NotNil(t, gotCount)
	assert.Equal(t, 2, *gotCount)
	assert.Equal(t, []uint{1, 2}, gotExclude)

	var result models.SelectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []uint{7, 3}, result.QuestionIDs())
	assert.True(t, result.IsFallback)
	assert.Equal(t, "drop_source", result.FallbackStep)
}

func TestSelectionHandler_SelectQuestionsErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "malformed body", body: `{"criteria":`, wantCode: http.StatusBadRequest},
		{name: "invalid criteria", body: `{}`, err: validator.ValidationErrors{{Field: "num_questions", Message: "must be at most 100"}}, wantCode: http.StatusBadRequest},
		{name: "nothing matches", body: `{}`, err: &services.NoQuestionsAvailableError{}, wantCode: http.StatusNotFound},
		{name: "repository failure", body: `{}`, err: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := newStubServiceManager()
			sm.selection.selectFn = func(raw map[string]interface{}, count *int, exclude []uint) (*models.SelectionResult, error) {
				assert.NotNil(t, raw, "criteria default to an empty map")
				return nil, tt.err
			}

			rec := doRequest(newTestRouter(sm), http.MethodPost, "/api/v1/selection/select", tt.body, "student-1", models.RoleStudent)
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestSelectionHandler_RequiresAuthentication(t *testing.T) {
	rec := doRequest(newTestRouter(newStubServiceManager()), http.MethodPost, "/api/v1/selection/select", `{}`, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSelectionHandler_PreviewSelection(t *testing.T) {
	sm := newStubServiceManager()
	sm.selection.previewFn = func(raw map[string]interface{}, limit int) (*models.PreviewResult, error) {
		assert.Equal(t, 8, limit)
		return &models.PreviewResult{TotalMatching: 42, SampleQuestions: []*models.Question{}}, nil
	}

	rec := doRequest(newTestRouter(sm), http.MethodPost, "/api/v1/selection/preview", `{"criteria":{},"limit":8}`, "teacher-1", models.RoleTeacher)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_matching":42,"sample_questions":[],"criteria":null}`, rec.Body.String())
}

func TestSelectionHandler_ValidateUniqueness(t *testing.T) {
	sm := newStubServiceManager()
	sm.selection.uniquenessFn = func(selected []uint, attemptID *uint) (*models.UniquenessResult, error) {
		if attemptID != nil && *attemptID == 404 {
			return nil, services.ErrAttemptNotFound
		}
		return &models.UniquenessResult{IsValid: false, Duplicates: []uint{4}}, nil
	}
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodPost, "/api/v1/selection/validate-uniqueness", `{"selected":[4,4,5]}`, "student-1", models.RoleStudent)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_valid":false,"duplicates":[4]}`, rec.Body.String())

	rec = doRequest(router, http.MethodPost, "/api/v1/selection/validate-uniqueness", `{"selected":[1],"attempt_id":404}`, "student-1", models.RoleStudent)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/v1/selection/validate-uniqueness", `{}`, "student-1", models.RoleStudent)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectionHandler_CriteriaStats(t *testing.T) {
	sm := newStubServiceManager()
	sm.selection.statsFn = func() ([]models.CriteriaStat, error) {
		return []models.CriteriaStat{{Domain: "Biology", Subject: "Cells", Source: "OpenStax", DifficultyLevel: models.DifficultyEasy, Count: 12}}, nil
	}
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodGet, "/api/v1/selection/criteria-stats", "", "student-1", models.RoleStudent)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats []models.CriteriaStat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 1)
	assert.EqualValues(t, 12, stats[0].Count)

	t.Run("invalidation is admin only", func(t *testing.T) {
		rec := doRequest(router, http.MethodDelete, "/api/v1/selection/criteria-stats", "", "teacher-1", models.RoleTeacher)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, sm.selection.invalidated)

		rec = doRequest(router, http.MethodDelete, "/api/v1/selection/criteria-stats", "", "admin-1", models.RoleAdmin)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, sm.selection.invalidated)
	})
}

func TestSelectionHandler_ExportCriteriaStats(t *testing.T) {
	sm := newStubServiceManager()
	sm.export.data = []byte("PK\x03\x04workbook")
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodGet, "/api/v1/selection/criteria-stats/export", "", "teacher-1", models.RoleTeacher)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="criteria-stats.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, sm.export.data, rec.Body.Bytes())

	rec = doRequest(router, http.MethodGet, "/api/v1/selection/criteria-stats/export", "", "student-1", models.RoleStudent)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
