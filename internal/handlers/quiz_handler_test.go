package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
)

func TestQuizHandler_GenerateQuiz(t *testing.T) {
	sm := newStubServiceManager()
	sm.quiz.generateFn = func(req *services.GenerateQuizRequest, requesterID string) (*services.QuizResponse, error) {
		assert.Equal(t, "teacher-1", requesterID)
		require.NotNil(t, req.Title)
		assert.Equal(t, "Cells", *req.Title)
		assert.Equal(t, "hangman", req.Criteria["game_format"])
		return &services.QuizResponse{
			Quiz:             &models.Quiz{ID: 9, Title: *req.Title, GameFormat: models.GameFormatHangman, IsActive: true},
			OrderedQuestions: []*models.Question{{ID: 2}, {ID: 5}},
		}, nil
	}
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodPost, "/api/v1/quizzes", `{"criteria":{"game_format":"hangman"},"title":"Cells"}`, "teacher-1", models.RoleTeacher)
	require.Equal(t, http.StatusCreated, rec.Code)

	var quiz services.QuizResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quiz))
	assert.EqualValues(t, 9, quiz.ID)
	assert.Len(t, quiz.OrderedQuestions, 2)

	t.Run("students cannot generate", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/api/v1/quizzes", `{"criteria":{}}`, "student-1", models.RoleStudent)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestQuizHandler_GenerateQuizErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not enough questions",
			err:      &services.InsufficientQuestionsError{Available: 3, Requested: 10},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"message":"Not enough questions match the criteria","details":{"available":3,"requested":10}}`,
		},
		{
			name:     "empty bank",
			err:      &services.NoQuestionsAvailableError{},
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"No questions available","details":{}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := newStubServiceManager()
			sm.quiz.generateFn = func(req *services.GenerateQuizRequest, requesterID string) (*services.QuizResponse, error) {
				return nil, tt.err
			}

			rec := doRequest(newTestRouter(sm), http.MethodPost, "/api/v1/quizzes", `{}`, "admin-1", models.RoleAdmin)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestQuizHandler_GetQuiz(t *testing.T) {
	sm := newStubServiceManager()
	sm.quiz.getFn = func(id uint) (*services.QuizResponse, error) {
		if id != 9 {
			return nil, services.ErrQuizNotFound
		}
		return &services.QuizResponse{Quiz: &models.Quiz{ID: 9}}, nil
	}
	router := newTestRouter(sm)

	tests := []struct {
		path     string
		wantCode int
	}{
		{path: "/api/v1/quizzes/9", wantCode: http.StatusOK},
		{path: "/api/v1/quizzes/10", wantCode: http.StatusNotFound},
		{path: "/api/v1/quizzes/abc", wantCode: http.StatusBadRequest},
		{path: "/api/v1/quizzes/0", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(router, http.MethodGet, tt.path, "", "student-1", models.RoleStudent)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestQuizHandler_DeactivateQuiz(t *testing.T) {
	sm := newStubServiceManager()
	sm.quiz.deactivateFn = func(id uint, requesterID string) error {
		switch requesterID {
		case "teacher-1":
			return nil
		case "teacher-2":
			return services.NewPermissionError(requesterID, id, "quiz", "deactivate", "not the quiz owner")
		default:
			return services.ErrQuizInactive
		}
	}
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodDelete, "/api/v1/quizzes/4", "", "teacher-1", models.RoleTeacher)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/quizzes/4", "", "teacher-2", models.RoleTeacher)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Access denied","details":{"resource":"quiz","action":"deactivate","reason":"not the quiz owner"}}`, rec.Body.String())

	rec = doRequest(router, http.MethodDelete, "/api/v1/quizzes/4", "", "admin-1", models.RoleAdmin)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuizHandler_ExportQuiz(t *testing.T) {
	sm := newStubServiceManager()
	sm.export.data = []byte("PK")

	rec := doRequest(newTestRouter(sm), http.MethodGet, "/api/v1/quizzes/12/export", "", "teacher-1", models.RoleTeacher)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="quiz-12.xlsx"`, rec.Header().Get("Content-Disposition"))

	sm.export.err = services.ErrQuizNotFound
	rec = doRequest(newTestRouter(sm), http.MethodGet, "/api/v1/quizzes/12/export", "", "teacher-1", models.RoleTeacher)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizHandler_Attempts(t *testing.T) {
	sm := newStubServiceManager()
	quizID := uint(9)
	sm.quiz.startFn = func(id uint, userID string) (*models.QuizAttempt, error) {
		return &models.QuizAttempt{ID: 31, QuizID: &id, UserID: userID, Status: models.AttemptInProgress, SelectedQuestions: []uint{1, 2}}, nil
	}
	sm.quiz.recordFn = func(attemptID uint, ids []uint) (*models.QuizAttempt, error) {
		if ids[0] == 1 {
			return nil, services.NewBusinessRuleError("unique_attempt_questions", "questions already used in this attempt",
				map[string]interface{}{"duplicates": []uint{1}})
		}
		return &models.QuizAttempt{ID: attemptID, QuizID: &quizID, Status: models.AttemptInProgress, SelectedQuestions: append([]uint{1, 2}, ids...)}, nil
	}
	router := newTestRouter(sm)

	rec := doRequest(router, http.MethodPost, "/api/v1/attempts", `{"quiz_id":9}`, "student-1", models.RoleStudent)
	require.Equal(t, http.StatusCreated, rec.Code)
	var attempt models.QuizAttempt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attempt))
	assert.Equal(t, "student-1", attempt.UserID)
	assert.Equal(t, []uint{1, 2}, []uint(attempt.SelectedQuestions))

	rec = doRequest(router, http.MethodPost, "/api/v1/attempts/31/questions", `{"question_ids":[3]}`, "student-1", models.RoleStudent)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attempt))
	assert.Equal(t, []uint{1, 2, 3}, []uint(attempt.SelectedQuestions))

	rec = doRequest(router, http.MethodPost, "/api/v1/attempts/31/questions", `{"question_ids":[1]}`, "student-1", models.RoleStudent)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"questions already used in this attempt","details":{"rule":"unique_attempt_questions","context":{"duplicates":[1]}}}`, rec.Body.String())

	rec = doRequest(router, http.MethodPost, "/api/v1/attempts/31/questions", `{"question_ids":[]}`, "student-1", models.RoleStudent)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
