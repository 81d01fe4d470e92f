package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
	"github.com/SAP-F-2025/quiz-selection-service/internal/utils"
)

type QuizHandler struct {
	BaseHandler
	service services.QuizService
	export  services.ExportService
}

func NewQuizHandler(service services.QuizService, export services.ExportService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		export:      export,
	}
}

// ===== QUIZ ENDPOINTS =====

// GenerateQuiz assembles and stores a quiz from criteria
// @Summary Generate quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body models.GenerateQuizRequest true "Criteria and optional title/description"
// @Success 201 {object} models.QuizResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Question bank is empty"
// @Failure 422 {object} ErrorResponse "Not enough matching questions"
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req models.GenerateQuizRequest
	if !h.bindJSON(c, &req) {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	req.Criteria = criteriaOrEmpty(req.Criteria)

	h.LogRequest(c, "Generating quiz")

	quiz, err := h.service.GenerateQuiz(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// GetQuiz returns a quiz with its questions in presentation order
// @Summary Get quiz
// @Tags quizzes
// @Produce json
// @Param id path uint true "Quiz ID"
// @Success 200 {object} models.QuizResponse
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	quiz, err := h.service.GetQuiz(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeactivateQuiz soft-deletes a quiz
// @Summary Deactivate quiz
// @Tags quizzes
// @Param id path uint true "Quiz ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already inactive"
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeactivateQuiz(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deactivating quiz", "quiz_id", id)

	if err := h.service.DeactivateQuiz(c.Request.Context(), id, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportQuiz downloads the quiz as a spreadsheet
// @Summary Export quiz
// @Tags quizzes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path uint true "Quiz ID"
// @Success 200 {file} file
// @Router /quizzes/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	data, err := h.export.ExportQuiz(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.sendWorkbook(c, fmt.Sprintf("quiz-%d.xlsx", id), data)
}

// ===== ATTEMPT ENDPOINTS =====

// StartAttempt opens an attempt on an active quiz
// @Summary Start attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param request body models.StartAttemptRequest true "Quiz to attempt"
// @Success 201 {object} models.QuizAttempt
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quiz inactive"
// @Router /attempts [post]
func (h *QuizHandler) StartAttempt(c *gin.Context) {
	var req models.StartAttemptRequest
	if !h.bindJSON(c, &req) {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Starting attempt", "quiz_id", req.QuizID)

	attempt, err := h.service.StartAttempt(c.Request.Context(), req.QuizID, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

// RecordAttemptQuestions appends questions served during an attempt
// @Summary Record attempt questions
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path uint true "Attempt ID"
// @Param request body models.RecordAttemptQuestionsRequest true "Question ids"
// @Success 200 {object} models.QuizAttempt
// @Failure 409 {object} ErrorResponse "Question already used in this attempt"
// @Router /attempts/{id}/questions [post]
func (h *QuizHandler) RecordAttemptQuestions(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	var req models.RecordAttemptQuestionsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	attempt, err := h.service.RecordAttemptQuestions(c.Request.Context(), id, req.QuestionIDs)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
}
