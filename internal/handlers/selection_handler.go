package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
	"github.com/SAP-F-2025/quiz-selection-service/internal/utils"
)

type SelectionHandler struct {
	BaseHandler
	service services.SelectionService
	export  services.ExportService
}

func NewSelectionHandler(service services.SelectionService, export services.ExportService, logger utils.Logger) *SelectionHandler {
	return &SelectionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		export:      export,
	}
}

// SelectQuestions picks questions for the criteria, relaxing them when nothing matches
// @Summary Select questions
// @Tags selection
// @Accept json
// @Produce json
// @Param request body models.SelectQuestionsRequest true "Criteria, count and exclusions"
// @Success 200 {object} models.SelectionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No questions available"
// @Router /selection/select [post]
func (h *SelectionHandler) SelectQuestions(c *gin.Context) {
	var req models.SelectQuestionsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Selecting questions", "exclude_count", len(req.ExcludeIDs))

	result, err := h.service.SelectQuestions(c.Request.Context(), criteriaOrEmpty(req.Criteria), req.Count, req.ExcludeIDs)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PreviewSelection reports how many questions match and a small sample
// @Summary Preview selection
// @Tags selection
// @Accept json
// @Produce json
// @Param request body models.PreviewSelectionRequest true "Criteria and sample size"
// @Success 200 {object} models.PreviewResult
// @Failure 400 {object} ErrorResponse
// @Router /selection/preview [post]
func (h *SelectionHandler) PreviewSelection(c *gin.Context) {
	var req models.PreviewSelectionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.PreviewSelection(c.Request.Context(), criteriaOrEmpty(req.Criteria), req.Limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ValidateUniqueness checks a selection against the questions an attempt has seen
// @Summary Validate uniqueness
// @Tags selection
// @Accept json
// @Produce json
// @Param request body models.ValidateUniquenessRequest true "Selected ids and optional attempt"
// @Success 200 {object} models.UniquenessResult
// @Failure 404 {object} ErrorResponse "Attempt not found"
// @Router /selection/validate-uniqueness [post]
func (h *SelectionHandler) ValidateUniqueness(c *gin.Context) {
	var req models.ValidateUniquenessRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.ValidateUniqueness(c.Request.Context(), req.Selected, req.AttemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCriteriaStats lists the available domain/subject/source/difficulty combinations
// @Summary Criteria statistics
// @Tags selection
// @Produce json
// @Success 200 {array} models.CriteriaStat
// @Router /selection/criteria-stats [get]
func (h *SelectionHandler) GetCriteriaStats(c *gin.Context) {
	stats, err := h.service.GetCriteriaStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// InvalidateCriteriaStats drops the cached statistics
// @Summary Invalidate criteria statistics
// @Tags selection
// @Success 204
// @Router /selection/criteria-stats [delete]
func (h *SelectionHandler) InvalidateCriteriaStats(c *gin.Context) {
	h.LogRequest(c, "Invalidating criteria stats")
	h.service.InvalidateCriteriaStats(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// ExportCriteriaStats downloads the statistics as a spreadsheet
// @Summary Export criteria statistics
// @Tags selection
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /selection/criteria-stats/export [get]
func (h *SelectionHandler) ExportCriteriaStats(c *gin.Context) {
	data, err := h.export.ExportCriteriaStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.sendWorkbook(c, "criteria-stats.xlsx", data)
}

func criteriaOrEmpty(raw map[string]interface{}) map[string]interface{} {
	if raw == nil {
		return map[string]interface{}{}
	}
	return raw
}
