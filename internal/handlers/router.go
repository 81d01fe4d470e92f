package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
	"github.com/SAP-F-2025/quiz-selection-service/internal/utils"
)

const healthCheckTimeout = 3 * time.Second

// Authenticator supplies the auth middlewares the routes need
type Authenticator interface {
	AuthMiddleware() gin.HandlerFunc
	RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc
}

type HandlerManager struct {
	selectionHandler *SelectionHandler
	quizHandler      *QuizHandler
	serviceManager   services.ServiceManager
	auth             Authenticator
	gatherer         prometheus.Gatherer
	logger           utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	auth Authenticator,
	gatherer prometheus.Gatherer,
) *HandlerManager {
	return &HandlerManager{
		selectionHandler: NewSelectionHandler(serviceManager.Selection(), serviceManager.Export(), logger),
		quizHandler:      NewQuizHandler(serviceManager.Quiz(), serviceManager.Export(), logger),
		serviceManager:   serviceManager,
		auth:             auth,
		gatherer:         gatherer,
		logger:           logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	authors := hm.auth.RequireRoleMiddleware(models.RoleTeacher, models.RoleAdmin)
	admins := hm.auth.RequireRoleMiddleware(models.RoleAdmin)

	v1 := router.Group("/api/v1")
	v1.Use(hm.auth.AuthMiddleware())
	{
		selection := v1.Group("/selection")
		{
			selection.POST("/select", hm.selectionHandler.SelectQuestions)
			selection.POST("/preview", hm.selectionHandler.PreviewSelection)
			selection.POST("/validate-uniqueness", hm.selectionHandler.ValidateUniqueness)

			selection.GET("/criteria-stats", hm.selectionHandler.GetCriteriaStats)
			selection.DELETE("/criteria-stats", admins, hm.selectionHandler.InvalidateCriteriaStats)
			selection.GET("/criteria-stats/export", authors, hm.selectionHandler.ExportCriteriaStats)
		}

		quizzes := v1.Group("/quizzes")
		{
			quizzes.POST("", authors, hm.quizHandler.GenerateQuiz)
			quizzes.GET("/:id", hm.quizHandler.GetQuiz)
			quizzes.DELETE("/:id", authors, hm.quizHandler.DeactivateQuiz)
			quizzes.GET("/:id/export", authors, hm.quizHandler.ExportQuiz)
		}

		attempts := v1.Group("/attempts")
		{
			attempts.POST("", hm.quizHandler.StartAttempt)
			attempts.POST("/:id/questions", hm.quizHandler.RecordAttemptQuestions)
		}
	}

	router.GET("/health", hm.health)
	if hm.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(hm.gatherer, promhttp.HandlerOpts{})))
	}
}

func (hm *HandlerManager) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := hm.serviceManager.HealthCheck(ctx); err != nil {
		utils.GetLogger(c, hm.logger).Warn("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": "quiz-selection-service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "quiz-selection-service",
	})
}
