package services

import (
	"context"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

// ===== REQUEST/RESPONSE DTOs =====

type SelectQuestionsRequest = models.SelectQuestionsRequest
type PreviewSelectionRequest = models.PreviewSelectionRequest
type GenerateQuizRequest = models.GenerateQuizRequest
type QuizResponse = models.QuizResponse

// ===== SERVICE INTERFACES =====

// SelectionService is the read side: sampling, previews, uniqueness and stats
type SelectionService interface {
	SelectQuestions(ctx context.Context, rawCriteria map[string]interface{}, count *int, excludeIDs []uint) (*models.SelectionResult, error)
	PreviewSelection(ctx context.Context, rawCriteria map[string]interface{}, limit int) (*models.PreviewResult, error)
	ValidateUniqueness(ctx context.Context, selected []uint, attemptID *uint) (*models.UniquenessResult, error)

	// Criteria statistics (cached, best-effort)
	GetCriteriaStats(ctx context.Context) ([]models.CriteriaStat, error)
	InvalidateCriteriaStats(ctx context.Context)
}

// QuizService assembles quizzes and tracks which questions an attempt has seen
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *GenerateQuizRequest, requesterID string) (*QuizResponse, error)
	GetQuiz(ctx context.Context, id uint) (*QuizResponse, error)
	DeactivateQuiz(ctx context.Context, id uint, requesterID string) error

	// Attempts
	StartAttempt(ctx context.Context, quizID uint, userID string) (*models.QuizAttempt, error)
	RecordAttemptQuestions(ctx context.Context, attemptID uint, questionIDs []uint) (*models.QuizAttempt, error)
}

// ExportService renders spreadsheets
type ExportService interface {
	ExportCriteriaStats(ctx context.Context) ([]byte, error)
	ExportQuiz(ctx context.Context, quizID uint) ([]byte, error)
}

// ServiceManager owns service construction and lifecycle
type ServiceManager interface {
	Initialize(ctx context.Context) error

	Selection() SelectionService
	Quiz() QuizService
	Export() ExportService

	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
