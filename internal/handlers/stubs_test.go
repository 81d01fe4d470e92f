package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
	"github.com/SAP-F-2025/quiz-selection-service/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubSelectionService struct {
	selectFn     func(raw map[string]interface{}, count *int, exclude []uint) (*models.SelectionResult, error)
	previewFn    func(raw map[string]interface{}, limit int) (*models.PreviewResult, error)
	uniquenessFn func(selected []uint, attemptID *uint) (*models.UniquenessResult, error)
	statsFn      func() ([]models.CriteriaStat, error)
	invalidated  int
}

func (s *stubSelectionService) SelectQuestions(ctx context.Context, raw map[string]interface{}, count *int, exclude []uint) (*models.SelectionResult, error) {
	return s.selectFn(raw, count, exclude)
}

func (s *stubSelectionService) PreviewSelection(ctx context.Context, raw map[string]interface{}, limit int) (*models.PreviewResult, error) {
	return s.previewFn(raw, limit)
}

func (s *stubSelectionService) ValidateUniqueness(ctx context.Context, selected []uint, attemptID *uint) (*models.UniquenessResult, error) {
	return s.uniquenessFn(selected, attemptID)
}

func (s *stubSelectionService) GetCriteriaStats(ctx context.Context) ([]models.CriteriaStat, error) {
	return s.statsFn()
}

func (s *stubSelectionService) InvalidateCriteriaStats(ctx context.Context) {
	s.invalidated++
}

type stubQuizService struct {
	generateFn   func(req *services.GenerateQuizRequest, requesterID string) (*services.QuizResponse, error)
	getFn        func(id uint) (*services.QuizResponse, error)
	deactivateFn func(id uint, requesterID string) error
	startFn      func(quizID uint, userID string) (*models.QuizAttempt, error)
	recordFn     func(attemptID uint, ids []uint) (*models.QuizAttempt, error)
}

func (s *stubQuizService) GenerateQuiz(ctx context.Context, req *services.GenerateQuizRequest, requesterID string) (*services.QuizResponse, error) {
	return s.generateFn(req, requesterID)
}

func (s *stubQuizService) GetQuiz(ctx context.Context, id uint) (*services.QuizResponse, error) {
	return s.getFn(id)
}

func (s *stubQuizService) DeactivateQuiz(ctx context.Context, id uint, requesterID string) error {
	return s.deactivateFn(id, requesterID)
}

func (s *stubQuizService) StartAttempt(ctx context.Context, quizID uint, userID string) (*models.QuizAttempt, error) {
	return s.startFn(quizID, userID)
}

func (s *stubQuizService) RecordAttemptQuestions(ctx context.Context, attemptID uint, ids []uint) (*models.QuizAttempt, error) {
	return s.recordFn(attemptID, ids)
}

type stubExportService struct {
	data []byte
	err  error
}

func (s *stubExportService) ExportCriteriaStats(ctx context.Context) ([]byte, error) {
	return s.data, s.err
}

func (s *stubExportService) ExportQuiz(ctx context.Context, quizID uint) ([]byte, error) {
	return s.data, s.err
}

type stubServiceManager struct {
	selection *stubSelectionService
	quiz      *stubQuizService
	export    *stubExportService
	healthErr error
}

func newStubServiceManager() *stubServiceManager {
	return &stubServiceManager{
		selection: &stubSelectionService{},
		quiz:      &stubQuizService{},
		export:    &stubExportService{},
	}
}

func (m *stubServiceManager) Initialize(ctx context.Context) error  { return nil }
func (m *stubServiceManager) Selection() services.SelectionService  { return m.selection }
func (m *stubServiceManager) Quiz() services.QuizService            { return m.quiz }
func (m *stubServiceManager) Export() services.ExportService        { return m.export }
func (m *stubServiceManager) HealthCheck(ctx context.Context) error { return m.healthErr }
func (m *stubServiceManager) Shutdown(ctx context.Context) error    { return nil }

// headerAuth trusts X-User-ID and X-User-Role; routes still go through the real role checks
type headerAuth struct {
	*CasdoorAuthMiddleware
}

func newHeaderAuth() headerAuth {
	return headerAuth{newCasdoorAuthMiddleware(nil, nil)}
}

func (headerAuth) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-ID")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authorization header missing"})
			return
		}
		setUser(c, &models.User{ID: id, Role: models.UserRole(c.GetHeader("X-User-Role"))})
		c.Next()
	}
}

func newTestRouter(sm *stubServiceManager) *gin.Engine {
	router := gin.New()
	SetupMiddleware(router, testLogger())
	NewHandlerManager(sm, testLogger(), newHeaderAuth(), nil).SetupRoutes(router)
	return router
}

func doRequest(router http.Handler, method, path, body, userID string, role models.UserRole) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
		req.Header.Set("X-User-Role", string(role))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
