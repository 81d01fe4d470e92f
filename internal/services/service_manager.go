package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/quiz-selection-service/internal/cache"
	"github.com/SAP-F-2025/quiz-selection-service/internal/events"
	"github.com/SAP-F-2025/quiz-selection-service/internal/metrics"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-selection-service/internal/validator"
)

// Dependencies bundles the collaborators shared by all services
type Dependencies struct {
	Repo       repositories.Repository
	StatsCache cache.StatsCache
	Publisher  events.EventPublisher
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Validator  *validator.Validator
}

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	Selection      SelectionConfig
	DefaultTimeout time.Duration
}

func DefaultServiceManagerConfig() ServiceManagerConfig {
	return ServiceManagerConfig{
		Selection:      DefaultSelectionConfig(),
		DefaultTimeout: 30 * time.Second,
	}
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps   Dependencies
	config ServiceManagerConfig

	selectionService SelectionService
	quizService      QuizService
	exportService    ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps Dependencies, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		deps:   deps,
		config: config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.config.Validate(); err != nil {
		return err
	}
	if sm.deps.Repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.deps.StatsCache == nil {
		sm.deps.StatsCache = cache.NewMemoryStatsCache(cache.StatsCacheConfig.TTL)
	}
	if sm.deps.Validator == nil {
		sm.deps.Validator = validator.New()
	}

	sm.deps.Logger.Info("Initializing service manager")

	sm.selectionService = NewSelectionService(sm.deps, sm.config.Selection)
	sm.deps.Logger.Info("Selection service initialized")

	sm.quizService = NewQuizService(sm.deps)
	sm.deps.Logger.Info("Quiz service initialized")

	sm.exportService = NewExportService(sm.selectionService, sm.quizService, sm.deps.Logger)
	sm.deps.Logger.Info("Export service initialized")

	sm.initialized = true
	sm.deps.Logger.Info("Service manager initialized successfully")

	return nil
}

// Service getters
func (sm *serviceManager) Selection() SelectionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.selectionService
}

func (sm *serviceManager) Quiz() QuizService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.quizService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	ctx, cancel := context.WithTimeout(ctx, sm.config.DefaultTimeout)
	defer cancel()

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if sm.deps.Publisher != nil {
		if err := sm.deps.Publisher.Close(); err != nil {
			sm.deps.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down completed")

	return nil
}

// ===== CONFIGURATION VALIDATION =====

// Validate validates the service manager configuration
func (config *ServiceManagerConfig) Validate() error {
	var errors []string

	if config.DefaultTimeout <= 0 {
		errors = append(errors, "default timeout must be positive")
	}
	if config.Selection.PreviewDefaultLimit < 1 {
		errors = append(errors, "preview default limit must be positive")
	}
	if config.Selection.PreviewMaxLimit < config.Selection.PreviewDefaultLimit {
		errors = append(errors, "preview max limit must not be below the default limit")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
