package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/SAP-F-2025/quiz-selection-service/internal/cache"
	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-selection-service/internal/validator"
)

// SelectionConfig bounds preview sampling
type SelectionConfig struct {
	PreviewDefaultLimit int
	PreviewMaxLimit     int
}

func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		PreviewDefaultLimit: 5,
		PreviewMaxLimit:     20,
	}
}

type selectionService struct {
	repo       repositories.Repository
	engine     *SelectionEngine
	uniqueness *UniquenessValidator
	statsCache cache.StatsCache
	logger     *slog.Logger
	validator  *validator.Validator
	config     SelectionConfig
}

func NewSelectionService(deps Dependencies, config SelectionConfig) SelectionService {
	return &selectionService{
		repo:       deps.Repo,
		engine:     NewSelectionEngine(deps.Repo.Question(), deps.Publisher, deps.Metrics, deps.Logger),
		uniqueness: NewUniquenessValidator(deps.Repo.Attempt()),
		statsCache: deps.StatsCache,
		logger:     deps.Logger,
		validator:  deps.Validator,
		config:     config,
	}
}

func (s *selectionService) SelectQuestions(ctx context.Context, rawCriteria map[string]interface{}, count *int, excludeIDs []uint) (*models.SelectionResult, error) {
	criteria, err := validateCriteria(s.validator, s.logger, rawCriteria)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Selecting questions", "criteria", criteria, "count", count, "exclude_count", len(excludeIDs))

	result, err := s.engine.Select(ctx, criteria, count, excludeIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Questions selected",
		"returned", len(result.Questions),
		"total_matching", result.TotalMatching,
		"is_fallback", result.IsFallback,
		"fallback_step", result.FallbackStep)

	return result, nil
}

// PreviewSelection counts and samples the strict filters concurrently. It never falls back.
func (s *selectionService) PreviewSelection(ctx context.Context, rawCriteria map[string]interface{}, limit int) (*models.PreviewResult, error) {
	criteria, err := validateCriteria(s.validator, s.logger, rawCriteria)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.config.PreviewDefaultLimit
	}
	limit = min(limit, s.config.PreviewMaxLimit)

	filters := repositories.NewQuestionFilters(criteria, nil)
	result := &models.PreviewResult{Criteria: criteria}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.repo.Question().Count(gctx, nil, filters)
		if err != nil {
			return fmt.Errorf("failed to count matching questions: %w", err)
		}
		result.TotalMatching = total
		return nil
	})
	g.Go(func() error {
		sample, err := s.repo.Question().SelectRandom(gctx, nil, filters, limit)
		if err != nil {
			return fmt.Errorf("failed to sample questions: %w", err)
		}
		result.SampleQuestions = sanitizeSelection(sample, filters, limit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *selectionService) ValidateUniqueness(ctx context.Context, selected []uint, attemptID *uint) (*models.UniquenessResult, error) {
	return s.uniqueness.Check(ctx, selected, attemptID)
}

// GetCriteriaStats serves the cached listing when fresh; a cache failure only costs a query
func (s *selectionService) GetCriteriaStats(ctx context.Context) ([]models.CriteriaStat, error) {
	if stats, ok := s.statsCache.Get(ctx); ok {
		return stats, nil
	}

	stats, err := s.repo.Question().CriteriaStats(ctx, nil)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.CriteriaStat{}
	}

	s.statsCache.Set(ctx, stats)
	return stats, nil
}

func (s *selectionService) InvalidateCriteriaStats(ctx context.Context) {
	s.statsCache.Clear(ctx)
	s.logger.Info("Criteria stats cache cleared")
}

// validateCriteria runs the criteria validator, logging stripped keys
func validateCriteria(v *validator.Validator, logger *slog.Logger, raw map[string]interface{}) (*models.Criteria, error) {
	if stripped := validator.StrippedFields(raw); len(stripped) > 0 {
		logger.Debug("Ignoring unknown criteria fields", "fields", stripped)
	}
	return v.Criteria().Validate(raw)
}
