package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/quiz-selection-service/internal/events"
	"github.com/SAP-F-2025/quiz-selection-service/internal/metrics"
	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-selection-service/internal/validator"
)

// SelectionEngine samples bank questions for validated criteria and hands
// empty results to the fallback cascade.
type SelectionEngine struct {
	questions repositories.QuestionRepository
	cascade   *FallbackCascade
	publisher events.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewSelectionEngine(questions repositories.QuestionRepository, publisher events.EventPublisher, m *metrics.Metrics, logger *slog.Logger) *SelectionEngine {
	engine := &SelectionEngine{
		questions: questions,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
	engine.cascade = NewFallbackCascade(engine, DefaultRelaxations())
	return engine
}

// Select returns min(count, total) matching questions in uniform random order.
// A nil count means every match. Zero strict matches go through the cascade.
func (e *SelectionEngine) Select(ctx context.Context, criteria *models.Criteria, count *int, excludeIDs []uint) (*models.SelectionResult, error) {
	defer e.metrics.Track("select")()

	if count != nil && *count < 1 {
		return nil, validator.ValidationErrors{{
			Field:   "count",
			Message: "must be at least 1",
			Value:   *count,
			Rule:    "min",
		}}
	}

	filters := repositories.NewQuestionFilters(criteria, excludeIDs)
	result, err := e.selectStep(ctx, criteria, filters, count)
	if err != nil {
		e.metrics.ObserveSelection(metrics.OutcomeError, 0)
		return nil, err
	}
	if result != nil {
		e.metrics.ObserveSelection(metrics.OutcomeStrict, len(result.Questions))
		return result, nil
	}

	e.logger.Info("Strict selection matched nothing, relaxing criteria", "criteria", criteria)

	result, err = e.cascade.Resolve(ctx, criteria, count, excludeIDs)
	if err != nil {
		if IsNoQuestionsAvailable(err) {
			e.metrics.ObserveSelection(metrics.OutcomeEmpty, 0)
		} else {
			e.metrics.ObserveSelection(metrics.OutcomeError, 0)
		}
		return nil, err
	}

	e.metrics.ObserveSelection(metrics.OutcomeFallback, len(result.Questions))
	return result, nil
}

// selectStep runs one filtered selection. It returns a nil result when the
// filters match nothing so the caller can decide whether to relax.
func (e *SelectionEngine) selectStep(ctx context.Context, criteria *models.Criteria, filters repositories.QuestionFilters, count *int) (*models.SelectionResult, error) {
	total, err := e.questions.Count(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to count matching questions: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	final := total
	if count != nil && int64(*count) < total {
		final = int64(*count)
	}

	var questions []*models.Question
	if final >= total {
		questions, err = e.questions.SelectAll(ctx, nil, filters)
	} else {
		questions, err = e.questions.SelectRandom(ctx, nil, filters, int(final))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select questions: %w", err)
	}

	return &models.SelectionResult{
		Questions:     sanitizeSelection(questions, filters, int(final)),
		CriteriaUsed:  criteria.Clone(),
		TotalMatching: total,
	}, nil
}

// sanitizeSelection drops repeated and excluded ids and caps the result at limit
func sanitizeSelection(questions []*models.Question, filters repositories.QuestionFilters, limit int) []*models.Question {
	seen := make(map[uint]struct{}, len(questions))
	out := make([]*models.Question, 0, min(len(questions), limit))
	for _, q := range questions {
		if q == nil || filters.Excludes(q.ID) {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out
}

// recordFallback publishes the audit event for an applied relaxation; failures are logged only
func (e *SelectionEngine) recordFallback(ctx context.Context, requested *models.Criteria, result *models.SelectionResult) {
	e.metrics.ObserveFallback(result.FallbackStep)

	e.logger.Warn("Fallback relaxation applied",
		"step", result.FallbackStep,
		"total_matching", result.TotalMatching,
		"criteria_used", result.CriteriaUsed)

	if e.publisher == nil {
		return
	}
	event := events.NewEvent(events.EventSelectionFallback, events.FallbackAppliedEvent{
		Step:              result.FallbackStep,
		RequestedCriteria: requested,
		CriteriaUsed:      result.CriteriaUsed,
		TotalMatching:     result.TotalMatching,
	})
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Error("Failed to publish fallback event", "error", err, "step", result.FallbackStep)
	}
}
