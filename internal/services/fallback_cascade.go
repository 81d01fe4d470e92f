package services

import (
	"context"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

// Relaxation derives a looser criteria set from the original request.
// Relax must not mutate its input.
type Relaxation struct {
	Name  string
	Relax func(original *models.Criteria) *models.Criteria
}

const (
	StepDropSource              = "drop_source"
	StepDropSourceAndDifficulty = "drop_source_and_difficulty"
	StepDomainOnly              = "domain_only"
	StepUnconstrained           = "unconstrained"
)

// DefaultRelaxations drops the least important filter first and keeps the
// domain longest. Exclusions and presentation fields survive every step.
func DefaultRelaxations() []Relaxation {
	return []Relaxation{
		{
			Name: StepDropSource,
			Relax: func(c *models.Criteria) *models.Criteria {
				relaxed := c.Clone()
				relaxed.Source = nil
				return relaxed
			},
		},
		{
			Name: StepDropSourceAndDifficulty,
			Relax: func(c *models.Criteria) *models.Criteria {
				relaxed := c.Clone()
				relaxed.Source = nil
				relaxed.DifficultyLevel = nil
				relaxed.Type = nil
				return relaxed
			},
		},
		{
			Name: StepDomainOnly,
			Relax: func(c *models.Criteria) *models.Criteria {
				relaxed := withoutFilters(c)
				relaxed.Domain = c.Clone().Domain
				return relaxed
			},
		},
		{
			Name:  StepUnconstrained,
			Relax: withoutFilters,
		},
	}
}

func withoutFilters(c *models.Criteria) *models.Criteria {
	relaxed := c.Clone()
	relaxed.Domain = nil
	relaxed.Subject = nil
	relaxed.Source = nil
	relaxed.DifficultyLevel = nil
	relaxed.Type = nil
	return relaxed
}

// FallbackCascade walks a fixed list of relaxations, at most one query round per step
type FallbackCascade struct {
	engine *SelectionEngine
	steps  []Relaxation
}

func NewFallbackCascade(engine *SelectionEngine, steps []Relaxation) *FallbackCascade {
	return &FallbackCascade{engine: engine, steps: steps}
}

// Steps returns the relaxation names in the order they are tried
func (c *FallbackCascade) Steps() []string {
	names := make([]string, 0, len(c.steps))
	for _, step := range c.steps {
		names = append(names, step.Name)
	}
	return names
}

// Resolve is only called after strict selection came back empty. The first
// step with at least one match wins; a step whose filters equal the last
// tried filters is skipped without a query.
func (c *FallbackCascade) Resolve(ctx context.Context, criteria *models.Criteria, count *int, excludeIDs []uint) (*models.SelectionResult, error) {
	tried := criteria
	for _, step := range c.steps {
		relaxed := step.Relax(criteria)
		if relaxed.SameFilters(tried) {
			c.engine.logger.Debug("Skipping relaxation with unchanged filters", "step", step.Name)
			continue
		}
		tried = relaxed

		result, err := c.engine.selectStep(ctx, relaxed, repositories.NewQuestionFilters(relaxed, excludeIDs), count)
		if err != nil {
			return nil, err
		}
		if result == nil {
			continue
		}

		result.IsFallback = true
		result.FallbackStep = step.Name
		c.engine.recordFallback(ctx, criteria, result)
		return result, nil
	}

	return nil, &NoQuestionsAvailableError{Criteria: criteria.Clone()}
}
