package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/quiz-selection-service/internal/events"
	"github.com/SAP-F-2025/quiz-selection-service/internal/metrics"
	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
)

const (
	hangmanMaxAttempts = 6
	maxMemoryGridSize  = 6
	maxTitleLength     = 200
)

// AssembleOptions overrides the derived title and description
type AssembleOptions struct {
	Title       *string
	Description *string
}

// QuizAssembler builds and persists a quiz from validated criteria. Unlike
// selection it never relaxes criteria: a short pool is an error.
type QuizAssembler struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewQuizAssembler(repo repositories.Repository, publisher events.EventPublisher, m *metrics.Metrics, logger *slog.Logger) *QuizAssembler {
	return &QuizAssembler{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

func (a *QuizAssembler) Assemble(ctx context.Context, criteria *models.Criteria, requesterID string, opts AssembleOptions) (*models.Quiz, error) {
	defer a.metrics.Track("assemble")()

	selected, err := a.pickQuestions(ctx, criteria)
	if err != nil {
		return nil, err
	}

	gameOptions, err := BuildGameOptions(criteria.GameFormat, len(selected))
	if err != nil {
		return nil, err
	}
	criteriaJSON, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to encode criteria: %w", err)
	}

	quiz := &models.Quiz{
		Title:         deriveTitle(criteria, opts.Title),
		Description:   deriveDescription(criteria, opts.Description),
		GameFormat:    criteria.GameFormat,
		GameOptions:   gameOptions,
		Criteria:      datatypes.JSON(criteriaJSON),
		QuestionCount: len(selected),
		RandomSeed:    criteria.RandomSeed,
		IsActive:      true,
		CreatedBy:     requesterID,
	}

	var associations []*models.QuizQuestion
	err = a.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if err := tx.Quiz().Create(ctx, nil, quiz); err != nil {
			return err
		}

		associations = make([]*models.QuizQuestion, 0, len(selected))
		for i, q := range selected {
			associations = append(associations, &models.QuizQuestion{
				QuizID:         quiz.ID,
				QuestionID:     q.ID,
				QuestionNumber: i + 1,
			})
		}
		return tx.Quiz().CreateQuestions(ctx, nil, associations)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist quiz: %w", err)
	}

	quiz.Questions = make([]models.QuizQuestion, 0, len(associations))
	for i, assoc := range associations {
		assoc.Question = selected[i]
		quiz.Questions = append(quiz.Questions, *assoc)
	}

	a.metrics.ObserveQuizGenerated(string(quiz.GameFormat))
	a.publishGenerated(ctx, quiz, criteria, selected)

	a.logger.Info("Quiz generated successfully",
		"quiz_id", quiz.ID,
		"game_format", quiz.GameFormat,
		"question_count", quiz.QuestionCount,
		"seeded", quiz.RandomSeed != nil,
		"created_by", requesterID)

	return quiz, nil
}

// pickQuestions loads the whole matching pool in id order, shuffles it and
// takes the requested prefix, so a seed always maps to the same permutation
// of the same pool.
func (a *QuizAssembler) pickQuestions(ctx context.Context, criteria *models.Criteria) ([]*models.Question, error) {
	filters := repositories.NewQuestionFilters(criteria, nil)
	pool, err := a.repo.Question().ListAvailable(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load question pool: %w", err)
	}
	pool = sanitizeSelection(pool, filters, len(pool))

	if len(pool) == 0 {
		bankSize, err := a.repo.Question().CountBank(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to count question bank: %w", err)
		}
		if bankSize == 0 {
			return nil, &NoQuestionsAvailableError{Criteria: criteria.Clone()}
		}
	}

	if len(pool) < criteria.NumQuestions {
		return nil, &InsufficientQuestionsError{Available: len(pool), Requested: criteria.NumQuestions}
	}

	shuffleQuestions(pool, criteria.RandomSeed)
	return pool[:criteria.NumQuestions], nil
}

func (a *QuizAssembler) publishGenerated(ctx context.Context, quiz *models.Quiz, criteria *models.Criteria, selected []*models.Question) {
	if a.publisher == nil {
		return
	}

	ids := make([]uint, 0, len(selected))
	for _, q := range selected {
		ids = append(ids, q.ID)
	}

	event := events.NewEvent(events.EventQuizGenerated, events.QuizGeneratedEvent{
		QuizID:        quiz.ID,
		Title:         quiz.Title,
		GameFormat:    string(quiz.GameFormat),
		QuestionCount: quiz.QuestionCount,
		QuestionIDs:   ids,
		RandomSeed:    quiz.RandomSeed,
		CreatedBy:     quiz.CreatedBy,
		Filters:       activeFilters(criteria),
	})
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.Error("Failed to publish quiz generated event", "error", err, "quiz_id", quiz.ID)
	}
}

// ===== GAME OPTIONS =====

// BuildGameOptions returns the per-format options payload
func BuildGameOptions(format models.GameFormat, numQuestions int) (datatypes.JSON, error) {
	var options interface{}
	switch format {
	case models.GameFormatHangman:
		options = models.HangmanOptions{MaxAttempts: hangmanMaxAttempts, ShowHints: true}
	case models.GameFormatKnowledgeTower:
		options = models.KnowledgeTowerOptions{LevelsRequired: numQuestions}
	case models.GameFormatMemoryGrid:
		options = models.MemoryGridOptions{GridSize: memoryGridSize(numQuestions)}
	case models.GameFormatWordLadder, models.GameFormatTraditional:
		options = struct{}{}
	default:
		return nil, fmt.Errorf("unsupported game format %q", format)
	}

	data, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game options: %w", err)
	}
	return datatypes.JSON(data), nil
}

func memoryGridSize(numQuestions int) int {
	return min(int(math.Ceil(math.Sqrt(float64(numQuestions)))), maxMemoryGridSize)
}

// ===== TITLES =====

var gameFormatLabels = map[models.GameFormat]string{
	models.GameFormatTraditional:    "Traditional",
	models.GameFormatHangman:        "Hangman",
	models.GameFormatKnowledgeTower: "Knowledge Tower",
	models.GameFormatWordLadder:     "Word Ladder",
	models.GameFormatMemoryGrid:     "Memory Grid",
}

func deriveTitle(criteria *models.Criteria, override *string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return truncate(strings.TrimSpace(*override), maxTitleLength)
	}

	topic := "Mixed Topics"
	var parts []string
	if criteria.Domain != nil {
		parts = append(parts, *criteria.Domain)
	}
	if criteria.Subject != nil {
		parts = append(parts, *criteria.Subject)
	}
	if len(parts) > 0 {
		topic = strings.Join(parts, " - ")
	}

	title := fmt.Sprintf("%s %s Quiz", topic, gameFormatLabels[criteria.GameFormat])
	if criteria.DifficultyLevel != nil {
		title = fmt.Sprintf("%s (%s)", title, *criteria.DifficultyLevel)
	}
	return truncate(title, maxTitleLength)
}

func deriveDescription(criteria *models.Criteria, override *string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return strings.TrimSpace(*override)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d questions selected from the question bank", criteria.NumQuestions)
	if filters := activeFilters(criteria); len(filters) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(filters, ", "))
	}
	b.WriteString(".")
	return b.String()
}

// activeFilters lists the set filters as "name: value" pairs
func activeFilters(criteria *models.Criteria) []string {
	var filters []string
	if criteria.Domain != nil {
		filters = append(filters, "domain: "+*criteria.Domain)
	}
	if criteria.Subject != nil {
		filters = append(filters, "subject: "+*criteria.Subject)
	}
	if criteria.Source != nil {
		filters = append(filters, "source: "+*criteria.Source)
	}
	if criteria.DifficultyLevel != nil {
		filters = append(filters, "difficulty: "+string(*criteria.DifficultyLevel))
	}
	if criteria.Type != nil {
		filters = append(filters, "type: "+string(*criteria.Type))
	}
	return filters
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
