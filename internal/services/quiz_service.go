package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SAP-F-2025/quiz-selection-service/internal/events"
	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-selection-service/internal/validator"
)

type quizService struct {
	repo      repositories.Repository
	assembler *QuizAssembler
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewQuizService(deps Dependencies) QuizService {
	return &quizService{
		repo:      deps.Repo,
		assembler: NewQuizAssembler(deps.Repo, deps.Publisher, deps.Metrics, deps.Logger),
		publisher: deps.Publisher,
		logger:    deps.Logger,
		validator: deps.Validator,
	}
}

// ===== QUIZ OPERATIONS =====

func (s *quizService) GenerateQuiz(ctx context.Context, req *GenerateQuizRequest, requesterID string) (*QuizResponse, error) {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, errs
	}

	criteria, err := validateCriteria(s.validator, s.logger, req.Criteria)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generating quiz",
		"requester_id", requesterID,
		"game_format", criteria.GameFormat,
		"num_questions", criteria.NumQuestions)

	quiz, err := s.assembler.Assemble(ctx, criteria, requesterID, AssembleOptions{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	ordered := make([]*models.Question, 0, len(quiz.Questions))
	for _, assoc := range quiz.Questions {
		ordered = append(ordered, assoc.Question)
	}
	return &QuizResponse{Quiz: quiz, OrderedQuestions: ordered}, nil
}

// GetQuiz rebuilds presentation order from the associations. A link to a
// question row that no longer exists fails the whole read.
func (s *quizService) GetQuiz(ctx context.Context, id uint) (*QuizResponse, error) {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	associations, err := s.repo.Quiz().GetQuestions(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(associations))
	for _, assoc := range associations {
		ids = append(ids, assoc.QuestionID)
	}
	byID, err := s.repo.Question().ByIDs(ctx, nil, ids)
	if err != nil {
		return nil, err
	}

	ordered := make([]*models.Question, 0, len(associations))
	quiz.Questions = make([]models.QuizQuestion, 0, len(associations))
	for _, assoc := range associations {
		question, ok := byID[assoc.QuestionID]
		if !ok {
			s.logger.Error("Quiz references a missing question", "quiz_id", id, "question_id", assoc.QuestionID)
			return nil, fmt.Errorf("%w: quiz %d, question %d", ErrQuizIncomplete, id, assoc.QuestionID)
		}
		assoc.Question = question
		quiz.Questions = append(quiz.Questions, *assoc)
		ordered = append(ordered, question)
	}

	return &QuizResponse{Quiz: quiz, OrderedQuestions: ordered}, nil
}

// DeactivateQuiz soft-deletes a quiz; only its creator or an admin may do so
func (s *quizService) DeactivateQuiz(ctx context.Context, id uint, requesterID string) error {
	quiz, err := s.getQuiz(ctx, id)
	if err != nil {
		return err
	}

	if quiz.CreatedBy != requesterID {
		user, err := s.repo.User().GetByID(ctx, requesterID)
		if err != nil {
			return fmt.Errorf("permission check failed: %w", err)
		}
		if !user.IsAdmin() {
			return NewPermissionError(requesterID, id, "quiz", "deactivate", "not owner or admin")
		}
	}

	if !quiz.IsActive {
		return ErrQuizInactive
	}

	if err := s.repo.Quiz().Deactivate(ctx, nil, id); err != nil {
		return err
	}

	s.publish(ctx, events.NewEvent(events.EventQuizDeactivated, events.QuizDeactivatedEvent{
		QuizID:        id,
		DeactivatedBy: requesterID,
	}))
	s.logger.Info("Quiz deactivated", "quiz_id", id, "requester_id", requesterID)
	return nil
}

// ===== ATTEMPT OPERATIONS =====

// StartAttempt seeds the attempt's seen-set with the quiz's questions in presentation order
func (s *quizService) StartAttempt(ctx context.Context, quizID uint, userID string) (*models.QuizAttempt, error) {
	quiz, err := s.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, ErrQuizInactive
	}

	associations, err := s.repo.Quiz().GetQuestions(ctx, nil, quizID)
	if err != nil {
		return nil, err
	}

	selected := make([]uint, 0, len(associations))
	for _, assoc := range associations {
		selected = append(selected, assoc.QuestionID)
	}

	attempt := &models.QuizAttempt{
		QuizID:            &quizID,
		UserID:            userID,
		Status:            models.AttemptInProgress,
		SelectedQuestions: selected,
		StartedAt:         time.Now(),
	}
	if err := s.repo.Attempt().Create(ctx, nil, attempt); err != nil {
		return nil, err
	}

	s.logger.Info("Attempt started", "attempt_id", attempt.ID, "quiz_id", quizID, "user_id", userID)
	return attempt, nil
}

// RecordAttemptQuestions appends newly served questions. Any id the attempt
// has already seen, or repeated in the request, rejects the whole call.
func (s *quizService) RecordAttemptQuestions(ctx context.Context, attemptID uint, questionIDs []uint) (*models.QuizAttempt, error) {
	if len(questionIDs) == 0 {
		return nil, validator.ValidationErrors{{Field: "question_ids", Message: "must not be empty", Rule: "required"}}
	}

	var updated *models.QuizAttempt
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		attempt, err := s.lockAttempt(ctx, tx, attemptID)
		if err != nil {
			return err
		}
		if !attempt.IsActive() {
			return NewBusinessRuleError("attempt_active", "attempt is not in progress", map[string]interface{}{
				"status": attempt.Status,
			})
		}

		duplicates := findDuplicates(questionIDs, attempt.SelectedQuestions)
		duplicates = append(duplicates, repeatedIDs(questionIDs, duplicates)...)
		if len(duplicates) > 0 {
			return NewBusinessRuleError("unique_attempt_questions", "questions already used in this attempt", map[string]interface{}{
				"duplicates": duplicates,
			})
		}

		if err := tx.Attempt().AppendSelectedQuestions(ctx, nil, attemptID, questionIDs); err != nil {
			return err
		}
		updated, err = tx.Attempt().GetByID(ctx, nil, attemptID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewEvent(events.EventAttemptQuestionsAdded, events.AttemptQuestionsRecordedEvent{
		AttemptID:   attemptID,
		QuestionIDs: questionIDs,
	}))
	return updated, nil
}

// ===== HELPERS =====

func (s *quizService) getQuiz(ctx context.Context, id uint) (*models.Quiz, error) {
	quiz, err := s.repo.Quiz().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %d", ErrQuizNotFound, id)
		}
		return nil, err
	}
	return quiz, nil
}

// lockAttempt holds the attempt row until the surrounding transaction ends,
// so concurrent recorders see each other's appends
func (s *quizService) lockAttempt(ctx context.Context, tx repositories.Repository, id uint) (*models.QuizAttempt, error) {
	attempt, err := tx.Attempt().GetByIDForUpdate(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %d", ErrAttemptNotFound, id)
		}
		return nil, err
	}
	return attempt, nil
}

func (s *quizService) publish(ctx context.Context, event *events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "error", err, "event_type", event.Type)
	}
}

// repeatedIDs returns ids that occur more than once in ids and are not already in skip
func repeatedIDs(ids, skip []uint) []uint {
	counts := make(map[uint]int, len(ids))
	var repeated []uint
	for _, id := range ids {
		counts[id]++
		if counts[id] == 2 && !slices.Contains(skip, id) {
			repeated = append(repeated, id)
		}
	}
	return repeated
}
