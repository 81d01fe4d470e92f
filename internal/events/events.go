package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "quiz-selection-service"
	EventVersion = "1.0"
)

// Event types
const (
	EventQuizGenerated         = "quiz.generated"
	EventQuizDeactivated       = "quiz.deactivated"
	EventSelectionFallback     = "selection.fallback_applied"
	EventAttemptQuestionsAdded = "attempt.questions_recorded"
)

// Event is the envelope published to the broker
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent wraps data in an envelope with a fresh id
func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events. Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// ===== EVENT PAYLOADS =====

type QuizGeneratedEvent struct {
	QuizID        uint     `json:"quiz_id"`
	Title         string   `json:"title"`
	GameFormat    string   `json:"game_format"`
	QuestionCount int      `json:"question_count"`
	QuestionIDs   []uint   `json:"question_ids"`
	RandomSeed    *int64   `json:"random_seed,omitempty"`
	CreatedBy     string   `json:"created_by"`
	Filters       []string `json:"filters,omitempty"`
}

type QuizDeactivatedEvent struct {
	QuizID        uint   `json:"quiz_id"`
	DeactivatedBy string `json:"deactivated_by"`
}

type FallbackAppliedEvent struct {
	Step              string      `json:"step"`
	RequestedCriteria interface{} `json:"requested_criteria"`
	CriteriaUsed      interface{} `json:"criteria_used"`
	TotalMatching     int64       `json:"total_matching"`
}

type AttemptQuestionsRecordedEvent struct {
	AttemptID   uint   `json:"attempt_id"`
	QuestionIDs []uint `json:"question_ids"`
}
