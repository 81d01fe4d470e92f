package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrAttemptNotFound = errors.New("attempt not found")
	ErrQuizInactive    = errors.New("quiz is not active")
	ErrQuizIncomplete  = errors.New("quiz references missing questions")
)

// InsufficientQuestionsError is returned by quiz assembly when fewer bank
// questions match than were requested. Assembly never falls back.
type InsufficientQuestionsError struct {
	Available int `json:"available"`
	Requested int `json:"requested"`
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("insufficient questions: %d available, %d requested", e.Available, e.Requested)
}

// NoQuestionsAvailableError means nothing in the bank matched, even after
// every relaxation step.
type NoQuestionsAvailableError struct {
	Criteria *models.Criteria `json:"criteria,omitempty"`
}

func (e *NoQuestionsAvailableError) Error() string {
	return "no questions available for the given criteria"
}

type PermissionError struct {
	UserID     string `json:"user_id"`
	ResourceID uint   `json:"resource_id"`
	Resource   string `json:"resource"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

func NewPermissionError(userID string, resourceID uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s cannot %s %s %d: %s", e.UserID, e.Action, e.Resource, e.ResourceID, e.Reason)
}

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func NewBusinessRuleError(rule, message string, details map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Message: message, Details: details}
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule %s violated: %s", e.Rule, e.Message)
}

func IsInsufficientQuestions(err error) bool {
	var target *InsufficientQuestionsError
	return errors.As(err, &target)
}

func IsNoQuestionsAvailable(err error) bool {
	var target *NoQuestionsAvailableError
	return errors.As(err, &target)
}

func IsPermissionError(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

func IsBusinessRuleError(err error) bool {
	var target *BusinessRuleError
	return errors.As(err, &target)
}
