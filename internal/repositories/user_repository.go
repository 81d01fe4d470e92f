package repositories

import (
	"context"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

// UserRepository resolves requesters (read-only, users are owned by the identity provider)
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	HasRole(ctx context.Context, id string, role models.UserRole) (bool, error)
}
