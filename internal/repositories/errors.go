package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist
var ErrNotFound = errors.New("record not found")

// NotFound wraps ErrNotFound with the entity and id
func NotFound(entity string, id interface{}) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

// IsNotFoundError reports whether err means a missing row
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
