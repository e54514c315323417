package service

import (
	"fmt"

	"wandshop-api/internal/database"
	"wandshop-api/internal/repository"
)

// Errors surfaced by services. They alias the repository sentinels so
// callers only need this package for errors.Is checks.
var (
	ErrNotFound              = repository.ErrNotFound
	ErrInsufficientInventory = repository.ErrInsufficientInventory
	ErrPersistence           = repository.ErrPersistence
	ErrResetNotConfirmed     = database.ErrResetNotConfirmed
	ErrStoreNotEmpty         = database.ErrStoreNotEmpty
	ErrInUse                 = repository.ErrInUse
)

// ValidationError reports malformed input or a broken business rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
