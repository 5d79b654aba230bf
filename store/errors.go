package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors for the two failure kinds callers must tell apart:
// ErrConflict means the caller's data collides with a uniqueness or
// foreign-key rule, ErrNotFound means a referenced row is missing.
// Anything else from the store is a plain storage failure.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("constraint violation")
)

// classify maps gorm's translated errors onto the sentinels, keeping the
// driver error wrapped for logs.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
