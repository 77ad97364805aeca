// Package repository is the data-access layer for venues, artists and shows.
// Every error it returns wraps exactly one of ErrNotFound, ErrValidation or
// ErrPersistence, so callers can pick a response without inspecting driver
// errors.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the requested id has no matching row.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a required field is missing, an update names an
	// unknown field, or a foreign key does not resolve.
	ErrValidation = errors.New("validation failure")

	// ErrPersistence means the store could not apply the change: a
	// constraint rejected it or the connection failed.
	ErrPersistence = errors.New("persistence failure")
)

type Kind string

const (
	KindNone        Kind = ""
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation"
	KindPersistence Kind = "persistence"
)

// KindOf classifies err. Errors that did not come from this package are
// reported as persistence failures.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindPersistence
	}
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// classify wraps a raw gorm error with the matching kind. Errors that are
// already classified pass through untouched.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrPersistence):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w: %v", op, ErrValidation, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrPersistence, err)
	}
}
