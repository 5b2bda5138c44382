package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means an update or delete matched zero rows.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers input the store refuses before touching any table.
	ErrValidation = errors.New("validation failed")
	// ErrConstraint wraps unique, check and foreign key failures raised by the engine.
	ErrConstraint = errors.New("constraint violation")
)

// DependentRowsError is returned by guarded deletes.
type DependentRowsError struct {
	Entity     string
	Key        string
	Dependents string
	Count      int64
}

func (e *DependentRowsError) Error() string {
	return fmt.Sprintf("can not delete %s %s as it has %d %s, delete these first",
		e.Entity, e.Key, e.Count, e.Dependents)
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
