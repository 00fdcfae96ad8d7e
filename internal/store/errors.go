package store

import (
	"errors"
	"fmt"
)

// Common store errors.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would break one of the
	// deck's uniqueness constraints.
	ErrDuplicate = errors.New("entity already exists")

	// ErrCardNotFound indicates that no card matches the requested term or definition.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// ErrDuplicateTerm indicates that a card with the same term already exists.
	ErrDuplicateTerm = fmt.Errorf("%w: term", ErrDuplicate)

	// ErrDuplicateDefinition indicates that another card already uses the definition.
	ErrDuplicateDefinition = fmt.Errorf("%w: definition", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error,
// including ErrDuplicateTerm and ErrDuplicateDefinition.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Operation string // The operation that failed (e.g., "add", "increment")
	Key       string // The term or definition involved
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Operation, e.Key, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given operation, key and wrapped error.
func NewStoreError(operation, key string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
