package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/flashcards/internal/platform/cardfile"
	"github.com/phrazzld/flashcards/internal/service/quiz"
	"github.com/phrazzld/flashcards/internal/store"
)

// SessionError wraps unexpected failures of a session operation.
// Expected conditions are returned as the sentinel errors themselves.
type SessionError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for SessionError.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("session %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError.
func NewSessionError(operation, message string, err error) *SessionError {
	return &SessionError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// sentinels are passed through to callers unchanged.
var sentinels = []error{
	store.ErrDuplicateTerm,
	store.ErrDuplicateDefinition,
	store.ErrCardNotFound,
	quiz.ErrEmptyStore,
	quiz.ErrInvalidTimes,
	cardfile.ErrFileNotFound,
}

// wrapSessionError returns a known sentinel unchanged and wraps anything else.
func wrapSessionError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return NewSessionError(operation, message, err)
}
