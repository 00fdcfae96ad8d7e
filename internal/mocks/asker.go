package mocks

import (
	"context"

	"github.com/phrazzld/flashcards/internal/service/quiz"
	"github.com/stretchr/testify/mock"
)

// MockAsker is a testify mock of quiz.Asker.
type MockAsker struct {
	mock.Mock
}

var _ quiz.Asker = (*MockAsker)(nil)

// Ask is a mock implementation of quiz.Asker.Ask
func (m *MockAsker) Ask(ctx context.Context, term string) (string, error) {
	args := m.Called(ctx, term)
	return args.String(0), args.Error(1)
}

// Feedback is a mock implementation of quiz.Asker.Feedback
func (m *MockAsker) Feedback(ctx context.Context, result quiz.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}
