package mocks

import (
	"context"

	"github.com/phrazzld/flashcards/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter is a testify mock of events.EventEmitter.
type MockEventEmitter struct {
	mock.Mock
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent is a mock implementation of events.EventEmitter.EmitEvent
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
