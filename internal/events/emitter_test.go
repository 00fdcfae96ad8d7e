package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/flashcards/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventEmitter(t *testing.T) {
	// Create a minimal logger that discards output
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(log)
		event, err := NewEvent(TypeCardAdded, map[string]string{"term": "France"})
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(log)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event, err := NewEvent(TypeCardAdded, map[string]string{"term": "France"})
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		assert.NoError(t, err)

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(log)

		successHandler := &MockEventHandler{}
		failingHandler := &MockEventHandler{
			HandlerError: errors.New("handler error"),
		}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		event, err := NewEvent(TypeStatsReset, struct{}{})
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		assert.EqualError(t, err, "handler error")

		// Both handlers should still have received the event
		assert.Equal(t, 1, successHandler.HandledCount)
		assert.Equal(t, 1, failingHandler.HandledCount)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		require.NotNil(t, emitter)
		assert.NoError(t, emitter.EmitEvent(context.Background(), &Event{Type: TypeStatsReset}))
	})
}

func TestNoopEmitter(t *testing.T) {
	var emitter EventEmitter = NoopEmitter{}
	assert.NoError(t, emitter.EmitEvent(context.Background(), &Event{Type: TypeCardAdded}))
}

func TestLogHandler(t *testing.T) {
	logBuf, testLogger, cleanup := logger.SetupTestLogger(t, nil)
	defer cleanup()

	handler := NewLogHandler(testLogger)
	event, err := NewEvent(TypeCardsImported, map[string]int{"count": 3})
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), event))

	logger.AssertLogContains(t, logBuf, "session event")
	logger.AssertLogField(t, logBuf, "event_type", TypeCardsImported)
	logger.AssertLogField(t, logBuf, "component", "event_log")
}
