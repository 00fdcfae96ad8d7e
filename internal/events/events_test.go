package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	type answerPayload struct {
		Term    string `json:"term"`
		Correct bool   `json:"correct"`
	}

	payload := answerPayload{Term: "France", Correct: true}

	event, err := NewEvent(TypeAnswerEvaluated, payload)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeAnswerEvaluated, event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	var decoded answerPayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewEventUnserializablePayload(t *testing.T) {
	_, err := NewEvent(TypeCardAdded, map[string]interface{}{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), TypeCardAdded)
}

func TestHandlerFunc(t *testing.T) {
	var got []string
	var handler EventHandler = HandlerFunc(func(_ context.Context, e *Event) error {
		got = append(got, e.Type)
		return nil
	})

	emitter := NewInMemoryEventEmitter(nil)
	emitter.RegisterHandler(handler)

	for _, eventType := range []string{TypeCardsImported, TypeCardAdded} {
		event, err := NewEvent(eventType, struct{}{})
		require.NoError(t, err)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))
	}
	assert.Equal(t, []string{TypeCardsImported, TypeCardAdded}, got)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *Event
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventPayloadIsJSON(t *testing.T) {
	event, err := NewEvent(TypeStatsReset, struct{}{})
	require.NoError(t, err)
	assert.True(t, json.Valid(event.Payload))
}
