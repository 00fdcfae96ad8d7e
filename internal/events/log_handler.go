package events

import (
	"context"
	"log/slog"
)

// LogHandler writes every event it receives to the structured log at debug level.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a LogHandler. A nil logger falls back to slog.Default().
func NewLogHandler(l *slog.Logger) *LogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LogHandler{logger: l.With("component", "event_log")}
}

// HandleEvent implements EventHandler.
func (h *LogHandler) HandleEvent(_ context.Context, event *Event) error {
	h.logger.Debug("session event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("payload", string(event.Payload)))
	return nil
}
