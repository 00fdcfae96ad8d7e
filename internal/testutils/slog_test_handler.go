package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record flattened into a map.
type LogEntry map[string]interface{}

// TestSlogHandler is a memory-backed slog.Handler for asserting on log
// records without parsing JSON.
type TestSlogHandler struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []slog.Attr
}

// NewTestSlogHandler creates a new memory-backed slog handler.
func NewTestSlogHandler() *TestSlogHandler {
	entries := make([]LogEntry, 0)
	return &TestSlogHandler{
		mu:      &sync.Mutex{},
		entries: &entries,
	}
}

// NewTestLogger returns a logger writing into a fresh TestSlogHandler.
func NewTestLogger() (*slog.Logger, *TestSlogHandler) {
	h := NewTestSlogHandler()
	return slog.New(h), h
}

// Enabled satisfies slog.Handler interface
func (h *TestSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler interface
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := make(LogEntry, len(h.attrs)+r.NumAttrs()+2)
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	entry["level"] = r.Level.String()
	entry["message"] = r.Message
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler interface. The derived handler shares the
// captured entries with its parent.
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TestSlogHandler{mu: h.mu, entries: h.entries, attrs: merged}
}

// WithGroup satisfies slog.Handler interface. Groups are flattened.
func (h *TestSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Entries returns all captured log entries
func (h *TestSlogHandler) Entries() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]LogEntry, len(*h.entries))
	copy(result, *h.entries)
	return result
}

// Messages returns the message of every captured entry, in order.
func (h *TestSlogHandler) Messages() []string {
	entries := h.Entries()
	messages := make([]string, len(entries))
	for i, e := range entries {
		messages[i], _ = e["message"].(string)
	}
	return messages
}

// Clear resets the captured log entries
func (h *TestSlogHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	*h.entries = make([]LogEntry, 0)
}
