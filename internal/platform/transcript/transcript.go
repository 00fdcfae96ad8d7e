// Package transcript accumulates everything shown to and typed by the user
// during a session so it can be saved on request.
package transcript

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// InputPrefix marks lines typed by the user.
const InputPrefix = "> "

// Transcript is an append-only log of output and input lines.
type Transcript struct {
	mu    sync.Mutex
	lines []string
}

// New creates an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// RecordOutput appends a line shown to the user.
func (t *Transcript) RecordOutput(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
}

// RecordInput appends a line typed by the user, prefixed with InputPrefix.
func (t *Transcript) RecordInput(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, InputPrefix+line)
}

// Len returns the number of recorded lines.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}

// String returns the transcript with every line newline-terminated.
func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	for _, line := range t.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Save writes the transcript to path on fsys, replacing any existing file.
func (t *Transcript) Save(fsys afero.Fs, path string) error {
	if err := afero.WriteFile(fsys, path, []byte(t.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}
