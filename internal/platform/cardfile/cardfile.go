// Package cardfile reads and writes flat card files: one card per line,
// "term:definition", split on the first colon.
package cardfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/spf13/afero"
)

// Separator divides the term from the definition on each line.
const Separator = ":"

// ErrFileNotFound is returned by Load when the card file does not exist or
// names a directory. It wraps fs.ErrNotExist.
var ErrFileNotFound = fmt.Errorf("card file not found: %w", fs.ErrNotExist)

// Parse reads pairs from r. Term and definition are trimmed of surrounding
// whitespace; lines without a separator are skipped. Lines may be any length.
func Parse(r io.Reader) ([]domain.Pair, error) {
	pairs := make([]domain.Pair, 0)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read card lines: %w", err)
		}

		if term, definition, ok := strings.Cut(line, Separator); ok {
			pairs = append(pairs, domain.Pair{
				Term:       strings.TrimSpace(term),
				Definition: strings.TrimSpace(definition),
			})
		}

		if err != nil {
			return pairs, nil
		}
	}
}

// Write serializes pairs to w in order, one "term:definition" line each.
func Write(w io.Writer, pairs []domain.Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := bw.WriteString(p.Term + Separator + p.Definition + "\n"); err != nil {
			return fmt.Errorf("failed to write card %q: %w", p.Term, err)
		}
	}
	return bw.Flush()
}

// Load opens path on fsys and parses it.
func Load(fsys afero.Fs, path string) ([]domain.Pair, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open card file: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	return Parse(f)
}

// Save creates or truncates path on fsys and writes pairs to it.
func Save(fsys afero.Fs, path string, pairs []domain.Pair) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create card file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close card file: %w", cerr)
		}
	}()

	return Write(f, pairs)
}
