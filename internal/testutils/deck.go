package testutils

import (
	"testing"

	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// DeckOption configures a deck built by MustCreateDeck.
type DeckOption func(t testing.TB, d *store.Deck)

// WithCards adds cards from alternating term/definition arguments.
func WithCards(termsAndDefinitions ...string) DeckOption {
	return func(t testing.TB, d *store.Deck) {
		t.Helper()
		for _, p := range Pairs(t, termsAndDefinitions...) {
			_, err := d.AddCard(p.Term, p.Definition)
			require.NoError(t, err, "Failed to add card %q", p.Term)
		}
	}
}

// WithMistakes records n mistakes for an existing term.
func WithMistakes(term string, n int) DeckOption {
	return func(t testing.TB, d *store.Deck) {
		t.Helper()
		for i := 0; i < n; i++ {
			require.NoError(t, d.Increment(term), "Failed to record mistake for %q", term)
		}
	}
}

// MustCreateDeck creates a deck and applies the options in order.
func MustCreateDeck(t testing.TB, opts ...DeckOption) *store.Deck {
	t.Helper()

	deck := store.NewDeck()
	for _, opt := range opts {
		opt(t, deck)
	}
	return deck
}

// Pairs builds pairs from alternating term/definition arguments.
func Pairs(t testing.TB, termsAndDefinitions ...string) []domain.Pair {
	t.Helper()
	require.True(t, len(termsAndDefinitions)%2 == 0, "Pairs needs an even number of arguments")

	pairs := make([]domain.Pair, 0, len(termsAndDefinitions)/2)
	for i := 0; i < len(termsAndDefinitions); i += 2 {
		pairs = append(pairs, domain.Pair{
			Term:       termsAndDefinitions[i],
			Definition: termsAndDefinitions[i+1],
		})
	}
	return pairs
}

// NewMemFs returns an in-memory filesystem holding the given files.
func NewMemFs(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644), "Failed to write %s", name)
	}
	return fs
}

// ReadFile returns the content of name on fs.
func ReadFile(t testing.TB, fs afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, name)
	require.NoError(t, err, "Failed to read %s", name)
	return string(data)
}
