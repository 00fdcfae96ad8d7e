package store

import "github.com/phrazzld/flashcards/internal/domain"

// CardStore defines the term/definition side of the deck.
type CardStore interface {
	// AddCard stores a new card with a zero mistake count.
	// Returns ErrDuplicateTerm if the term is taken and ErrDuplicateDefinition
	// if another card already has this exact definition. Nothing is stored on error.
	AddCard(term, definition string) (domain.Card, error)

	// Lookup returns the definition for a term, or ErrCardNotFound.
	Lookup(term string) (string, error)

	// FindTermByDefinition returns the first term (in insertion order) whose
	// definition equals the argument, or ErrCardNotFound.
	FindTermByDefinition(definition string) (string, error)

	// Size returns the number of cards.
	Size() int

	// AllTerms returns every term in insertion order.
	AllTerms() []string

	// Import overwrites or appends each pair and resets its mistake count.
	// No duplicate-definition check is made. Returns the number of cards in
	// the deck afterwards, so a term repeated in pairs is counted once.
	Import(pairs []domain.Pair) int

	// Export returns every card as a pair, in insertion order.
	Export() []domain.Pair
}

// MistakeLedger defines the per-term error counter side of the deck.
type MistakeLedger interface {
	// Increment adds one mistake to the term. Returns ErrCardNotFound for unknown terms.
	Increment(term string) error

	// Reset sets every mistake count to zero.
	Reset()

	// CountsSnapshot returns a copy of the term -> mistake count mapping.
	CountsSnapshot() map[string]int

	// Cards returns a copy of every card with its mistake count, in
	// insertion order, taken in one consistent read.
	Cards() []domain.Card
}
