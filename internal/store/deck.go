package store

import (
	"sync"

	"github.com/phrazzld/flashcards/internal/domain"
)

// Deck keeps every card in one ordered slice and indexes it by term.
// Insertion order drives quiz rotation and tie-breaking in reports.
//
// A single lock covers the slice and the index so the CardStore and
// MistakeLedger views always agree on the set of terms.
type Deck struct {
	mu    sync.RWMutex
	cards []*domain.Card
	index map[string]int
}

var (
	_ CardStore     = (*Deck)(nil)
	_ MistakeLedger = (*Deck)(nil)
)

// NewDeck creates an empty deck.
func NewDeck() *Deck {
	return &Deck{
		cards: make([]*domain.Card, 0),
		index: make(map[string]int),
	}
}

// AddCard implements CardStore.AddCard.
func (d *Deck) AddCard(term, definition string) (domain.Card, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.index[term]; exists {
		return domain.Card{}, NewStoreError("add", term, ErrDuplicateTerm)
	}
	if _, exists := d.findByDefinition(definition); exists {
		return domain.Card{}, NewStoreError("add", definition, ErrDuplicateDefinition)
	}

	card := domain.NewCard(term, definition)
	d.append(card)
	return *card, nil
}

// Lookup implements CardStore.Lookup.
func (d *Deck) Lookup(term string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	card, ok := d.get(term)
	if !ok {
		return "", NewStoreError("lookup", term, ErrCardNotFound)
	}
	return card.Definition, nil
}

// Card returns a copy of the card stored under term.
func (d *Deck) Card(term string) (domain.Card, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	card, ok := d.get(term)
	if !ok {
		return domain.Card{}, NewStoreError("get", term, ErrCardNotFound)
	}
	return *card, nil
}

// FindTermByDefinition implements CardStore.FindTermByDefinition.
func (d *Deck) FindTermByDefinition(definition string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	card, ok := d.findByDefinition(definition)
	if !ok {
		return "", NewStoreError("find by definition", definition, ErrCardNotFound)
	}
	return card.Term, nil
}

// Size implements CardStore.Size.
func (d *Deck) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.cards)
}

// AllTerms implements CardStore.AllTerms.
func (d *Deck) AllTerms() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	terms := make([]string, len(d.cards))
	for i, card := range d.cards {
		terms[i] = card.Term
	}
	return terms
}

// Import implements CardStore.Import.
// An existing term keeps its position in the deck; new terms are appended.
// The returned count is the deck size after the import.
func (d *Deck) Import(pairs []domain.Pair) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range pairs {
		if card, ok := d.get(p.Term); ok {
			card.Definition = p.Definition
			card.Mistakes = 0
			continue
		}
		d.append(domain.NewCard(p.Term, p.Definition))
	}
	return len(d.cards)
}

// Export implements CardStore.Export.
func (d *Deck) Export() []domain.Pair {
	d.mu.RLock()
	defer d.mu.RUnlock()

	pairs := make([]domain.Pair, len(d.cards))
	for i, card := range d.cards {
		pairs[i] = card.Pair()
	}
	return pairs
}

// Increment implements MistakeLedger.Increment.
func (d *Deck) Increment(term string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	card, ok := d.get(term)
	if !ok {
		return NewStoreError("increment", term, ErrCardNotFound)
	}
	card.Mistakes++
	return nil
}

// Reset implements MistakeLedger.Reset.
func (d *Deck) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, card := range d.cards {
		card.Mistakes = 0
	}
}

// Cards implements MistakeLedger.Cards.
func (d *Deck) Cards() []domain.Card {
	d.mu.RLock()
	defer d.mu.RUnlock()

	cards := make([]domain.Card, len(d.cards))
	for i, card := range d.cards {
		cards[i] = *card
	}
	return cards
}

// CountsSnapshot implements MistakeLedger.CountsSnapshot.
func (d *Deck) CountsSnapshot() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	counts := make(map[string]int, len(d.cards))
	for _, card := range d.cards {
		counts[card.Term] = card.Mistakes
	}
	return counts
}

// get must be called with the lock held.
func (d *Deck) get(term string) (*domain.Card, bool) {
	i, ok := d.index[term]
	if !ok {
		return nil, false
	}
	return d.cards[i], true
}

// findByDefinition must be called with the lock held.
func (d *Deck) findByDefinition(definition string) (*domain.Card, bool) {
	for _, card := range d.cards {
		if card.Definition == definition {
			return card, true
		}
	}
	return nil, false
}

// append must be called with the write lock held.
func (d *Deck) append(card *domain.Card) {
	d.index[card.Term] = len(d.cards)
	d.cards = append(d.cards, card)
}
