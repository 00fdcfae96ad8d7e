package domain

// Pair is a bare term/definition couple as read from or written to a card file.
type Pair struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Card is a flashcard together with the number of wrong answers given for it.
// The term identifies the card; the mistake count lives and dies with it.
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Mistakes   int    `json:"mistakes"`
}

// NewCard creates a card with a fresh mistake count.
func NewCard(term, definition string) *Card {
	return &Card{
		Term:       term,
		Definition: definition,
		Mistakes:   0,
	}
}

// Pair returns the term/definition couple of the card.
func (c *Card) Pair() Pair {
	return Pair{Term: c.Term, Definition: c.Definition}
}

// Matches reports whether answer is exactly the card's definition.
// Comparison is case- and whitespace-sensitive.
func (c *Card) Matches(answer string) bool {
	return c.Definition == answer
}
