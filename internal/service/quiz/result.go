package quiz

import "errors"

var (
	// ErrEmptyStore is returned when a quiz is requested on a deck with no cards.
	ErrEmptyStore = errors.New("no cards to ask about")

	// ErrInvalidTimes is returned for a negative number of rounds.
	ErrInvalidTimes = errors.New("number of rounds must not be negative")
)

// Outcome classifies an evaluated answer.
type Outcome string

const (
	// OutcomeCorrect means the answer equals the term's definition.
	OutcomeCorrect Outcome = "correct"

	// OutcomeWrong means the answer matches no card's definition.
	OutcomeWrong Outcome = "wrong"

	// OutcomeWrongElsewhere means the answer is the definition of another term.
	OutcomeWrongElsewhere Outcome = "wrong_elsewhere"
)

// Result is the verdict for one round.
type Result struct {
	Term    string  `json:"term"`
	Answer  string  `json:"answer"`
	Outcome Outcome `json:"outcome"`

	// Definition is the correct definition of Term.
	Definition string `json:"definition"`

	// Owner is the term whose definition equals Answer.
	// Only set for OutcomeWrongElsewhere.
	Owner string `json:"owner,omitempty"`
}

// Correct reports whether the answer was right.
func (r Result) Correct() bool {
	return r.Outcome == OutcomeCorrect
}
