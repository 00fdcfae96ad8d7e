// Package stats reports which cards were answered wrongly most often.
package stats

import (
	"log/slog"

	"github.com/phrazzld/flashcards/internal/domain"
)

// Kind tells how many cards share the highest mistake count.
type Kind int

const (
	// KindNoErrors means no card has a mistake, including the empty deck.
	KindNoErrors Kind = iota
	// KindSingle means exactly one card has the highest count.
	KindSingle
	// KindPlural means two or more cards are tied for the highest count.
	KindPlural
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNoErrors:
		return "no_errors"
	case KindSingle:
		return "single"
	case KindPlural:
		return "plural"
	default:
		return "unknown"
	}
}

// Report lists the hardest cards in insertion order.
type Report struct {
	Kind     Kind
	Terms    []string
	Mistakes int
}

// Source is the read side of the deck the reporter needs.
// *store.Deck satisfies it.
type Source interface {
	// Cards returns the cards with their mistake counts in insertion order.
	Cards() []domain.Card
}

// Reporter computes mistake reports.
type Reporter struct {
	source Source
	logger *slog.Logger
}

// NewReporter creates a Reporter over source.
func NewReporter(source Source, logger *slog.Logger) (*Reporter, error) {
	if source == nil {
		return nil, domain.NewValidationError("source", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		source: source,
		logger: logger.With(slog.String("component", "stats_reporter")),
	}, nil
}

// HardestCards returns every term holding the highest non-zero mistake count.
func (r *Reporter) HardestCards() Report {
	cards := r.source.Cards()

	maxMistakes := 0
	for _, card := range cards {
		if card.Mistakes > maxMistakes {
			maxMistakes = card.Mistakes
		}
	}
	if maxMistakes == 0 {
		return Report{Kind: KindNoErrors}
	}

	hardest := make([]string, 0, 1)
	for _, card := range cards {
		if card.Mistakes == maxMistakes {
			hardest = append(hardest, card.Term)
		}
	}

	report := Report{Kind: KindSingle, Terms: hardest, Mistakes: maxMistakes}
	if len(hardest) > 1 {
		report.Kind = KindPlural
	}

	r.logger.Debug("computed hardest cards",
		slog.String("kind", report.Kind.String()),
		slog.Int("mistakes", maxMistakes),
		slog.Int("card_count", len(hardest)))
	return report
}
