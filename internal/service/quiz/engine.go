package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/events"
	"github.com/phrazzld/flashcards/internal/store"
)

// Deck is the part of the card deck the engine reads and updates.
// *store.Deck satisfies it.
type Deck interface {
	Card(term string) (domain.Card, error)
	FindTermByDefinition(definition string) (string, error)
	AllTerms() []string
	Size() int
	Increment(term string) error
}

// Asker obtains answers from the player and shows them each verdict.
type Asker interface {
	// Ask presents the term and returns the candidate definition.
	Ask(ctx context.Context, term string) (string, error)

	// Feedback is called with every result before the next round starts.
	Feedback(ctx context.Context, result Result) error
}

// Engine evaluates answers and keeps the mistake counts up to date.
type Engine struct {
	deck    Deck
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewEngine creates an Engine. A nil emitter discards events and a nil
// logger falls back to slog.Default().
func NewEngine(deck Deck, emitter events.EventEmitter, logger *slog.Logger) (*Engine, error) {
	if deck == nil {
		return nil, domain.NewValidationError("deck", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		deck:    deck,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "quiz_engine")),
	}, nil
}

// RunQuiz asks times questions, cycling through the terms in insertion order.
//
// Zero rounds return an empty result even on an empty deck. An error from the
// asker or a cancelled context stops the quiz; the results gathered so far are
// returned together with the error.
func (e *Engine) RunQuiz(ctx context.Context, times int, asker Asker) ([]Result, error) {
	if times == 0 {
		return []Result{}, nil
	}
	if times < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTimes, times)
	}
	if asker == nil {
		return nil, domain.NewValidationError("asker", "cannot be nil", domain.ErrValidation)
	}
	if e.deck.Size() == 0 {
		return nil, ErrEmptyStore
	}

	log := e.logger
	log.Debug("starting quiz", slog.Int("rounds", times))

	results := make([]Result, 0, times)
	for i := 0; i < times; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		// The term list is read every round so the rotation follows the deck.
		terms := e.deck.AllTerms()
		if len(terms) == 0 {
			return results, ErrEmptyStore
		}
		term := terms[i%len(terms)]

		answer, err := asker.Ask(ctx, term)
		if err != nil {
			return results, fmt.Errorf("failed to read answer for %q: %w", term, err)
		}

		result, err := e.Evaluate(term, answer)
		if err != nil {
			log.Error("failed to evaluate answer",
				slog.String("term", term),
				slog.String("error", err.Error()))
			return results, err
		}
		results = append(results, result)
		e.publish(ctx, result)

		if err := asker.Feedback(ctx, result); err != nil {
			return results, fmt.Errorf("failed to deliver feedback for %q: %w", term, err)
		}
	}

	log.Debug("quiz finished", slog.Int("rounds", len(results)))
	return results, nil
}

// Evaluate judges a single answer for term. Any wrong answer adds one mistake
// to term before the other cards are searched for the answer.
func (e *Engine) Evaluate(term, answer string) (Result, error) {
	card, err := e.deck.Card(term)
	if err != nil {
		return Result{}, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	result := Result{
		Term:       term,
		Answer:     answer,
		Definition: card.Definition,
	}

	if card.Matches(answer) {
		result.Outcome = OutcomeCorrect
		return result, nil
	}

	if err := e.deck.Increment(term); err != nil {
		return Result{}, fmt.Errorf("failed to record mistake: %w", err)
	}

	owner, err := e.deck.FindTermByDefinition(answer)
	switch {
	case err == nil && owner != term:
		result.Outcome = OutcomeWrongElsewhere
		result.Owner = owner
	case err == nil || store.IsNotFoundError(err):
		result.Outcome = OutcomeWrong
	default:
		return Result{}, fmt.Errorf("failed to look up definition owner: %w", err)
	}

	return result, nil
}

// publish emits an answer.evaluated event. Emitter failures are logged only.
func (e *Engine) publish(ctx context.Context, result Result) {
	event, err := events.NewEvent(events.TypeAnswerEvaluated, result)
	if err != nil {
		e.logger.Error("failed to build event", slog.String("error", err.Error()))
		return
	}
	if err := e.emitter.EmitEvent(ctx, event); err != nil {
		e.logger.Warn("failed to emit event",
			slog.String("event_type", event.Type),
			slog.String("error", err.Error()))
	}
}
