package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/events"
	"github.com/phrazzld/flashcards/internal/platform/cardfile"
	"github.com/phrazzld/flashcards/internal/platform/transcript"
	"github.com/phrazzld/flashcards/internal/service/quiz"
	"github.com/phrazzld/flashcards/internal/service/stats"
	"github.com/phrazzld/flashcards/internal/store"
	"github.com/spf13/afero"
)

// StatsResetPayload is the payload of a stats.reset event.
type StatsResetPayload struct {
	Cards int `json:"cards"`
}

// FileTransferPayload is the payload of cards.imported and cards.exported events.
type FileTransferPayload struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Session is the state of one run of the trainer.
type Session struct {
	id         uuid.UUID
	deck       *store.Deck
	engine     *quiz.Engine
	reporter   *stats.Reporter
	transcript *transcript.Transcript
	fs         afero.Fs
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// NewSession creates a Session over deck. Files are read and written through fs.
// A nil emitter discards events and a nil logger falls back to slog.Default().
func NewSession(
	deck *store.Deck,
	fs afero.Fs,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*Session, error) {
	if deck == nil {
		return nil, domain.NewValidationError("deck", "cannot be nil", domain.ErrValidation)
	}
	if fs == nil {
		return nil, domain.NewValidationError("fs", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()
	logger = logger.With(slog.String("session_id", id.String()))

	engine, err := quiz.NewEngine(deck, emitter, logger)
	if err != nil {
		return nil, NewSessionError("create_session", "failed to create quiz engine", err)
	}
	reporter, err := stats.NewReporter(deck, logger)
	if err != nil {
		return nil, NewSessionError("create_session", "failed to create stats reporter", err)
	}

	return &Session{
		id:         id,
		deck:       deck,
		engine:     engine,
		reporter:   reporter,
		transcript: transcript.New(),
		fs:         fs,
		emitter:    emitter,
		logger:     logger.With(slog.String("component", "session")),
	}, nil
}

// ID returns the unique identifier of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Transcript returns the session transcript.
func (s *Session) Transcript() *transcript.Transcript {
	return s.transcript
}

// HasTerm reports whether a card with this term exists.
func (s *Session) HasTerm(term string) bool {
	_, err := s.deck.Lookup(term)
	return err == nil
}

// HasDefinition reports whether any card has exactly this definition.
func (s *Session) HasDefinition(definition string) bool {
	_, err := s.deck.FindTermByDefinition(definition)
	return err == nil
}

// AddCard adds a new card. It returns store.ErrDuplicateTerm or
// store.ErrDuplicateDefinition when either side is already taken.
func (s *Session) AddCard(ctx context.Context, term, definition string) (domain.Card, error) {
	log := s.logger

	card, err := s.deck.AddCard(term, definition)
	if err != nil {
		log.Debug("card rejected",
			slog.String("term", term),
			slog.String("error", err.Error()))
		return domain.Card{}, wrapSessionError("add_card", "failed to add card", err)
	}

	log.Info("card added", slog.String("term", card.Term))
	s.emit(ctx, events.TypeCardAdded, card.Pair())
	return card, nil
}

// Quiz runs a quiz of times rounds. See quiz.Engine.RunQuiz for the contract.
func (s *Session) Quiz(ctx context.Context, times int, asker quiz.Asker) ([]quiz.Result, error) {
	log := s.logger

	results, err := s.engine.RunQuiz(ctx, times, asker)
	if err != nil {
		log.Debug("quiz stopped",
			slog.Int("answered", len(results)),
			slog.String("error", err.Error()))
		return results, wrapSessionError("quiz", "quiz interrupted", err)
	}

	correct := 0
	for _, r := range results {
		if r.Correct() {
			correct++
		}
	}
	log.Info("quiz completed",
		slog.Int("rounds", len(results)),
		slog.Int("correct", correct))
	return results, nil
}

// HardestCards reports the cards with the most mistakes.
func (s *Session) HardestCards(_ context.Context) stats.Report {
	return s.reporter.HardestCards()
}

// ResetStats sets every mistake count back to zero.
func (s *Session) ResetStats(ctx context.Context) {
	s.deck.Reset()

	s.logger.Info("card statistics reset")
	s.emit(ctx, events.TypeStatsReset, StatsResetPayload{Cards: s.deck.Size()})
}

// ImportFile merges the cards of a card file into the deck and returns the
// number of cards the deck holds afterwards. Missing files yield cardfile.ErrFileNotFound.
func (s *Session) ImportFile(ctx context.Context, path string) (int, error) {
	log := s.logger

	pairs, err := cardfile.Load(s.fs, path)
	if err != nil {
		log.Warn("failed to load card file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return 0, wrapSessionError("import", "failed to load card file", err)
	}

	count := s.deck.Import(pairs)
	log.Info("cards imported",
		slog.String("path", path),
		slog.Int("count", count))
	s.emit(ctx, events.TypeCardsImported, FileTransferPayload{Path: path, Count: count})
	return count, nil
}

// ExportFile writes every card to path, replacing its content, and returns
// the number of cards written.
func (s *Session) ExportFile(ctx context.Context, path string) (int, error) {
	log := s.logger

	pairs := s.deck.Export()
	if err := cardfile.Save(s.fs, path, pairs); err != nil {
		log.Error("failed to save card file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return 0, wrapSessionError("export", "failed to save card file", err)
	}

	log.Info("cards exported",
		slog.String("path", path),
		slog.Int("count", len(pairs)))
	s.emit(ctx, events.TypeCardsExported, FileTransferPayload{Path: path, Count: len(pairs)})
	return len(pairs), nil
}

// SaveLog writes the transcript recorded so far to path.
func (s *Session) SaveLog(_ context.Context, path string) error {
	if err := s.transcript.Save(s.fs, path); err != nil {
		s.logger.Error("failed to save log",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return wrapSessionError("save_log", "failed to save log", err)
	}
	return nil
}

// emit publishes an event. Emitter failures are logged and otherwise ignored.
func (s *Session) emit(ctx context.Context, eventType string, payload interface{}) {
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		s.logger.Error("failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}
