package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/events"
	"github.com/phrazzld/flashcards/internal/mocks"
	"github.com/phrazzld/flashcards/internal/platform/cardfile"
	"github.com/phrazzld/flashcards/internal/service"
	"github.com/phrazzld/flashcards/internal/service/quiz"
	"github.com/phrazzld/flashcards/internal/service/stats"
	"github.com/phrazzld/flashcards/internal/store"
	"github.com/phrazzld/flashcards/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingHandler collects emitted events.
type recordingHandler struct {
	events []*events.Event
}

func (h *recordingHandler) record(_ context.Context, e *events.Event) error {
	h.events = append(h.events, e)
	return nil
}

func (h *recordingHandler) types() []string {
	types := make([]string, len(h.events))
	for i, e := range h.events {
		types[i] = e.Type
	}
	return types
}

type fixture struct {
	session *service.Session
	deck    *store.Deck
	fs      afero.Fs
	events  *recordingHandler
	logs    *testutils.TestSlogHandler
}

func newFixture(t *testing.T, files map[string]string, opts ...testutils.DeckOption) fixture {
	t.Helper()

	log, logs := testutils.NewTestLogger()
	handler := &recordingHandler{}
	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.HandlerFunc(handler.record))

	deck := testutils.MustCreateDeck(t, opts...)
	fs := testutils.NewMemFs(t, files)

	session, err := service.NewSession(deck, fs, emitter, log)
	require.NoError(t, err)

	return fixture{session: session, deck: deck, fs: fs, events: handler, logs: logs}
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		deck  *store.Deck
		fs    afero.Fs
		field string
	}{
		{name: "nil deck", fs: afero.NewMemMapFs(), field: "deck"},
		{name: "nil fs", deck: store.NewDeck(), field: "fs"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			session, err := service.NewSession(tc.deck, tc.fs, nil, nil)
			assert.Nil(t, session)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		session, err := service.NewSession(store.NewDeck(), afero.NewMemMapFs(), nil, nil)
		require.NoError(t, err)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", session.ID().String())
		assert.NotNil(t, session.Transcript())
	})
}

func TestSessionAddCard(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil, testutils.WithCards("dog", "woof"))
	ctx := context.Background()

	card, err := f.session.AddCard(ctx, "cat", "meow")
	require.NoError(t, err)
	assert.Equal(t, domain.Card{Term: "cat", Definition: "meow"}, card)
	assert.True(t, f.session.HasTerm("cat"))
	assert.True(t, f.session.HasDefinition("meow"))
	assert.False(t, f.session.HasTerm("cow"))
	assert.False(t, f.session.HasDefinition("moo"))

	_, err = f.session.AddCard(ctx, "dog", "bark")
	assert.Equal(t, store.ErrDuplicateTerm, err)

	_, err = f.session.AddCard(ctx, "puppy", "woof")
	assert.Equal(t, store.ErrDuplicateDefinition, err)

	assert.Equal(t, []string{"dog", "cat"}, f.deck.AllTerms())
	require.Equal(t, []string{events.TypeCardAdded}, f.events.types())

	var payload domain.Pair
	require.NoError(t, f.events.events[0].UnmarshalPayload(&payload))
	assert.Equal(t, domain.Pair{Term: "cat", Definition: "meow"}, payload)
	assert.Contains(t, f.logs.Messages(), "card added")
}

func TestSessionQuiz(t *testing.T) {
	t.Parallel()

	t.Run("records mistakes and reports", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil, testutils.WithCards("x", "1", "y", "2"))

		asker := &mocks.MockAsker{}
		asker.On("Ask", mock.Anything, "x").Return("2", nil)
		asker.On("Ask", mock.Anything, "y").Return("2", nil)
		asker.On("Feedback", mock.Anything, mock.Anything).Return(nil)

		results, err := f.session.Quiz(context.Background(), 4, asker)
		require.NoError(t, err)
		require.Len(t, results, 4)
		assert.Equal(t, quiz.OutcomeWrongElsewhere, results[0].Outcome)
		assert.Equal(t, "y", results[0].Owner)
		assert.Equal(t, quiz.OutcomeCorrect, results[1].Outcome)

		assert.Equal(t, stats.Report{Kind: stats.KindSingle, Terms: []string{"x"}, Mistakes: 2},
			f.session.HardestCards(context.Background()))
		assert.Len(t, f.events.events, 4)
	})

	t.Run("empty deck", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil)

		_, err := f.session.Quiz(context.Background(), 2, &mocks.MockAsker{})
		assert.Equal(t, quiz.ErrEmptyStore, err)
	})

	t.Run("end of input", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil, testutils.WithCards("x", "1"))

		asker := &mocks.MockAsker{}
		asker.On("Ask", mock.Anything, "x").Return("", io.EOF)

		_, err := f.session.Quiz(context.Background(), 2, asker)
		require.Error(t, err)
		assert.ErrorIs(t, err, io.EOF)

		var sessionErr *service.SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, "quiz", sessionErr.Operation)
	})
}

func TestSessionResetStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil,
		testutils.WithCards("A", "a", "B", "b"),
		testutils.WithMistakes("A", 2),
	)

	f.session.ResetStats(context.Background())

	assert.Equal(t, map[string]int{"A": 0, "B": 0}, f.deck.CountsSnapshot())
	assert.Equal(t, stats.KindNoErrors, f.session.HardestCards(context.Background()).Kind)
	require.Equal(t, []string{events.TypeStatsReset}, f.events.types())

	var payload service.StatsResetPayload
	require.NoError(t, f.events.events[0].UnmarshalPayload(&payload))
	assert.Equal(t, 2, payload.Cards)
}

func TestSessionImportFile(t *testing.T) {
	t.Parallel()

	t.Run("merges by term", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t,
			map[string]string{"cards.txt": "dog:bark\nnot a card\nbird : tweet\n"},
			testutils.WithCards("dog", "woof", "cat", "meow"),
			testutils.WithMistakes("dog", 3),
		)

		count, err := f.session.ImportFile(context.Background(), "cards.txt")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		assert.Equal(t, []string{"dog", "cat", "bird"}, f.deck.AllTerms())
		definition, err := f.deck.Lookup("dog")
		require.NoError(t, err)
		assert.Equal(t, "bark", definition)
		assert.Equal(t, 0, f.deck.CountsSnapshot()["dog"])

		require.Equal(t, []string{events.TypeCardsImported}, f.events.types())
		var payload service.FileTransferPayload
		require.NoError(t, f.events.events[0].UnmarshalPayload(&payload))
		assert.Equal(t, service.FileTransferPayload{Path: "cards.txt", Count: 3}, payload)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil)

		count, err := f.session.ImportFile(context.Background(), "missing.txt")
		assert.Zero(t, count)
		assert.Equal(t, cardfile.ErrFileNotFound, err)
		assert.Empty(t, f.events.events)
	})
}

func TestSessionExportFile(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, map[string]string{"out.txt": "stale:content\n"},
			testutils.WithCards("dog", "woof", "cat", "meow"))
		ctx := context.Background()

		count, err := f.session.ExportFile(ctx, "out.txt")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, "dog:woof\ncat:meow\n", testutils.ReadFile(t, f.fs, "out.txt"))

		other, err := service.NewSession(store.NewDeck(), f.fs, nil, nil)
		require.NoError(t, err)
		loaded, err := other.ImportFile(ctx, "out.txt")
		require.NoError(t, err)
		assert.Equal(t, 2, loaded)

		assert.Equal(t, []string{events.TypeCardsExported}, f.events.types())
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		deck := testutils.MustCreateDeck(t, testutils.WithCards("dog", "woof"))
		session, err := service.NewSession(deck, afero.NewReadOnlyFs(afero.NewMemMapFs()), nil, nil)
		require.NoError(t, err)

		count, err := session.ExportFile(context.Background(), "out.txt")
		assert.Zero(t, count)

		var sessionErr *service.SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, "export", sessionErr.Operation)
	})
}

func TestSessionSaveLog(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	f.session.Transcript().RecordOutput("The card:")
	f.session.Transcript().RecordInput("dog")

	require.NoError(t, f.session.SaveLog(context.Background(), "log.txt"))
	assert.Equal(t, "The card:\n> dog\n", testutils.ReadFile(t, f.fs, "log.txt"))

	readOnly, err := service.NewSession(store.NewDeck(), afero.NewReadOnlyFs(f.fs), nil, nil)
	require.NoError(t, err)
	err = readOnly.SaveLog(context.Background(), "log.txt")

	var sessionErr *service.SessionError
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "save_log", sessionErr.Operation)
}

func TestSessionError(t *testing.T) {
	t.Parallel()

	inner := errors.New("disk full")
	err := service.NewSessionError("export", "failed to save card file", inner)
	assert.Equal(t, "session export failed: failed to save card file: disk full", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := service.NewSessionError("export", "no path", nil)
	assert.Equal(t, "session export failed: no path", bare.Error())
}
