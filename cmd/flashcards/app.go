package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/flashcards/internal/config"
	"github.com/phrazzld/flashcards/internal/events"
	"github.com/phrazzld/flashcards/internal/service"
	"github.com/phrazzld/flashcards/internal/shell"
	"github.com/phrazzld/flashcards/internal/store"
	"github.com/spf13/afero"
)

// application holds the dependencies of one trainer run.
type application struct {
	config *config.Config
	logger *slog.Logger

	eventEmitter *events.InMemoryEventEmitter
	session      *service.Session
	shell        *shell.Shell
}

// newApplication wires the deck, session and shell together. The shell
// reads commands from in and prints to out; logs go wherever logger writes.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	fs afero.Fs,
	in io.Reader,
	out io.Writer,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLogHandler(logger))

	var err error
	app.session, err = service.NewSession(store.NewDeck(), fs, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	app.shell, err = shell.New(app.session, in, out, shell.Options{
		ImportPath: cfg.Files.Import,
		ExportPath: cfg.Files.Export,
		Color:      cfg.UI.Color,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create shell: %w", err)
	}

	logger.Info("application initialized",
		slog.String("session_id", app.session.ID().String()),
		slog.Bool("import", cfg.Files.Import != ""),
		slog.Bool("export", cfg.Files.Export != ""))
	return app, nil
}

// Run drives the interactive shell until the user leaves.
func (app *application) Run(ctx context.Context) error {
	if err := app.shell.Run(ctx); err != nil {
		app.logger.Error("session ended with error",
			slog.String("session_id", app.session.ID().String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("session error: %w", err)
	}

	app.logger.Info("session ended",
		slog.String("session_id", app.session.ID().String()))
	return nil
}
