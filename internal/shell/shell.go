// Package shell implements the interactive command loop of the trainer.
//
// Every line the shell prints and every line it reads (prefixed with "> ")
// is appended to the session transcript, which the log command saves.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/platform/cardfile"
	"github.com/phrazzld/flashcards/internal/service"
	"github.com/phrazzld/flashcards/internal/service/quiz"
	"github.com/phrazzld/flashcards/internal/store"
)

// Options configures a Shell.
type Options struct {
	// ImportPath is loaded once before the first prompt when set.
	ImportPath string

	// ExportPath receives every card on exit when set.
	ExportPath string

	// Color highlights quiz feedback on the terminal. The transcript is never coloured.
	Color bool
}

// Shell reads commands from an input stream and prints the replies.
type Shell struct {
	session *service.Session
	in      *bufio.Reader
	out     io.Writer
	opts    Options
	logger  *slog.Logger

	correct *color.Color
	wrong   *color.Color

	// err is the first write error; once set every later write is skipped.
	err error
}

var _ quiz.Asker = (*Shell)(nil)

// New creates a Shell for session reading from in and writing to out.
func New(
	session *service.Session,
	in io.Reader,
	out io.Writer,
	opts Options,
	logger *slog.Logger,
) (*Shell, error) {
	if session == nil {
		return nil, domain.NewValidationError("session", "cannot be nil", domain.ErrValidation)
	}
	if in == nil {
		return nil, domain.NewValidationError("in", "cannot be nil", domain.ErrValidation)
	}
	if out == nil {
		return nil, domain.NewValidationError("out", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Shell{
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
		opts:    opts,
		logger:  logger.With(slog.String("component", "shell")),
	}
	if opts.Color {
		s.correct = color.New(color.FgGreen)
		s.correct.EnableColor()
		s.wrong = color.New(color.FgRed)
		s.wrong.EnableColor()
	}
	return s, nil
}

// Run imports the configured card file and then processes commands until
// exit or end of input. It returns an error only when reading input or
// writing output fails.
func (s *Shell) Run(ctx context.Context) error {
	if s.opts.ImportPath != "" {
		s.importCards(ctx, s.opts.ImportPath)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.say(MsgMenu)
		command, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("end of input, leaving")
			s.exit(ctx)
			return s.err
		}
		if err != nil {
			return err
		}

		s.logger.Debug("command received", slog.String("command", command))
		done, err := s.dispatch(ctx, command)
		if err != nil {
			return err
		}
		if done {
			return s.err
		}
		if s.err != nil {
			return s.err
		}
	}
}

// dispatch runs a single command. It reports whether the session is over.
func (s *Shell) dispatch(ctx context.Context, command string) (bool, error) {
	var err error
	switch command {
	case CmdAdd:
		err = s.add(ctx)
	case CmdAsk:
		err = s.ask(ctx)
	case CmdLog:
		err = s.saveLog(ctx)
	case CmdHardest:
		s.say(msgHardest(s.session.HardestCards(ctx)))
	case CmdReset:
		s.session.ResetStats(ctx)
		s.say(MsgStatsReset)
	case CmdExit:
		s.exit(ctx)
		return true, nil
	default:
		s.say(msgUnknownCommand(command))
	}

	if errors.Is(err, io.EOF) {
		s.exit(ctx)
		return true, nil
	}
	return false, err
}

func (s *Shell) add(ctx context.Context) error {
	s.say(MsgCardPrompt)
	term, err := s.readLine()
	if err != nil {
		return err
	}
	if s.session.HasTerm(term) {
		s.say(msgCardExists(term))
		return nil
	}

	s.say(MsgDefinitionPrompt)
	definition, err := s.readLine()
	if err != nil {
		return err
	}

	card, err := s.session.AddCard(ctx, term, definition)
	switch {
	case errors.Is(err, store.ErrDuplicateTerm):
		s.say(msgCardExists(term))
	case errors.Is(err, store.ErrDuplicateDefinition):
		s.say(msgDefinitionExists(definition))
	case err != nil:
		return err
	default:
		s.say(msgPairAdded(card.Term, card.Definition))
	}
	return nil
}

func (s *Shell) ask(ctx context.Context) error {
	s.say(MsgTimesPrompt)
	input, err := s.readLine()
	if err != nil {
		return err
	}

	times, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		s.say(msgInvalidNumber(input))
		return nil
	}

	_, err = s.session.Quiz(ctx, times, s)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, quiz.ErrInvalidTimes):
		s.say(msgInvalidNumber(input))
		return nil
	case errors.Is(err, quiz.ErrEmptyStore):
		s.say(MsgNoCards)
		return nil
	default:
		return err
	}
}

// Ask implements quiz.Asker.
func (s *Shell) Ask(_ context.Context, term string) (string, error) {
	s.say(msgAskDefinition(term))
	if s.err != nil {
		return "", s.err
	}
	return s.readLine()
}

// Feedback implements quiz.Asker.
func (s *Shell) Feedback(_ context.Context, result quiz.Result) error {
	msg := msgFeedback(result)
	highlight := s.wrong
	if result.Correct() {
		highlight = s.correct
	}
	s.sayStyled(msg, highlight)
	return s.err
}

func (s *Shell) saveLog(ctx context.Context) error {
	s.say(MsgFileNamePrompt)
	path, err := s.readLine()
	if err != nil {
		return err
	}

	if err := s.session.SaveLog(ctx, path); err != nil {
		s.say(MsgLogSaveFailed)
		return nil
	}
	s.say(MsgLogSaved)
	return nil
}

func (s *Shell) importCards(ctx context.Context, path string) {
	count, err := s.session.ImportFile(ctx, path)
	switch {
	case errors.Is(err, cardfile.ErrFileNotFound):
		s.say(MsgFileNotFound)
	case err != nil:
		s.say(MsgCardsLoadFailed)
	default:
		s.say(msgCardsLoaded(count))
	}
}

func (s *Shell) exit(ctx context.Context) {
	s.say(MsgBye)
	if s.opts.ExportPath == "" {
		return
	}

	count, err := s.session.ExportFile(ctx, s.opts.ExportPath)
	if err != nil {
		s.say(MsgCardsSaveFailed)
		return
	}
	s.say(msgCardsSaved(count))
}

// readLine reads one line without its line terminator and records it in the
// transcript. A final line without a newline is returned normally; io.EOF is
// returned only when nothing is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	s.session.Transcript().RecordInput(line)
	return line, nil
}

func (s *Shell) say(msg string) {
	s.sayStyled(msg, nil)
}

// sayStyled prints msg, highlighted when c is set, and records it uncoloured.
func (s *Shell) sayStyled(msg string, c *color.Color) {
	s.session.Transcript().RecordOutput(msg)
	if s.err != nil {
		return
	}

	printed := msg
	if c != nil {
		printed = c.Sprint(msg)
	}
	if _, err := fmt.Fprintln(s.out, printed); err != nil {
		s.err = fmt.Errorf("failed to write output: %w", err)
	}
}
