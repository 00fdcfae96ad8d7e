package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/flashcards/internal/config"
	"github.com/phrazzld/flashcards/internal/platform/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// legacyFlags are accepted with a single leading dash for compatibility
// with older launch scripts.
var legacyFlags = []string{"import", "export"}

// newRootCmd builds the root command. Card files and logs are accessed through fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "An interactive flashcard trainer",
		Long: `Flashcards is an interactive trainer for term/definition cards.

Cards can be loaded from a file at startup (--import) and written back on
exit (--export). Card files hold one "term:definition" pair per line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWithFlags(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			log, err := logger.Setup(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			app, err := newApplication(cfg, log, fs, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringP("import", "i", "", "load cards from this file at startup")
	flags.StringP("export", "e", "", "save all cards to this file on exit")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (json, text)")
	flags.Bool("color", false, "highlight quiz feedback")

	return cmd
}

// normalizeLegacyFlags rewrites "-import" and "-export" (with or without an
// "=value" suffix) to their double-dash forms.
func normalizeLegacyFlags(args []string) []string {
	normalized := make([]string, len(args))
	for i, arg := range args {
		normalized[i] = arg
		if arg == "--" {
			copy(normalized[i:], args[i:])
			break
		}
		for _, name := range legacyFlags {
			if arg == "-"+name || strings.HasPrefix(arg, "-"+name+"=") {
				normalized[i] = "-" + arg
			}
		}
	}
	return normalized
}
