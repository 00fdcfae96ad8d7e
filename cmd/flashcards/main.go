// Package main implements the entry point for the flashcards trainer, an
// interactive shell for adding cards, quizzing yourself on them and tracking
// which ones you get wrong.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	cmd := newRootCmd(afero.NewOsFs())
	cmd.SetArgs(normalizeLegacyFlags(os.Args[1:]))

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "flashcards:", err)
		os.Exit(1)
	}
}
