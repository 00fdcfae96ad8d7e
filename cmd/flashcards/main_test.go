package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/phrazzld/flashcards/internal/shell"
	"github.com/phrazzld/flashcards/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate moves the test into an empty directory and HOME so no config
// file or .env is picked up, and restores the default logger afterwards.
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("HOME", dir)

	original := slog.Default()
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		slog.SetDefault(original)
	})
}

// execute runs the root command with args and input and returns stdout and stderr.
func execute(t *testing.T, fs afero.Fs, input string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(fs)
	cmd.SetArgs(normalizeLegacyFlags(args))
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestNormalizeLegacyFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "legacy forms",
			args: []string{"-import", "in.txt", "-export", "out.txt"},
			want: []string{"--import", "in.txt", "--export", "out.txt"},
		},
		{
			name: "legacy with value",
			args: []string{"-import=in.txt"},
			want: []string{"--import=in.txt"},
		},
		{
			name: "modern forms untouched",
			args: []string{"--import", "in.txt", "-e", "out.txt", "--color"},
			want: []string{"--import", "in.txt", "-e", "out.txt", "--color"},
		},
		{
			name: "after terminator",
			args: []string{"--", "-import"},
			want: []string{"--", "-import"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, normalizeLegacyFlags(tc.args))
		})
	}
}

func TestRootCommand_ImportAndExport(t *testing.T) {
	isolate(t)

	fs := testutils.NewMemFs(t, map[string]string{"in.txt": "dog:woof\ncat:meow\n"})
	stdout, stderr, err := execute(t, fs, "add\ncow\nmoo\nexit\n",
		"-import", "in.txt", "-export", "out.txt")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Equal(t, "2 cards have been loaded.", lines[0])
	assert.Contains(t, lines, `The pair ("cow":"moo") has been added.`)
	assert.Equal(t, []string{"Bye bye!", "3 cards have been saved."}, lines[len(lines)-2:])
	assert.Equal(t, "dog:woof\ncat:meow\ncow:moo\n", testutils.ReadFile(t, fs, "out.txt"))

	assert.Empty(t, stderr, "default log level keeps the terminal quiet")
}

func TestRootCommand_ShortFlagsAndDebugLogs(t *testing.T) {
	isolate(t)

	fs := testutils.NewMemFs(t, map[string]string{"in.txt": "dog:woof\n"})
	stdout, stderr, err := execute(t, fs, "",
		"-i", "in.txt", "-e", "out.txt", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stdout, "1 cards have been loaded.")
	assert.Contains(t, stdout, "1 cards have been saved.")
	assert.Contains(t, stderr, `"msg":"application initialized"`)
	assert.Contains(t, stderr, `"msg":"session event"`)
	assert.Contains(t, stderr, `"event_type":"cards.imported"`)
	assert.Contains(t, stderr, `"session_id"`)
	assert.Contains(t, stderr, `"component":"session"`)
}

func TestRootCommand_ConfigFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("FLASHCARDS_FILES_EXPORT", "env-out.txt")

	fs := afero.NewMemMapFs()
	_, _, err := execute(t, fs, "add\nsun\nsol\nexit\n")
	require.NoError(t, err)
	assert.Equal(t, "sun:sol\n", testutils.ReadFile(t, fs, "env-out.txt"))

	_, _, err = execute(t, fs, "exit\n", "--export", "flag-out.txt")
	require.NoError(t, err)
	exists, err := afero.Exists(fs, "flag-out.txt")
	require.NoError(t, err)
	assert.True(t, exists, "flags take precedence over the environment")
}

func TestRootCommand_DirectoryPathsAreNotFatal(t *testing.T) {
	isolate(t)
	require.NoError(t, os.Mkdir("cards", 0o755))

	stdout, _, err := execute(t, afero.NewOsFs(), "exit\n", "--import", "cards", "--export", "cards")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"File not found.",
		shell.MsgMenu,
		"Bye bye!",
		"An error occurred while saving the cards.",
	}, strings.Split(strings.TrimSuffix(stdout, "\n"), "\n"))
}

func TestRootCommand_Errors(t *testing.T) {
	isolate(t)

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := execute(t, afero.NewMemMapFs(), "", "--log-level", "loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("unexpected argument", func(t *testing.T) {
		_, _, err := execute(t, afero.NewMemMapFs(), "", "cards.txt")
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := execute(t, afero.NewMemMapFs(), "", "--verbose")
		require.Error(t, err)
	})
}
