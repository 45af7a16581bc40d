package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("captures trimmed stdout", func(t *testing.T) {
		t.Parallel()

		out, err := Run(context.Background(), "echo", "hello world")
		require.NoError(t, err)
		require.Equal(t, "hello world", out)
	})

	t.Run("returns a CommandError on failure", func(t *testing.T) {
		t.Parallel()

		_, err := Run(context.Background(), "/bin/sh", "-c", "echo oops >&2; exit 3")
		require.Error(t, err)

		var cmdErr *toolbelterrors.CommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, "/bin/sh", cmdErr.Command)
		require.Contains(t, cmdErr.Stderr, "oops")
	})

	t.Run("respects the context deadline", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := Run(ctx, "sleep", "5")
		require.Error(t, err)
	})
}

func TestRunShell(t *testing.T) {
	t.Parallel()

	out, err := RunShell(context.Background(), "printf 'a b c' | tr ' ' '\n' | head -1")
	require.NoError(t, err)
	require.Equal(t, "a", out)
}

func TestRunLines(t *testing.T) {
	t.Parallel()

	t.Run("splits output into lines", func(t *testing.T) {
		t.Parallel()

		lines, err := RunLines(context.Background(), "printf", "one\ntwo")
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("returns empty slice for empty output", func(t *testing.T) {
		t.Parallel()

		lines, err := RunLines(context.Background(), "true")
		require.NoError(t, err)
		require.Empty(t, lines)
	})
}

func TestRunWithInput(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner("")
	out, err := runner.RunWithInput(context.Background(), "hello\n", "cat")
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestRunWithEnv(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner("")
	out, err := runner.RunWithEnv(context.Background(), []string{"TOOLBELT_TEST_VAR=from-env"}, "/bin/sh", "-c", "echo $TOOLBELT_TEST_VAR")
	require.NoError(t, err)
	require.Equal(t, "from-env", out)
}

func TestRunInWorkingDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := NewCommandRunner(dir)
	out, err := runner.Run(context.Background(), "pwd")
	require.NoError(t, err)
	require.Contains(t, out, dir)
}
