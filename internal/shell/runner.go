// Package shell provides a small wrapper for running external commands and
// capturing their output.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

// DefaultCommandTimeout is the default timeout for external commands
const DefaultCommandTimeout = 2 * time.Minute

// Runner is the interface for running external commands. It exists so callers
// that shell out (e.g. the lastpass manager) can be tested with a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// CommandRunner handles execution of external commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// Run executes a command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return r.runInternal(ctx, "", nil, name, args...)
}

// RunWithInput executes a command with the given stdin and returns the trimmed output
func (r *CommandRunner) RunWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	return r.runInternal(ctx, input, nil, name, args...)
}

// RunWithEnv executes a command with extra environment variables ("KEY=VALUE")
// appended to the current environment, and returns the trimmed output.
func (r *CommandRunner) RunWithEnv(ctx context.Context, env []string, name string, args ...string) (string, error) {
	return r.runInternal(ctx, "", env, name, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, input string, env []string, name string, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", toolbelterrors.NewCommandError(name, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", toolbelterrors.NewCommandError(name, args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Run executes a command using the default runner and returns the trimmed output
func Run(ctx context.Context, name string, args ...string) (string, error) {
	return defaultRunner.Run(ctx, name, args...)
}

// RunShell executes a command line through `/bin/sh -c` using the default runner
// and returns the trimmed output.
func RunShell(ctx context.Context, cmdline string) (string, error) {
	return defaultRunner.Run(ctx, "/bin/sh", "-c", cmdline)
}

// RunLines executes a command using the default runner and returns output as lines
func RunLines(ctx context.Context, name string, args ...string) ([]string, error) {
	output, err := Run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
