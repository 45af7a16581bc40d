package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
	"toolbelt.dev/toolbelt/internal/output"
	"toolbelt.dev/toolbelt/internal/shell"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var (
		useShell bool
		dir      string
		timeout  time.Duration
		envVars  []string
	)

	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run an external command with a timeout and captured output",
		Long: `Run an external command with a timeout and captured output.

With --shell the arguments are joined and passed to /bin/sh -c, so pipes
and redirection work. Without it the command is executed directly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			runner := shell.NewCommandRunner(dir)

			name, cmdArgs := args[0], args[1:]
			if useShell {
				name, cmdArgs = "/bin/sh", []string{"-c", strings.Join(args, " ")}
			}

			out, err := runner.RunWithEnv(ctx, envVars, name, cmdArgs...)
			if err != nil {
				var cmdErr *toolbelterrors.CommandError
				if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
					output.NewSplog().Warn("%s", strings.TrimSpace(cmdErr.Stderr))
				}
				return err
			}

			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&useShell, "shell", "s", false, "Run through /bin/sh -c")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Working directory for the command")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Timeout (default 2m)")
	cmd.Flags().StringArrayVarP(&envVars, "env", "e", nil, "Extra KEY=VALUE environment variables for the command")

	return cmd
}
