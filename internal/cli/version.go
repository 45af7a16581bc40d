package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/output"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the toolbelt version",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := output.NewSplog()
			splog.Info("toolbelt %s (commit %s, built %s)", version, commit, date)
			return nil
		},
	}
}
