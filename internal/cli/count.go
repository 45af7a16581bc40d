package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/output"
)

// newCountCmd creates the count command
func newCountCmd() *cobra.Command {
	var (
		readOnly bool
		region   string
	)

	cmd := &cobra.Command{
		Use:   "count <nickname> <schema> <table>",
		Short: "Show the row count of a table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, _, err := connectByNickname(cmd.Context(), args[0], region, readOnly)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.RowCount(cmd.Context(), pool, args[1], args[2])
			if err != nil {
				return err
			}

			output.NewSplog().Info("%s.%s has %d rows", args[1], args[2], count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&readOnly, "read-only", "r", false, "Use the reader endpoint when the cluster has one")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")

	return cmd
}
