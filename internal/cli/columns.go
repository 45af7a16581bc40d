package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/output"
)

// newColumnsCmd creates the columns command
func newColumnsCmd() *cobra.Command {
	var (
		readOnly bool
		region   string
	)

	cmd := &cobra.Command{
		Use:   "columns <nickname> <schema> <table>",
		Short: "List the columns and data types of a table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, _, err := connectByNickname(cmd.Context(), args[0], region, readOnly)
			if err != nil {
				return err
			}
			defer pool.Close()

			columns, err := db.ColumnsOfTable(cmd.Context(), pool, args[1], args[2])
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			for _, column := range columns {
				splog.Info("%-30s %s", column.Name, column.Type)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&readOnly, "read-only", "r", false, "Use the reader endpoint when the cluster has one")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")

	return cmd
}
