package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/output"
	"toolbelt.dev/toolbelt/internal/prompt"
)

// newTablesCmd creates the tables command
func newTablesCmd() *cobra.Command {
	var (
		readOnly bool
		region   string
	)

	cmd := &cobra.Command{
		Use:   "tables <nickname> <schema>",
		Short: "List the tables and views in a schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, _, err := connectByNickname(cmd.Context(), args[0], region, readOnly)
			if err != nil {
				return err
			}
			defer pool.Close()

			splog := output.NewSplog()
			exists, tables, err := db.SchemaExists(cmd.Context(), pool, args[1])
			if err != nil {
				return err
			}
			if !exists {
				splog.Warn("Schema %q does not exist.", args[1])
				if !prompt.IsInteractive() {
					return nil
				}
				_, tables, err = prompt.EnsureSchema(cmd.Context(), pool, args[1])
				if err != nil {
					return err
				}
			}

			for _, table := range tables {
				splog.Info("%-5s %s", table.Kind, table.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&readOnly, "read-only", "r", false, "Use the reader endpoint when the cluster has one")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")

	return cmd
}
