package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/output"
	"toolbelt.dev/toolbelt/internal/prompt"
)

const previewRows = 10

// newQueryCmd creates the query command
func newQueryCmd() *cobra.Command {
	var (
		readOnly bool
		region   string
		where    string
		limit    int
		random   bool
		latest   bool
		csvName  string
	)

	cmd := &cobra.Command{
		Use:   "query <nickname> <schema> <table>",
		Short: "Run a SELECT * against a table and preview or export the results",
		Long: `Run a SELECT * against a table and preview or export the results.

With --latest the table argument is treated as a base name and the newest
dated table (base_YYYYMMDD) is queried when the base name itself does not
exist.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nickname, schema, table := args[0], args[1], args[2]

			pool, registry, err := connectByNickname(cmd.Context(), nickname, region, readOnly)
			if err != nil {
				return err
			}
			defer pool.Close()

			splog := output.NewSplog()

			if latest {
				resolved, err := db.FindTableToQuery(cmd.Context(), pool, schema, table)
				if err != nil {
					return err
				}
				if resolved != table {
					splog.Info("Querying %q as the newest table matching %q", resolved, table)
				}
				table = resolved
			}

			clause := where
			if clause != "" && !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(clause)), "WHERE") {
				clause = "WHERE " + clause
			}

			result, err := db.Select(cmd.Context(), pool, schema, table, db.SelectOptions{
				Clause: clause,
				Limit:  limit,
				Random: random,
			})
			if err != nil {
				return err
			}

			if result.Empty() {
				splog.Info("The query did not return any results")
				return nil
			}

			splog.Info("Query returned %d results", len(result.Rows))
			splog.Info("%s", strings.Join(result.Columns, " | "))
			for _, row := range result.Head(previewRows) {
				splog.Info("%s", strings.Join(row, " | "))
			}

			if csvName == "" && prompt.Confirm("Save the full results to CSV?") {
				csvName = prompt.InputWithDefault("What should the file be called?", table+".csv")
			}
			if csvName != "" {
				path := filepath.Join(registry.Settings.ResultsDir, csvName)
				if err := result.WriteCSV(path); err != nil {
					return err
				}
				splog.Info("Results written to %s", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&readOnly, "read-only", "r", false, "Use the reader endpoint when the cluster has one")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVarP(&where, "where", "w", "", "WHERE clause (the keyword is optional)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "LIMIT for the query (0 = no limit)")
	cmd.Flags().BoolVar(&random, "random", false, "Sample roughly a tenth of rows")
	cmd.Flags().BoolVar(&latest, "latest", false, "Resolve the newest dated table for the base name")
	cmd.Flags().StringVar(&csvName, "csv", "", "Write the full results to this CSV in the results folder")

	return cmd
}
