// Package cli wires the toolbelt's cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "toolbelt",
		Short: "Toolbelt is a grab bag of database, S3, and shell helpers for the data team",
		Long: `Toolbelt is a grab bag of database, S3, and shell helpers for the data team.

Cluster nicknames map to AWS RDS/Redshift clusters; passwords come from
Secrets Manager. Extra clusters can be configured in ~/.toolbelt/clusters.yaml.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetDefaultQuiet(quiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")

	// Add subcommands
	rootCmd.AddCommand(newClustersCmd())
	rootCmd.AddCommand(newConnectCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newS3Cmd())
	rootCmd.AddCommand(newSecretCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
