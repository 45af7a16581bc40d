package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/db"
	"toolbelt.dev/toolbelt/internal/lastpass"
	"toolbelt.dev/toolbelt/internal/output"
)

// newConnectCmd creates the connect command
func newConnectCmd() *cobra.Command {
	var (
		readOnly    bool
		region      string
		useLastpass bool
	)

	cmd := &cobra.Command{
		Use:   "connect <nickname>",
		Short: "Resolve a cluster nickname and verify the database is reachable",
		Long: `Resolve a cluster nickname and verify the database is reachable.

With --lastpass the argument is a Lastpass entry name and the connection
details come from the lpass CLI instead of AWS.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useLastpass {
				details, err := lastpass.New(args[0]).Details(cmd.Context())
				if err != nil {
					return err
				}
				pool, err := db.Connect(cmd.Context(), details)
				if err != nil {
					return err
				}
				pool.Close()
				output.NewSplog().Info("Connection to Lastpass entry %q verified", args[0])
				return nil
			}

			pool, _, err := connectByNickname(cmd.Context(), args[0], region, readOnly)
			if err != nil {
				return err
			}
			defer pool.Close()

			output.NewSplog().Info("Connection to %q verified", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&readOnly, "read-only", "r", false, "Use the reader endpoint when the cluster has one")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().BoolVar(&useLastpass, "lastpass", false, "Treat the argument as a Lastpass entry name")

	return cmd
}
