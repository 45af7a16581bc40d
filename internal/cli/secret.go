package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/awsx"
	"toolbelt.dev/toolbelt/internal/config"
)

// newSecretCmd creates the secret command
func newSecretCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "secret <name>",
		Short: "Print a Secrets Manager secret value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if region == "" {
				registry, err := config.Load()
				if err != nil {
					return err
				}
				region = registry.Settings.Region
			}

			clients, err := awsx.NewClients(cmd.Context(), region)
			if err != nil {
				return err
			}

			value, err := awsx.GetSecret(cmd.Context(), clients.Secrets, args[0])
			if err != nil {
				return err
			}

			// Raw to stdout so the value can be piped
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region override")

	return cmd
}
