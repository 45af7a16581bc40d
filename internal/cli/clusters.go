package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/config"
	"toolbelt.dev/toolbelt/internal/output"
)

// newClustersCmd creates the clusters command
func newClustersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "List the configured cluster nicknames",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.Load()
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			for _, nickname := range registry.Nicknames() {
				cluster, err := registry.Lookup(nickname)
				if err != nil {
					return err
				}
				splog.Info("%s -> %s (%s)", nickname, cluster.Identifier, cluster.Region)
			}
			return nil
		},
	}
}
