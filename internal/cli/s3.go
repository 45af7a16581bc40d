package cli

import (
	"github.com/spf13/cobra"

	"toolbelt.dev/toolbelt/internal/awsx"
	"toolbelt.dev/toolbelt/internal/config"
	"toolbelt.dev/toolbelt/internal/output"
	"toolbelt.dev/toolbelt/internal/prompt"
	"toolbelt.dev/toolbelt/internal/s3util"
)

// newS3Cmd creates the s3 command group
func newS3Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "s3",
		Short: "Move files between the local machine and S3",
	}

	cmd.AddCommand(newS3UpCmd())
	cmd.AddCommand(newS3DownCmd())
	cmd.AddCommand(newS3ExistsCmd())
	cmd.AddCommand(newS3MkdirCmd())

	return cmd
}

func s3ClientAndRegion(cmd *cobra.Command, region string) (*awsx.Clients, string, error) {
	if region == "" {
		registry, err := config.Load()
		if err != nil {
			return nil, "", err
		}
		region = registry.Settings.Region
	}
	clients, err := awsx.NewClients(cmd.Context(), region)
	if err != nil {
		return nil, "", err
	}
	return clients, region, nil
}

func newS3UpCmd() *cobra.Command {
	var (
		region string
		prefix string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "up <bucket> [local-file]",
		Short: "Upload a local file to a bucket",
		Long: `Upload a local file to a bucket.

When no local file is given and the session is interactive, the file is
picked with a prompt.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := output.NewSplog()

			var localPath string
			if len(args) == 2 {
				localPath = args[1]
			} else {
				_, _, picked, err := prompt.PickFile(splog, "Which file should be uploaded?", "Which directory is it in?", ".")
				if err != nil {
					return err
				}
				localPath = picked
			}

			clients, region, err := s3ClientAndRegion(cmd, region)
			if err != nil {
				return err
			}

			url, err := s3util.Upload(cmd.Context(), clients.S3, args[0], region, localPath, prefix, name)
			if err != nil {
				return err
			}

			splog.Info("Uploaded %s to s3://%s", localPath, args[0])
			splog.Tip("Console link: %s", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Destination prefix inside the bucket")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Object name (defaults to the local filename)")

	return cmd
}

func newS3DownCmd() *cobra.Command {
	var (
		region   string
		localDir string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "down <bucket> <key>",
		Short: "Download an object to the local machine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, _, err := s3ClientAndRegion(cmd, region)
			if err != nil {
				return err
			}

			path, err := s3util.Download(cmd.Context(), clients.S3, args[0], args[1], localDir, name)
			if err != nil {
				return err
			}

			output.NewSplog().Info("Downloaded s3://%s/%s to %s", args[0], args[1], path)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVarP(&localDir, "dir", "d", ".", "Local directory to download into")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Local filename (defaults to the object name)")

	return cmd
}

func newS3MkdirCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "mkdir <bucket> <prefix>",
		Short: "Create a prefix (folder) in a bucket if it does not exist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, _, err := s3ClientAndRegion(cmd, region)
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			exists, err := s3util.PrefixExists(cmd.Context(), clients.S3, args[0], args[1])
			if err != nil {
				return err
			}
			if exists {
				splog.Info("s3://%s/%s already exists", args[0], s3util.EnsureSlash(args[1]))
				return nil
			}

			if err := s3util.EnsurePrefix(cmd.Context(), clients.S3, args[0], args[1]); err != nil {
				return err
			}
			splog.Info("Created s3://%s/%s", args[0], s3util.EnsureSlash(args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region override")

	return cmd
}

func newS3ExistsCmd() *cobra.Command {
	var (
		region string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "exists <bucket> <name>",
		Short: "Check whether an object exists in a bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, _, err := s3ClientAndRegion(cmd, region)
			if err != nil {
				return err
			}

			exists, err := s3util.ObjectExists(cmd.Context(), clients.S3, args[0], args[1], prefix)
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			if exists {
				splog.Info("%q exists in s3://%s/%s", args[1], args[0], s3util.EnsureSlash(prefix))
			} else {
				splog.Warn("%q does not exist in s3://%s/%s", args[1], args[0], s3util.EnsureSlash(prefix))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Prefix to look under")

	return cmd
}
