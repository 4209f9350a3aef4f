package cli

import (
	"fmt"

	"github.com/easifyphp/composer-setup/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newUnlinkCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink",
		Short: "Remove the setup artifact",
		Long: `Remove the setup artifact from disk. This cannot be undone.

By default the running executable is removed; use --self-path to point at a
different file, or set self_path in .setup.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(v)
			if err != nil {
				return err
			}

			removed, err := platform.RemoveSelf(settings.SelfPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", removed)
			return nil
		},
	}
}
