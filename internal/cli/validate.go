package cli

import (
	"fmt"

	"github.com/easifyphp/composer-setup/internal/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a manifest against the composer schema",
		Long: `Check a manifest against the built-in composer.json schema.

Without an argument the configured manifest (default composer.json) is checked.
Exits non-zero when the file is not valid JSON or has schema issues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				settings, err := loadSettings(v)
				if err != nil {
					return err
				}
				path = settings.ManifestPath
			}

			result, err := manifest.ValidateFile(path)
			if err != nil {
				return fmt.Errorf("validating %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintf(out, "%s is valid\n", path)
				return nil
			}

			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			return fmt.Errorf("%s has %d schema issue(s)", path, len(result.Issues))
		},
	}
}
