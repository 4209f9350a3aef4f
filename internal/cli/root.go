package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/easifyphp/composer-setup/internal/branding"
	"github.com/easifyphp/composer-setup/internal/config"
	"github.com/easifyphp/composer-setup/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		newLogger(os.Stderr, log.InfoLevel).Error(err.Error())
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var opts setupOptions

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` asks for the package name, description, type, license,
minimum PHP version, and author of a freshly created project, then rewrites
composer.json with those values and a matching PSR-4 autoload namespace.

Run it once, right after "composer create-project". With --unlink the setup
binary removes itself after composer.json has been written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(v)
			if err != nil {
				return err
			}
			return runSetup(cmd, settings, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("manifest", branding.ManifestFile(), "Path to the manifest to rewrite")
	flags.String("self-path", "", "Setup artifact removed by unlink (default: this executable)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	bindFlag(v, config.KeyManifest, flags.Lookup("manifest"))
	bindFlag(v, config.KeySelfPath, flags.Lookup("self-path"))
	bindFlag(v, config.KeyLogLevel, flags.Lookup("log-level"))

	cmd.Flags().String("min-php", wizard.DefaultMinPHP, "Lowest PHP version the package may require")
	cmd.Flags().String("test-namespace", wizard.DefaultTestNamespace, "Trailing namespace segment for autoload-dev")
	cmd.Flags().Bool("prune", true, "Offer to remove optional template dependencies")
	cmd.Flags().String("catalogue", "", "YAML file listing optional dependencies (default: built-in list)")
	bindFlag(v, config.KeyMinPHP, cmd.Flags().Lookup("min-php"))
	bindFlag(v, config.KeyTestNamespace, cmd.Flags().Lookup("test-namespace"))
	bindFlag(v, config.KeyPrune, cmd.Flags().Lookup("prune"))
	bindFlag(v, config.KeyCatalogue, cmd.Flags().Lookup("catalogue"))

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the new manifest to stdout instead of writing it")
	cmd.Flags().BoolVar(&opts.unlink, "unlink", false, "Remove the setup artifact after a successful write")

	cmd.AddCommand(newUnlinkCmd(v))
	cmd.AddCommand(newValidateCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// bindFlag panics on a missing flag, which only happens on a typo above.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// loadSettings reads .setup.yaml from the working directory and resolves
// the final settings.
func loadSettings(v *viper.Viper) (*config.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}
	if err := config.Load(v, cwd); err != nil {
		return nil, err
	}
	settings, err := config.Resolve(v)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}
