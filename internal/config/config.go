package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/easifyphp/composer-setup/internal/branding"
	"github.com/easifyphp/composer-setup/internal/wizard"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Setting keys, shared by the config file, env vars, and flag bindings.
const (
	KeyManifest      = "manifest"
	KeyMinPHP        = "min_php"
	KeyTestNamespace = "test_namespace"
	KeyPrune         = "prune"
	KeyCatalogue     = "catalogue"
	KeySelfPath      = "self_path"
	KeyLogLevel      = "log_level"
)

var namespaceSegment = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Settings is the resolved configuration for one run.
type Settings struct {
	ManifestPath  string
	MinPHP        string
	TestNamespace string
	Prune         bool
	CataloguePath string // empty means the embedded catalogue
	SelfPath      string // empty means the running executable
	LogLevel      log.Level
}

// New returns a Viper instance with defaults and env lookup configured.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyManifest, branding.ManifestFile())
	v.SetDefault(KeyMinPHP, wizard.DefaultMinPHP)
	v.SetDefault(KeyTestNamespace, wizard.DefaultTestNamespace)
	v.SetDefault(KeyPrune, true)
	v.SetDefault(KeyCatalogue, "")
	v.SetDefault(KeySelfPath, "")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	return v
}

// FilePath returns the project settings file inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, branding.ConfigFile())
}

// Load reads the project settings file from dir. A missing file is fine.
func Load(v *viper.Viper, dir string) error {
	path := FilePath(dir)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Resolve validates the current values and returns them as Settings.
func Resolve(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		ManifestPath:  v.GetString(KeyManifest),
		MinPHP:        v.GetString(KeyMinPHP),
		TestNamespace: v.GetString(KeyTestNamespace),
		Prune:         v.GetBool(KeyPrune),
		CataloguePath: v.GetString(KeyCatalogue),
		SelfPath:      v.GetString(KeySelfPath),
	}

	if s.ManifestPath == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyManifest)
	}
	if !wizard.ValidVersion(s.MinPHP) {
		return nil, fmt.Errorf("%s must look like x.y, got %q", KeyMinPHP, s.MinPHP)
	}
	if !namespaceSegment.MatchString(s.TestNamespace) {
		return nil, fmt.Errorf("%s must be a namespace segment such as Tests, got %q", KeyTestNamespace, s.TestNamespace)
	}

	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	s.LogLevel = level

	return s, nil
}
