// Package branding provides compile-time identity values for the CLI.
//
// Template maintainers edit branding.yaml in this package; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	ManifestFile string `yaml:"manifest_file"`
	ConfigFile   string `yaml:"config_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "composer-setup",
			DisplayName:  "Composer Setup",
			Description:  "Customize composer.json for a freshly created PHP project",
			EnvPrefix:    "SETUP",
			GoModule:     "github.com/easifyphp/composer-setup",
			ManifestFile: "composer.json",
			ConfigFile:   ".setup.yaml",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "composer-setup").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "SETUP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ManifestFile returns the default manifest file name (e.g., "composer.json").
func ManifestFile() string { load(); return defaults.ManifestFile }

// ConfigFile returns the optional project-level settings file name.
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("min_php") → "SETUP_MIN_PHP".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
