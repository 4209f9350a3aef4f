package wizard

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

// Dependency is an optional package and the manifest paths tied to it.
type Dependency struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
}

// Catalogue lists the dependencies the pruning pass offers to remove.
type Catalogue struct {
	Dependencies []Dependency `yaml:"dependencies"`
}

// DefaultCatalogue returns the embedded catalogue.
func DefaultCatalogue() (*Catalogue, error) {
	return parseCatalogue(defaultCatalogue, "embedded catalogue")
}

// LoadCatalogue reads a catalogue from a YAML file.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue %s: %w", path, err)
	}
	return parseCatalogue(data, path)
}

func parseCatalogue(data []byte, source string) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	seen := make(map[string]bool, len(c.Dependencies))
	for i, dep := range c.Dependencies {
		if dep.Name == "" {
			return nil, fmt.Errorf("%s: dependency %d has no name", source, i)
		}
		if seen[dep.Name] {
			return nil, fmt.Errorf("%s: dependency %q listed twice", source, dep.Name)
		}
		seen[dep.Name] = true
	}
	return &c, nil
}
