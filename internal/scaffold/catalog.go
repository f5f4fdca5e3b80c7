package scaffold

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Catalog is the ordered artifact list plus the source skeleton layout.
type Catalog struct {
	Artifacts []Artifact `yaml:"artifacts"`
	Skeleton  Skeleton   `yaml:"skeleton"`
}

// LoadCatalog decodes and validates the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(rawCatalog)
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every artifact is well formed and unique.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Artifacts))
	for i, a := range c.Artifacts {
		if err := validateRelPath(a.Path); err != nil {
			return fmt.Errorf("artifact %d (%s): %w", i, a.Name, err)
		}
		if seen[a.Path] {
			return fmt.Errorf("artifact %d (%s): duplicate path %s", i, a.Name, a.Path)
		}
		seen[a.Path] = true

		switch a.Kind {
		case KindFile:
			if a.Template == "" && a.Default == "" {
				return fmt.Errorf("artifact %s: file needs a template or a default", a.Path)
			}
			if a.Default != "" && !HasDefault(a.Default) {
				return fmt.Errorf("artifact %s: default %q is not embedded", a.Path, a.Default)
			}
		case KindDirectory:
		default:
			return fmt.Errorf("artifact %s: unknown kind %q", a.Path, a.Kind)
		}
		if _, err := a.FileMode(); err != nil {
			return err
		}
	}
	return c.Skeleton.validate()
}

// validateRelPath rejects empty, absolute and escaping paths.
func validateRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if path.IsAbs(p) || strings.Contains(p, `\`) {
		return fmt.Errorf("path %q must be slash-separated and relative", p)
	}
	clean := path.Clean(p)
	if clean != p || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q must be clean and stay inside the project", p)
	}
	return nil
}
