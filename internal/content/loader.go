package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// DefaultYAML returns the embedded default content.
func DefaultYAML() []byte {
	return defaultContentYAML
}

// Default returns the embedded default portfolio.
func Default() (Portfolio, error) {
	return Parse(defaultContentYAML)
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("content: cannot parse: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Load loads portfolio content.
// Search order: customPath -> ~/.folio/content.yaml -> ./configs/content.yaml -> embedded default
func Load(customPath string) (Portfolio, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Portfolio{}, fmt.Errorf("content: cannot read %s: %w", customPath, err)
		}
		p, err := Parse(data)
		if err != nil {
			return Portfolio{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return p, nil
	}

	// User and local files are optional; a broken one falls through.
	for _, path := range []string{userContentPath(), filepath.Join("configs", "content.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if p, err := Parse(data); err == nil {
				return p, nil
			}
		}
	}

	return Default()
}

func userContentPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".folio", "content.yaml")
}
