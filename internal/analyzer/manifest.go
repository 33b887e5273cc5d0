package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest holds the dependency sections of a package.json file. All other
// fields are ignored.
type Manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// LoadManifest reads package.json from the project root. A missing manifest
// returns (nil, nil): detection degrades but the run continues. A manifest
// that exists but does not parse is an error.
func LoadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading package.json: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &m, nil
}

// merged returns dependencies and devDependencies combined into one map.
// devDependencies win on conflict.
func (m *Manifest) merged() map[string]string {
	deps := make(map[string]string, len(m.Dependencies)+len(m.DevDependencies))
	for name, version := range m.Dependencies {
		deps[name] = version
	}
	for name, version := range m.DevDependencies {
		deps[name] = version
	}
	return deps
}
