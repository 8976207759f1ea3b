package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// ManifestName is the optional per-application override file living
// beside the entry file.
const ManifestName = "app.yaml"

// Manifest lets an application pin metadata the heuristics would
// otherwise guess. Empty fields keep the guessed values.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Command     string `yaml:"command"`
	Port        int    `yaml:"port"`
}

// LoadManifest reads an application's manifest. A missing manifest is
// normal and returns nil; a present but broken one is a candidate
// failure.
func LoadManifest(directory string) (*Manifest, error) {
	filename := filepath.Join(directory, ManifestName)
	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read manifest %q: %w", filename, err)
	}
	manifest := &Manifest{}
	if err := yaml.UnmarshalStrict(content, manifest); err != nil {
		return nil, fmt.Errorf("could not parse manifest %q: %w", filename, err)
	}
	if err := manifest.validate(filename); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (it *Manifest) validate(filename string) error {
	if it.Category != "" && !ValidCategory(it.Category) {
		return fmt.Errorf("manifest %q names unknown category %q", filename, it.Category)
	}
	if it.Port < 0 {
		return fmt.Errorf("manifest %q names negative port %d", filename, it.Port)
	}
	return nil
}
