package index

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIVersion = "providers.workflow-things.io/v1alpha1"
	DefaultKind       = "ManifestIndex"
)

// Index represents an index.yaml file enumerating the manifest files of a
// provider catalog checkout
type Index struct {
	APIVersion string   `yaml:"apiVersion,omitempty"`
	Kind       string   `yaml:"kind,omitempty"`
	Manifests  []string `yaml:"manifests"`
}

// Load reads and parses an index.yaml file
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index file: %w", err)
	}

	var idx Index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing index file: %w", err)
	}

	return &idx, nil
}

// Save writes an Index to a YAML file
func Save(path string, idx *Index) error {
	if idx.APIVersion == "" {
		idx.APIVersion = DefaultAPIVersion
	}
	if idx.Kind == "" {
		idx.Kind = DefaultKind
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshalling index: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing index file: %w", err)
	}

	return nil
}

// AddManifest adds a manifest entry if it doesn't already exist
func AddManifest(idx *Index, path string) {
	for _, m := range idx.Manifests {
		if m == path {
			return
		}
	}
	idx.Manifests = append(idx.Manifests, path)
}

// RemoveManifest removes a manifest entry.
// Returns an error if the entry is not found.
func RemoveManifest(idx *Index, path string) error {
	for i, m := range idx.Manifests {
		if m == path {
			idx.Manifests = append(idx.Manifests[:i], idx.Manifests[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("manifest %q not found in index", path)
}
