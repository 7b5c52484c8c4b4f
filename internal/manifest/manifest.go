package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIVersion = "providers.workflow-things.io/v1alpha1"
	DefaultKind       = "ProviderManifest"
)

// Load reads, parses, and validates a provider manifest file
func Load(path string) (*ProviderManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates a provider manifest document
func Parse(data []byte) (*ProviderManifest, error) {
	var m ProviderManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Save writes a provider manifest to a YAML file
func Save(path string, m *ProviderManifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest file: %w", err)
	}

	return nil
}

// Marshal serializes a provider manifest back to its declarative form
func Marshal(m *ProviderManifest) ([]byte, error) {
	if m.APIVersion == "" {
		m.APIVersion = DefaultAPIVersion
	}
	if m.Kind == "" {
		m.Kind = DefaultKind
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshalling manifest: %w", err)
	}

	return data, nil
}

// New creates an empty provider manifest with default header fields
func New(name string) *ProviderManifest {
	return &ProviderManifest{
		APIVersion:   DefaultAPIVersion,
		Kind:         DefaultKind,
		Name:         name,
		Integrations: []Integration{},
	}
}

// FindIntegration returns a pointer to the integration with the given name, or nil
func FindIntegration(m *ProviderManifest, name string) *Integration {
	for i, in := range m.Integrations {
		if in.Name == name {
			return &m.Integrations[i]
		}
	}
	return nil
}

// AddIntegration adds an integration record to the manifest.
// If a record with the same name already exists, it is replaced.
func AddIntegration(m *ProviderManifest, in Integration) {
	for i, existing := range m.Integrations {
		if existing.Name == in.Name {
			m.Integrations[i] = in
			return
		}
	}
	m.Integrations = append(m.Integrations, in)
}

// RemoveIntegration removes an integration record by name, along with every
// binding it owns and every transfer touching it.
// Returns an error if the integration is not found.
func RemoveIntegration(m *ProviderManifest, name string) error {
	found := false
	for i, in := range m.Integrations {
		if in.Name == name {
			m.Integrations = append(m.Integrations[:i], m.Integrations[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("integration %q not found in manifest", name)
	}

	m.Operators = dropOwnedBindings(m.Operators, name)
	m.Hooks = dropOwnedBindings(m.Hooks, name)
	m.Sensors = dropOwnedBindings(m.Sensors, name)
	m.SecretsBackends = dropOwnedBindings(m.SecretsBackends, name)
	m.Logging = dropOwnedBindings(m.Logging, name)

	var transfers []Transfer
	for _, t := range m.Transfers {
		if t.Source == name || t.Target == name {
			continue
		}
		transfers = append(transfers, t)
	}
	m.Transfers = transfers

	return nil
}

// FilterIntegrations returns integrations matching the given tag.
// An empty tag is treated as a wildcard.
func FilterIntegrations(m *ProviderManifest, tag string) []Integration {
	var result []Integration
	for _, in := range m.Integrations {
		if tag != "" && !hasTag(in.Tags, tag) {
			continue
		}
		result = append(result, in)
	}
	return result
}

func dropOwnedBindings(bindings []Binding, integration string) []Binding {
	var result []Binding
	for _, b := range bindings {
		if b.Integration == integration {
			continue
		}
		result = append(result, b)
	}
	return result
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
