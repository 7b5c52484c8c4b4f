package registry

import (
	"fmt"

	"github.com/workflow-things/providers/internal/manifest"
)

// Registry is the immutable capability index a workflow host queries at
// runtime. It is built once from one or more provider manifests and is safe
// for concurrent readers without locking; nothing mutates it after Build.
type Registry struct {
	integrations []manifest.Integration
	byName       map[string]int

	// bindings[kind][integration] in declared order
	bindings map[manifest.Kind]map[string][]manifest.Binding

	transfers       []manifest.Transfer
	connectionTypes map[string]string // tag -> hook
	ctOrder         []manifest.ConnectionType
	supersedes      map[string]string // deprecated module -> current module
}

// Build validates the given manifests and assembles them into a registry.
// Integration identifiers must be unique across all manifests of one Build
// call. Any structural problem fails with a ValidationError.
func Build(manifests ...*manifest.ProviderManifest) (*Registry, error) {
	r := &Registry{
		byName:          make(map[string]int),
		bindings:        make(map[manifest.Kind]map[string][]manifest.Binding),
		connectionTypes: make(map[string]string),
		supersedes:      make(map[string]string),
	}

	for _, m := range manifests {
		if err := manifest.Validate(m); err != nil {
			return nil, err
		}

		for _, in := range m.Integrations {
			if _, dup := r.byName[in.Name]; dup {
				return nil, &manifest.ValidationError{Manifest: m.Name,
					Detail: fmt.Sprintf("integration %q already declared by another manifest", in.Name)}
			}
			r.byName[in.Name] = len(r.integrations)
			r.integrations = append(r.integrations, in)
		}

		for _, kind := range manifest.Kinds() {
			if kind == manifest.KindTransfer {
				continue
			}
			r.indexBindings(kind, m)
		}

		r.transfers = append(r.transfers, m.Transfers...)

		for _, ct := range m.ConnectionTypes {
			if hook, dup := r.connectionTypes[ct.ConnectionType]; dup {
				return nil, &manifest.ValidationError{Manifest: m.Name,
					Detail: fmt.Sprintf("connection type %q mapped to both %q and %q", ct.ConnectionType, hook, ct.Hook)}
			}
			r.connectionTypes[ct.ConnectionType] = ct.Hook
			r.ctOrder = append(r.ctOrder, ct)
		}
	}

	return r, nil
}

func (r *Registry) indexBindings(kind manifest.Kind, m *manifest.ProviderManifest) {
	byIntegration := r.bindings[kind]
	if byIntegration == nil {
		byIntegration = make(map[string][]manifest.Binding)
		r.bindings[kind] = byIntegration
	}

	var sections []manifest.Binding
	switch kind {
	case manifest.KindOperator:
		sections = m.Operators
	case manifest.KindHook:
		sections = m.Hooks
	case manifest.KindSensor:
		sections = m.Sensors
	case manifest.KindSecretsBackend:
		sections = m.SecretsBackends
	case manifest.KindLogHandler:
		sections = m.Logging
	}

	for _, b := range sections {
		byIntegration[b.Integration] = append(byIntegration[b.Integration], b)
		for _, a := range b.Deprecated {
			r.supersedes[a.Module] = a.SupersededBy
		}
	}
}

// Lookup returns the current module references of the given kind owned by an
// integration, in declared order. Unknown integrations and absent
// capabilities return an empty result; absence is not an error.
func (r *Registry) Lookup(kind manifest.Kind, integration string) []string {
	if kind == manifest.KindTransfer {
		var modules []string
		for _, t := range r.transfers {
			if t.Source == integration {
				modules = append(modules, t.Module)
			}
		}
		return modules
	}

	var modules []string
	for _, b := range r.bindings[kind][integration] {
		modules = append(modules, b.Modules...)
	}
	return modules
}

// LookupAll returns current module references followed by deprecated alias
// modules. Aliases resolve identically to their replacements until the alias
// is removed from the manifest.
func (r *Registry) LookupAll(kind manifest.Kind, integration string) []string {
	modules := r.Lookup(kind, integration)
	if kind == manifest.KindTransfer {
		return modules
	}
	for _, b := range r.bindings[kind][integration] {
		for _, a := range b.Deprecated {
			modules = append(modules, a.Module)
		}
	}
	return modules
}

// ResolveConnectionType resolves a connection-type tag to its owning hook
// module reference. Unknown tags fail with a NotFoundError.
func (r *Registry) ResolveConnectionType(tag string) (string, error) {
	hook, ok := r.connectionTypes[tag]
	if !ok {
		return "", &NotFoundError{Kind: "connection type", Name: tag}
	}
	return hook, nil
}

// Supersedes returns the current module replacing a deprecated one
func (r *Registry) Supersedes(module string) (string, bool) {
	current, ok := r.supersedes[module]
	return current, ok
}

// Integrations returns all integration records in declared order
func (r *Registry) Integrations() []manifest.Integration {
	result := make([]manifest.Integration, len(r.integrations))
	copy(result, r.integrations)
	return result
}

// Integration returns the record for an integration name
func (r *Registry) Integration(name string) (*manifest.Integration, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	in := r.integrations[i]
	return &in, true
}

// HasIntegration returns true if the integration is declared
func (r *Registry) HasIntegration(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Transfers returns all transfer bindings in declared order
func (r *Registry) Transfers() []manifest.Transfer {
	result := make([]manifest.Transfer, len(r.transfers))
	copy(result, r.transfers)
	return result
}

// TransfersFrom returns transfers originating at the given integration
func (r *Registry) TransfersFrom(source string) []manifest.Transfer {
	var result []manifest.Transfer
	for _, t := range r.transfers {
		if t.Source == source {
			result = append(result, t)
		}
	}
	return result
}

func kindsWithBindings() []manifest.Kind {
	return []manifest.Kind{
		manifest.KindOperator,
		manifest.KindHook,
		manifest.KindSensor,
		manifest.KindSecretsBackend,
		manifest.KindLogHandler,
	}
}

// ConnectionTypes returns all connection-type mappings in declared order
func (r *Registry) ConnectionTypes() []manifest.ConnectionType {
	result := make([]manifest.ConnectionType, len(r.ctOrder))
	copy(result, r.ctOrder)
	return result
}
