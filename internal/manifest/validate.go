package manifest

import (
	"fmt"
	"regexp"
)

// ValidationError reports a structural problem in a manifest that makes
// loading it fail. Lookups never produce it; only load/build paths do.
type ValidationError struct {
	Manifest string // provider name, if known
	Detail   string
}

func (e *ValidationError) Error() string {
	if e.Manifest == "" {
		return "invalid manifest: " + e.Detail
	}
	return fmt.Sprintf("invalid manifest %q: %s", e.Manifest, e.Detail)
}

const maxIdentifierLength = 250

var identifierRe = regexp.MustCompile(`^[\w.-]+$`)

// ValidIdentifier checks an integration or provider identifier: alphanumeric
// characters, dashes, dots, and underscores, at most 250 characters.
func ValidIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier is empty")
	}
	if len(name) > maxIdentifierLength {
		return fmt.Errorf("identifier %q exceeds %d characters", name, maxIdentifierLength)
	}
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("identifier %q must contain only alphanumeric characters, dashes, dots, and underscores", name)
	}
	return nil
}

// Validate checks referential integrity of a manifest: every binding and
// transfer must reference a declared integration, identifiers must be unique
// and well-formed, connection-type tags must be unique, and deprecated
// aliases must point at a current module of their binding.
//
// Module references are opaque and never validated; a connection type may
// name a hook module that appears in no hooks section.
func Validate(m *ProviderManifest) error {
	if err := ValidIdentifier(m.Name); err != nil {
		return &ValidationError{Detail: fmt.Sprintf("provider name: %v", err)}
	}

	seen := make(map[string]bool, len(m.Integrations))
	for _, in := range m.Integrations {
		if err := ValidIdentifier(in.Name); err != nil {
			return &ValidationError{Manifest: m.Name, Detail: err.Error()}
		}
		if seen[in.Name] {
			return &ValidationError{Manifest: m.Name, Detail: fmt.Sprintf("duplicate integration %q", in.Name)}
		}
		seen[in.Name] = true
	}

	for _, kind := range Kinds() {
		if kind == KindTransfer {
			continue
		}
		for _, b := range m.bindings(kind) {
			if !seen[b.Integration] {
				return &ValidationError{Manifest: m.Name,
					Detail: fmt.Sprintf("%s binding references unknown integration %q", kind, b.Integration)}
			}
			if err := validateAliases(b); err != nil {
				return &ValidationError{Manifest: m.Name,
					Detail: fmt.Sprintf("%s binding for %q: %v", kind, b.Integration, err)}
			}
		}
	}

	for _, t := range m.Transfers {
		if !seen[t.Source] {
			return &ValidationError{Manifest: m.Name,
				Detail: fmt.Sprintf("transfer references unknown source integration %q", t.Source)}
		}
		if !seen[t.Target] {
			return &ValidationError{Manifest: m.Name,
				Detail: fmt.Sprintf("transfer references unknown target integration %q", t.Target)}
		}
		if t.Module == "" {
			return &ValidationError{Manifest: m.Name,
				Detail: fmt.Sprintf("transfer %s -> %s has no module", t.Source, t.Target)}
		}
	}

	tags := make(map[string]string, len(m.ConnectionTypes))
	for _, ct := range m.ConnectionTypes {
		if ct.ConnectionType == "" {
			return &ValidationError{Manifest: m.Name, Detail: "connection type tag is empty"}
		}
		if ct.Hook == "" {
			return &ValidationError{Manifest: m.Name,
				Detail: fmt.Sprintf("connection type %q has no hook", ct.ConnectionType)}
		}
		if hook, dup := tags[ct.ConnectionType]; dup {
			return &ValidationError{Manifest: m.Name,
				Detail: fmt.Sprintf("connection type %q mapped to both %q and %q", ct.ConnectionType, hook, ct.Hook)}
		}
		tags[ct.ConnectionType] = ct.Hook
	}

	return nil
}

func validateAliases(b Binding) error {
	current := make(map[string]bool, len(b.Modules))
	for _, mod := range b.Modules {
		current[mod] = true
	}

	for _, a := range b.Deprecated {
		if a.Module == "" {
			return fmt.Errorf("deprecated alias has no module")
		}
		if a.SupersededBy == "" {
			return fmt.Errorf("deprecated module %q has no superseded-by", a.Module)
		}
		if !current[a.SupersededBy] {
			return fmt.Errorf("deprecated module %q superseded by %q, which is not a current module", a.Module, a.SupersededBy)
		}
	}

	return nil
}
