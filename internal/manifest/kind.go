package manifest

// Kind identifies one capability role an integration can provide
type Kind string

const (
	KindOperator       Kind = "operator"
	KindHook           Kind = "hook"
	KindSensor         Kind = "sensor"
	KindTransfer       Kind = "transfer"
	KindSecretsBackend Kind = "secrets-backend"
	KindLogHandler     Kind = "log-handler"
)

// Kinds lists all capability kinds in a stable order
func Kinds() []Kind {
	return []Kind{
		KindOperator,
		KindHook,
		KindSensor,
		KindTransfer,
		KindSecretsBackend,
		KindLogHandler,
	}
}

// ParseKind converts a kind literal into a Kind.
// Unknown literals fail with a ValidationError.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindOperator, KindHook, KindSensor, KindTransfer, KindSecretsBackend, KindLogHandler:
		return Kind(s), nil
	}
	return "", &ValidationError{Detail: "unknown capability kind: " + s}
}

func (k Kind) String() string {
	return string(k)
}

// bindings returns the manifest section holding bindings of the given kind.
// Transfers are not a Binding section and return nil.
func (m *ProviderManifest) bindings(kind Kind) []Binding {
	switch kind {
	case KindOperator:
		return m.Operators
	case KindHook:
		return m.Hooks
	case KindSensor:
		return m.Sensors
	case KindSecretsBackend:
		return m.SecretsBackends
	case KindLogHandler:
		return m.Logging
	}
	return nil
}
