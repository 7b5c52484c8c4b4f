package registry

import "fmt"

// NotFoundError reports a query that is expected to have a single resolved
// target but has none, e.g. an unknown connection-type tag or an unregistered
// constructor. Capability lookups that may legitimately be empty never
// produce it.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
