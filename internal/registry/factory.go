package registry

import "fmt"

// Constructor builds a capability implementation from its connection or
// configuration values.
type Constructor func(config map[string]any) (any, error)

// Factories is the registration table a host populates at process startup to
// bind module references to constructors. It replaces dispatch-by-string
// reflection: a module reference resolved from the registry is instantiated
// through an explicit entry here. Populate before serving; read-only after.
type Factories struct {
	constructors map[string]Constructor
}

// NewFactories creates an empty constructor table
func NewFactories() *Factories {
	return &Factories{
		constructors: make(map[string]Constructor),
	}
}

// Register binds a module reference to its constructor.
// Registering the same reference twice is an error.
func (f *Factories) Register(module string, fn Constructor) error {
	if module == "" {
		return fmt.Errorf("module reference is required")
	}
	if fn == nil {
		return fmt.Errorf("constructor for %q is nil", module)
	}
	if _, dup := f.constructors[module]; dup {
		return fmt.Errorf("constructor for %q already registered", module)
	}

	f.constructors[module] = fn
	return nil
}

// New instantiates the implementation behind a module reference.
// Unregistered references fail with a NotFoundError.
func (f *Factories) New(module string, config map[string]any) (any, error) {
	fn, ok := f.constructors[module]
	if !ok {
		return nil, &NotFoundError{Kind: "constructor", Name: module}
	}
	return fn(config)
}

// Has returns true if a constructor is registered for the module reference
func (f *Factories) Has(module string) bool {
	_, ok := f.constructors[module]
	return ok
}

// Unbound returns the module references declared in the registry that have no
// registered constructor, in declared order. Deprecated aliases are covered
// by their replacements and are not reported.
func (f *Factories) Unbound(r *Registry) []string {
	var missing []string
	seen := make(map[string]bool)

	report := func(module string) {
		if module == "" || seen[module] || f.Has(module) {
			return
		}
		seen[module] = true
		missing = append(missing, module)
	}

	for _, in := range r.Integrations() {
		for _, kind := range kindsWithBindings() {
			for _, module := range r.Lookup(kind, in.Name) {
				report(module)
			}
		}
	}
	for _, t := range r.Transfers() {
		report(t.Module)
	}

	return missing
}
