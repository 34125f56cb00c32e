// Package registry is the built-in tool source: a name-keyed lookup table
// of in-process drivers, treated as immutable once construction finishes.
// A driver is a plain Go function keyed by a string identifier; no
// input/output schema is attached, since builtins here validate their
// own arguments.
package registry

import "context"

// Driver is an in-process built-in tool. Run receives the invocation's
// arguments, environment, and working directory, and returns the process
// exit code convention the invocation runner expects: zero for success.
type Driver interface {
	Run(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error)
}

// DriverFunc adapts a plain function to the Driver interface.
type DriverFunc func(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error)

func (f DriverFunc) Run(ctx context.Context, arguments []string, environment map[string]string, workingDirectory string) (int, error) {
	return f(ctx, arguments, environment, workingDirectory)
}

// Registry is the built-in tool source: driver(name) -> driver or absent.
type Registry struct {
	drivers map[string]Driver
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// Register adds a driver under name. Registering the same name twice
// overwrites the previous driver — the registry is populated once at
// startup, before any build runs, so this is a construction-time
// convenience rather than a runtime contract.
func (r *Registry) Register(name string, driver Driver) {
	r.drivers[name] = driver
}

// Lookup returns the driver registered under name, if any.
func (r *Registry) Lookup(name string) (Driver, bool) {
	d, ok := r.drivers[name]
	return d, ok
}
