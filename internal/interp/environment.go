package interp

// Environment is a mapping from name to Value. Each
// method/constructor call gets a brand new, empty Environment (see
// invokeMethod and evalNew) rather than inheriting or copying the
// caller's bindings; there is no parent-pointer chain and no closure
// capture, so a frame only ever holds its own parameters, `this`, and
// `__class__`.
type Environment struct {
	vars map[string]Value
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Get looks up name in this environment only; callers fall back to
// globals themselves, following local-then-global resolution order.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v in this environment, overwriting any existing
// binding.
func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}
