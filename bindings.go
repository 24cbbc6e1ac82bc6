package whetstone

import (
	"github.com/rpreston/whetstone/internal/bindings"
	"github.com/rpreston/whetstone/internal/value"
)

// BindingInfo describes one registered binding for introspection
// (cmd/whetstone's "grammar bindings" and host tooling).
type BindingInfo struct {
	Label string
	Arity int
}

// Func is the signature of a user binding: a pure function over a
// fixed number of value.Kind arguments.
type Func = bindings.Func

// RegisterBinding adds a user-defined function under label for the
// given value kind, failing with a BindingError if label collides with
// a built-in or an already-registered user binding. Registration is
// process-wide and append-only; it affects every Parser built
// afterward for that value kind, not ones already constructed.
func RegisterBinding(kind, label string, arity int, fn Func) error {
	return bindings.Global().Register(kind, label, fn, arity)
}

// ListBindings returns every binding registered for kind (built-in and
// user), sorted by label.
//
// Grounded on go-dws's builtins.Registry.AllFunctions.
func ListBindings(kind string) []BindingInfo {
	all := bindings.Global().All(kind)
	out := make([]BindingInfo, len(all))
	for i, b := range all {
		out[i] = BindingInfo{Label: b.Label, Arity: b.Arity}
	}
	return out
}

// ValueKinds returns the names of the built-in value kind families
// ("float32", "float64").
func ValueKinds() []string { return value.Names() }
