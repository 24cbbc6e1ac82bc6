// Package bindings implements the process-wide, per-value-kind
// binding registry: a label -> (function, arity) map consulted by the
// rule compiler when resolving an Operators/ImplicitOperators/
// Functions/Constants rule's binding label.
//
// Modeled on go-dws's internal/interp/builtins.Registry: a
// sync.RWMutex-guarded map, built-ins installed once, user entries
// added afterward. Unlike that registry, lookup here is exact-match,
// not case-folded — spec.md §4.2 specifies exact label match.
package bindings

import (
	"sort"
	"sync"

	"github.com/rpreston/whetstone/internal/value"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Func is a binding's implementation: a pure function over a fixed
// number of Kind arguments that may fail with a value-kind-dependent
// domain error (division by zero, sqrt of a negative number, etc).
type Func func(args []value.Kind) (value.Kind, error)

// Binding is a labeled numeric function with fixed arity.
type Binding struct {
	Label string
	Arity int
	Func  Func
}

type perFamily struct {
	mu       sync.RWMutex
	once     sync.Once
	builtins map[string]Binding
	user     map[string]Binding
}

// Registry is the process-wide binding registry, partitioned by value
// kind family.
type Registry struct {
	mu        sync.Mutex
	families  map[string]*perFamily
	installer func(family string) map[string]Binding
}

// global is the single process-wide registry used by the public API.
// The rule compiler resolves each binding label with Lookup and keeps
// its own copy of the Binding, so registration afterward does not
// affect already-compiled rulesets (per spec.md §5).
var global = NewRegistry(builtinDefinitions)

// NewRegistry constructs a Registry with the given built-in installer,
// used directly only by tests; production code uses the package-level
// Global().
func NewRegistry(installer func(family string) map[string]Binding) *Registry {
	return &Registry{
		families:  make(map[string]*perFamily),
		installer: installer,
	}
}

// Global returns the process-wide registry.
func Global() *Registry { return global }

func (r *Registry) familyState(family string) *perFamily {
	r.mu.Lock()
	f, ok := r.families[family]
	if !ok {
		f = &perFamily{user: make(map[string]Binding)}
		r.families[family] = f
	}
	r.mu.Unlock()

	f.once.Do(func() {
		f.builtins = r.installer(family)
	})
	return f
}

// Register adds a user binding for the given value kind family. It
// fails with BindingError if label collides with a built-in or an
// already-registered user binding.
func (r *Registry) Register(family, label string, fn Func, arity int) error {
	f := r.familyState(family)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.builtins[label]; exists {
		return wserrors.New(wserrors.BindingError, "binding already registered for label %q and kind %q", label, family)
	}
	if _, exists := f.user[label]; exists {
		return wserrors.New(wserrors.BindingError, "binding already registered for label %q and kind %q", label, family)
	}
	f.user[label] = Binding{Label: label, Arity: arity, Func: fn}
	return nil
}

// Lookup finds a binding by exact label match, built-ins first tier,
// user registrations second.
func (r *Registry) Lookup(family, label string) (Binding, bool) {
	f := r.familyState(family)

	f.mu.RLock()
	defer f.mu.RUnlock()

	if b, ok := f.builtins[label]; ok {
		return b, true
	}
	b, ok := f.user[label]
	return b, ok
}

// All returns every binding registered for a family (built-in and
// user), sorted by label, used for introspection (cmd/whetstone
// "grammar bindings").
func (r *Registry) All(family string) []Binding {
	f := r.familyState(family)

	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Binding, 0, len(f.builtins)+len(f.user))
	for _, b := range f.builtins {
		out = append(out, b)
	}
	for _, b := range f.user {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
