// Package value defines the numeric value-kind contract that the
// evaluator operates over, plus the default single- and
// double-precision floating point implementations.
//
// The evaluator (internal/program) never introspects a Kind beyond
// this interface: every binding function, every program atom, and
// every variable cell is typed in terms of Kind, not a concrete
// Go numeric type.
package value

import "fmt"

// Kind is the capability set a numeric value type must provide to be
// usable by the expression engine. Arithmetic and transcendental
// operations that can fail domain-wise (sqrt of a negative number,
// asin outside [-1, 1], division by zero) return an error instead of
// NaN/Inf so such failures surface the same way a binding failure
// does.
type Kind interface {
	fmt.Stringer

	Add(Kind) (Kind, error)
	Subtract(Kind) (Kind, error)
	Multiply(Kind) (Kind, error)
	Divide(Kind) (Kind, error)
	Modulus(Kind) (Kind, error)
	Negate() Kind

	Min(Kind) (Kind, error)
	Max(Kind) (Kind, error)
	Abs() Kind
	Ceil() Kind
	Floor() Kind
	Round() Kind

	Sqrt() (Kind, error)
	Powf(Kind) (Kind, error)
	Ln() (Kind, error)
	Log10() (Kind, error)

	Sin() Kind
	Cos() Kind
	Tan() Kind
	Asin() (Kind, error)
	Acos() (Kind, error)
	Atan() Kind
	Cosecant() (Kind, error)
	Secant() (Kind, error)
	Cotangent() (Kind, error)

	Sinh() Kind
	Cosh() Kind
	Tanh() Kind
	Asinh() Kind
	Acosh() (Kind, error)
	Atanh() (Kind, error)

	// Family identifies which Family produced this value ("float32" or
	// "float64"); bindings are looked up per family.
	Family() string
}

// Family bundles the construction and parsing entry points for one
// concrete Kind implementation. Families are fixed and built in — the
// engine ships exactly two (Float32Family, Float64Family) — unlike
// bindings, hosts cannot register new ones.
type Family struct {
	// Name is the family identifier used to key the binding registry
	// and to select a family by string (e.g. from a CLI flag).
	Name string

	// Zero returns the additive identity for this family.
	Zero func() Kind

	// FromFloat64 constructs a value from a double-precision constant,
	// used for things like built-in constant bindings (Pi, Euler) that
	// are defined once in double precision regardless of family.
	FromFloat64 func(float64) Kind

	// Parse converts a lexeme matched by a Literals-category rule into
	// a Kind, or fails if the lexeme is not a valid literal for this
	// family.
	Parse func(lexeme string) (Kind, error)
}

var families = map[string]Family{
	"float32": Float32Family,
	"float64": Float64Family,
}

// Lookup returns the Family registered under name, if any.
func Lookup(name string) (Family, bool) {
	f, ok := families[name]
	return f, ok
}

// Names returns the names of the built-in families, in a stable order.
func Names() []string {
	return []string{"float32", "float64"}
}
