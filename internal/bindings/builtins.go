package bindings

import (
	"math"

	"github.com/rpreston/whetstone/internal/value"
)

// builtinDefinitions installs the standard set from spec.md §4.2 for
// one value kind family. The binding functions are written purely in
// terms of value.Kind so the same table works for every family; only
// the zero-arity constants need to know which family they are being
// built for.
//
// Grounded on _examples/original_source/src/bindings/definitions.rs,
// with one correction: "Modulus" is bound to the binary modulo
// function, not to abs (see SPEC_FULL.md §4.2/§9 — the original
// table's entry is treated as a bug, not a behavior to port).
func builtinDefinitions(family string) map[string]Binding {
	fam, ok := value.Lookup(family)
	if !ok {
		fam = value.Float64Family
	}

	out := make(map[string]Binding)
	add := func(label string, arity int, fn Func) {
		out[label] = Binding{Label: label, Arity: arity, Func: fn}
	}

	add("Pi", 0, func(args []value.Kind) (value.Kind, error) {
		return fam.FromFloat64(math.Pi), nil
	})
	add("Euler", 0, func(args []value.Kind) (value.Kind, error) {
		return fam.FromFloat64(math.E), nil
	})

	add("Add", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Add(args[1]) })
	add("Subtract", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Subtract(args[1]) })
	add("Multiply", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Multiply(args[1]) })
	add("Divide", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Divide(args[1]) })
	add("Exponent", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Powf(args[1]) })
	add("Modulus", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Modulus(args[1]) })
	add("Negate", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Negate(), nil })

	add("SquareRoot", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Sqrt() })
	add("Sine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Sin(), nil })
	add("Cosine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Cos(), nil })
	add("Tangent", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Tan(), nil })
	add("Arcsine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Asin() })
	add("Arccosine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Acos() })
	add("Arctangent", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Atan(), nil })
	add("HypSine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Sinh(), nil })
	add("HypCosine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Cosh(), nil })
	add("HypTangent", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Tanh(), nil })
	add("InvHypSine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Asinh(), nil })
	add("InvHypCosine", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Acosh() })
	add("InvHypTangent", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Atanh() })
	add("Cosecant", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Cosecant() })
	add("Secant", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Secant() })
	add("Cotangent", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Cotangent() })
	add("LogBaseE", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Ln() })
	add("LogBase10", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Log10() })
	add("Abs", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Abs(), nil })
	add("Ceiling", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Ceil(), nil })
	add("Floor", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Floor(), nil })
	add("Round", 1, func(args []value.Kind) (value.Kind, error) { return args[0].Round(), nil })
	add("Min", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Min(args[1]) })
	add("Max", 2, func(args []value.Kind) (value.Kind, error) { return args[0].Max(args[1]) })

	return out
}
