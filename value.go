package whetstone

import "github.com/rpreston/whetstone/internal/value"

// Value is the numeric value kind every Expression evaluates to and
// every Variable holds. See internal/value.Kind for the full
// arithmetic/transcendental capability set; hosts normally only need
// String() and the constructors below.
type Value = value.Kind

// Float32 wraps a float32 constant as a Value, for assigning variables
// of a Parser built with WithValueKind("float32").
func Float32(v float32) Value { return value.NewFloat32(v) }

// Float64 wraps a float64 constant as a Value, for assigning variables
// of a Parser built with WithValueKind("float64") (the default).
func Float64(v float64) Value { return value.NewFloat64(v) }
