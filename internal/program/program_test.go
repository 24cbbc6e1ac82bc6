package program

import (
	"fmt"
	"math"
	"testing"

	"github.com/rpreston/whetstone/internal/bindings"
	"github.com/rpreston/whetstone/internal/value"
)

func addBinding() *bindings.Binding {
	return &bindings.Binding{
		Label: "Add",
		Arity: 2,
		Func:  func(args []value.Kind) (value.Kind, error) { return args[0].Add(args[1]) },
	}
}

func TestProgramEvaluateAddition(t *testing.T) {
	p := &Program{Atoms: []Atom{
		Leaf(value.NewFloat64(1)),
		Leaf(value.NewFloat64(2)),
		CallOf(addBinding()),
	}}

	result, err := p.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.String() != value.NewFloat64(3).String() {
		t.Errorf("Evaluate() = %v, want 3", result)
	}
}

func TestProgramEvaluateVariable(t *testing.T) {
	cell := NewVariableCell("x", value.NewFloat64(0))
	if err := cell.Set(value.NewFloat64(5)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	p := &Program{Atoms: []Atom{VariableRef(cell)}}
	result, err := p.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.String() != value.NewFloat64(5).String() {
		t.Errorf("Evaluate() = %v, want 5", result)
	}
}

func TestProgramEvaluateEmptyFails(t *testing.T) {
	p := &Program{}
	if _, err := p.Evaluate(); err == nil {
		t.Fatal("Evaluate() error = nil, want NotInitialisedError for empty program")
	}
}

func TestProgramEvaluateArityMismatchFails(t *testing.T) {
	p := &Program{Atoms: []Atom{
		Leaf(value.NewFloat64(1)),
		CallOf(addBinding()),
	}}
	if _, err := p.Evaluate(); err == nil {
		t.Fatal("Evaluate() error = nil, want SyntaxError for arity mismatch")
	}
}

func TestProgramEvaluateLeftoverStackFails(t *testing.T) {
	p := &Program{Atoms: []Atom{Leaf(value.NewFloat64(1)), Leaf(value.NewFloat64(2))}}
	if _, err := p.Evaluate(); err == nil {
		t.Fatal("Evaluate() error = nil, want SyntaxError for leftover stack entries")
	}
}

func TestVariableCellContention(t *testing.T) {
	cell := NewVariableCell("x", value.NewFloat64(0))
	cell.busy = 1 // simulate a held access

	if _, err := cell.Get(); err == nil {
		t.Fatal("Get() error = nil, want VariableAccessError while busy")
	}
	if err := cell.Set(value.NewFloat64(1)); err == nil {
		t.Fatal("Set() error = nil, want VariableAccessError while busy")
	}
}

func TestDivisionDomainErrorPassesThroughVerbatim(t *testing.T) {
	p := &Program{Atoms: []Atom{
		Leaf(value.NewFloat64(1)),
		Leaf(value.NewFloat64(0)),
		CallOf(&bindings.Binding{
			Label: "Divide",
			Arity: 2,
			Func:  func(args []value.Kind) (value.Kind, error) { return args[0].Divide(args[1]) },
		}),
	}}
	_, err := p.Evaluate()
	if err == nil {
		t.Fatal("Evaluate() error = nil, want domain error for division by zero")
	}
	if _, ok := err.(*value.DomainError); !ok {
		t.Errorf("Evaluate() error type = %T, want *value.DomainError", err)
	}
}

func TestNoDomainErrorForFiniteResult(t *testing.T) {
	p := &Program{Atoms: []Atom{
		Leaf(value.NewFloat64(4)),
		CallOf(&bindings.Binding{
			Label: "SquareRoot",
			Arity: 1,
			Func:  func(args []value.Kind) (value.Kind, error) { return args[0].Sqrt() },
		}),
	}}
	result, err := p.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	var f float64
	if _, err := fmt.Sscanf(result.String(), "%g", &f); err != nil {
		t.Fatalf("could not parse result %q: %v", result.String(), err)
	}
	if math.Abs(f-2) > 1e-9 {
		t.Errorf("Evaluate() = %v, want 2", result)
	}
}
