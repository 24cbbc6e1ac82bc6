package whetstone

import (
	"github.com/rpreston/whetstone/internal/program"
	"github.com/rpreston/whetstone/internal/shuntingyard"
	"github.com/rpreston/whetstone/internal/value"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Expression is a compiled, re-evaluable expression: a postfix program
// plus the shared variable cells it reads. Every Variable call returns
// a handle to the same underlying cell, so setting a value through one
// handle is visible to every subsequent Evaluate call.
type Expression struct {
	result *shuntingyard.Result
}

// Evaluate runs the compiled program once against the current value of
// every variable cell.
func (e *Expression) Evaluate() (value.Kind, error) {
	return e.result.Program.Evaluate()
}

// Variable returns the variable cell named name, or VariableAccessError
// if no such variable was discovered while parsing.
func (e *Expression) Variable(name string) (*Variable, error) {
	cell, ok := e.result.Variables[name]
	if !ok {
		return nil, wserrors.New(wserrors.VariableAccessError, "expression has no variable %q", name)
	}
	return &Variable{cell: cell}, nil
}

// Variables returns every distinct variable name the expression
// references, in order of first appearance.
func (e *Expression) Variables() []string {
	out := make([]string, len(e.result.VariableOrder))
	copy(out, e.result.VariableOrder)
	return out
}

// String renders the compiled postfix program as a space-separated
// token stream, for diagnostics.
func (e *Expression) String() string {
	return e.result.Program.String()
}

// Variable is a handle onto one of an Expression's shared, mutable
// variable cells.
type Variable struct {
	cell *program.VariableCell
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.cell.Name() }

// Get reads the variable's current value.
func (v *Variable) Get() (value.Kind, error) { return v.cell.Get() }

// Set replaces the variable's current value.
func (v *Variable) Set(val value.Kind) error { return v.cell.Set(val) }
