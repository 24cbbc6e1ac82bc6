// Package program implements the postfix program representation and
// the stack evaluator of SPEC_FULL.md §4.7 (component G).
//
// Grounded on _examples/original_source/src/expressions (Number,
// Variable, Function) for the atom shapes, and on
// _examples/original_source/src/parser.rs's trailing evaluate() dry
// run for the evaluation loop itself.
package program

import (
	"strings"

	"github.com/rpreston/whetstone/internal/bindings"
	"github.com/rpreston/whetstone/internal/value"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Kind distinguishes the three shapes a program atom can take.
type Kind int

const (
	// ValueAtom is a leaf already reduced to a concrete value: a
	// parsed literal, or an eagerly-evaluated zero-arity constant
	// binding (Pi, Euler).
	ValueAtom Kind = iota
	// VariableAtom reads the current contents of a shared cell.
	VariableAtom
	// CallAtom invokes a binding against the top of the value stack.
	CallAtom
)

// Call is the fixed-arity function a CallAtom invokes.
type Call struct {
	Label string
	Arity int
	Func  bindings.Func
}

// Atom is a single element of a postfix program.
type Atom struct {
	Kind  Kind
	Value value.Kind
	Cell  *VariableCell
	Call  Call
}

// Leaf constructs a ValueAtom.
func Leaf(v value.Kind) Atom { return Atom{Kind: ValueAtom, Value: v} }

// VariableRef constructs a VariableAtom over cell.
func VariableRef(cell *VariableCell) Atom { return Atom{Kind: VariableAtom, Cell: cell} }

// CallOf constructs a CallAtom from a resolved binding.
func CallOf(b *bindings.Binding) Atom {
	return Atom{Kind: CallAtom, Call: Call{Label: b.Label, Arity: b.Arity, Func: b.Func}}
}

// Program is an ordered, immutable sequence of program atoms produced
// by the shunting-yard driver.
type Program struct {
	Atoms []Atom
}

// Evaluate runs the stack evaluator once against the program's current
// atoms (and, for VariableAtom, whatever each cell currently holds).
func (p *Program) Evaluate() (value.Kind, error) {
	if len(p.Atoms) == 0 {
		return nil, wserrors.New(wserrors.NotInitialisedError, "program is empty")
	}

	stack := make([]value.Kind, 0, len(p.Atoms))
	for _, atom := range p.Atoms {
		switch atom.Kind {
		case ValueAtom:
			stack = append(stack, atom.Value)

		case VariableAtom:
			v, err := atom.Cell.Get()
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)

		case CallAtom:
			if len(stack) < atom.Call.Arity {
				return nil, wserrors.New(wserrors.SyntaxError,
					"%q requires %d input(s) but the stack has %d", atom.Call.Label, atom.Call.Arity, len(stack))
			}
			args := append([]value.Kind(nil), stack[len(stack)-atom.Call.Arity:]...)
			stack = stack[:len(stack)-atom.Call.Arity]

			result, err := atom.Call.Func(args)
			if err != nil {
				return nil, err
			}
			stack = append(stack, result)
		}
	}

	if len(stack) != 1 {
		return nil, wserrors.New(wserrors.SyntaxError,
			"program does not evaluate to a single value (stack has %d entries)", len(stack))
	}
	return stack[0], nil
}

// String renders the program as a space-separated postfix token
// stream, for diagnostics (cmd/whetstone's "parse" subcommand).
func (p *Program) String() string {
	tokens := make([]string, len(p.Atoms))
	for i, atom := range p.Atoms {
		switch atom.Kind {
		case ValueAtom:
			tokens[i] = atom.Value.String()
		case VariableAtom:
			tokens[i] = atom.Cell.Name()
		case CallAtom:
			tokens[i] = atom.Call.Label
		}
	}
	return strings.Join(tokens, " ")
}
