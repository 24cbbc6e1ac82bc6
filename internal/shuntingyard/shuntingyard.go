// Package shuntingyard implements the extended shunting-yard driver of
// SPEC_FULL.md §4.6 (component F): it drives a tokenizer.Tokenizer and
// produces a postfix program.Program plus the variable cells
// discovered along the way.
//
// Grounded on _examples/original_source/src/parser.rs::parse.
package shuntingyard

import (
	"github.com/rpreston/whetstone/internal/program"
	"github.com/rpreston/whetstone/internal/syntax"
	"github.com/rpreston/whetstone/internal/syntax/ruleset"
	"github.com/rpreston/whetstone/internal/tokenizer"
	"github.com/rpreston/whetstone/internal/value"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Result is the output of a successful parse: the postfix program and
// its discovered variable cells, insertion-ordered by first appearance.
type Result struct {
	Program       *program.Program
	Variables     map[string]*program.VariableCell
	VariableOrder []string
}

// stackEntry mirrors the original's operator_stack: a rule paired with
// the atom it will eventually contribute to the output (functions and
// operators carry one; brackets and separators do not).
type stackEntry struct {
	rule *ruleset.Rule
	atom *program.Atom
}

// Parse tokenizes text against rs and runs the shunting-yard algorithm,
// producing a postfix program. family selects which value.Family
// parses literal lexemes and supplies the zero value for new variable
// cells.
func Parse(rs *ruleset.Ruleset, family value.Family, text string) (*Result, error) {
	tk, err := tokenizer.New(rs, text)
	if err != nil {
		return nil, err
	}

	var output []program.Atom
	var operators []stackEntry
	var bracketContext []int

	variables := make(map[string]*program.VariableCell)
	var order []string

	for !tk.Done() {
		tok, err := tk.Next()
		if err != nil {
			return nil, err
		}

		atom, err := atomFor(tok, family, variables, &order)
		if err != nil {
			return nil, err
		}

		switch tok.Rule.Category {
		case syntax.Fluff:
			// ignored

		case syntax.Literals, syntax.Constants, syntax.Variables:
			output = append(output, *atom)

		case syntax.Functions:
			operators = append(operators, stackEntry{tok.Rule, atom})

		case syntax.Operators, syntax.ImplicitOperators:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.rule.Category == syntax.OpenBrackets {
					break
				}
				higherOrEqualLeft := top.rule.Precedence > tok.Rule.Precedence ||
					(top.rule.Precedence == tok.Rule.Precedence && tok.Rule.Associativity == syntax.LeftToRight)
				if !higherOrEqualLeft {
					break
				}
				operators = operators[:len(operators)-1]
				if top.atom != nil {
					output = append(output, *top.atom)
				}
			}
			operators = append(operators, stackEntry{tok.Rule, atom})

		case syntax.Separators:
			for len(operators) > 0 && operators[len(operators)-1].rule.Category != syntax.OpenBrackets {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.atom != nil {
					output = append(output, *top.atom)
				}
			}

		case syntax.OpenBrackets:
			bracketContext = append(bracketContext, tok.Rule.BracketContext)
			operators = append(operators, stackEntry{tok.Rule, atom})

		case syntax.CloseBrackets:
			if len(bracketContext) == 0 {
				return nil, wserrors.New(wserrors.SyntaxError,
					"%q at position %d does not match last opening bracket", tok.Text, tok.Position)
			}
			opened := bracketContext[len(bracketContext)-1]
			bracketContext = bracketContext[:len(bracketContext)-1]
			if opened != -tok.Rule.BracketContext {
				return nil, wserrors.New(wserrors.SyntaxError,
					"%q at position %d does not match last opening bracket", tok.Text, tok.Position)
			}

			for {
				if len(operators) == 0 {
					return nil, wserrors.New(wserrors.SyntaxError, "invalid closing bracket")
				}
				top := operators[len(operators)-1]
				if top.rule.Category == syntax.OpenBrackets {
					break
				}
				operators = operators[:len(operators)-1]
				if top.atom != nil {
					output = append(output, *top.atom)
				}
			}

			// discard the opener
			opener := operators[len(operators)-1]
			operators = operators[:len(operators)-1]
			if opener.rule.Category != syntax.OpenBrackets {
				return nil, wserrors.New(wserrors.SyntaxError,
					"closing bracket %q at position %d used without opening bracket first", tok.Text, tok.Position)
			}

			if len(operators) > 0 && operators[len(operators)-1].rule.Category == syntax.Functions {
				fn := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if fn.atom != nil {
					output = append(output, *fn.atom)
				}
			}
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.rule.Category == syntax.OpenBrackets {
			return nil, wserrors.New(wserrors.SyntaxError, "unclosed opening bracket")
		}
		if top.atom != nil {
			output = append(output, *top.atom)
		}
	}

	prog := &program.Program{Atoms: output}

	if err := dryRun(prog); err != nil {
		return nil, err
	}

	return &Result{Program: prog, Variables: variables, VariableOrder: order}, nil
}

// atomFor builds the program atom a token contributes, if any
// (brackets, separators and Fluff contribute none).
func atomFor(tok *tokenizer.Token, family value.Family, variables map[string]*program.VariableCell, order *[]string) (*program.Atom, error) {
	rule := tok.Rule
	switch rule.Category {
	case syntax.ImplicitOperators, syntax.Operators, syntax.Functions:
		if rule.Binding == nil {
			return nil, wserrors.New(wserrors.InternalError,
				"rule %q of category %s has no resolved binding", tok.Text, rule.Category)
		}
		a := program.CallOf(rule.Binding)
		return &a, nil

	case syntax.Constants:
		if rule.Binding == nil {
			return nil, wserrors.New(wserrors.InternalError,
				"rule %q of category %s has no resolved binding", tok.Text, rule.Category)
		}
		v, err := rule.Binding.Func(nil)
		if err != nil {
			return nil, err
		}
		a := program.Leaf(v)
		return &a, nil

	case syntax.Literals:
		v, err := family.Parse(tok.Text)
		if err != nil {
			return nil, wserrors.New(wserrors.SyntaxError, "could not parse literal %q as a number", tok.Text)
		}
		a := program.Leaf(v)
		return &a, nil

	case syntax.Variables:
		cell, ok := variables[tok.Text]
		if !ok {
			cell = program.NewVariableCell(tok.Text, family.Zero())
			variables[tok.Text] = cell
			*order = append(*order, tok.Text)
		}
		a := program.VariableRef(cell)
		return &a, nil

	default:
		return nil, nil
	}
}

// dryRun evaluates the freshly-built program once with zero-valued
// variables, purely to surface arity mismatches and malformed stacks
// as a compile-time SyntaxError (SPEC_FULL.md §4.6). Any other kind of
// failure (a binding's domain error, e.g. division by zero against a
// zero-valued variable) is expected and ignored: it depends on values
// the caller has not supplied yet.
func dryRun(p *program.Program) error {
	_, err := p.Evaluate()
	if err == nil {
		return nil
	}
	if we, ok := err.(*wserrors.Error); ok && we.Kind == wserrors.SyntaxError {
		return we
	}
	return nil
}
