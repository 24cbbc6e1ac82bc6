// Package whetstone parses and evaluates single-line mathematical
// expressions against a pluggable surface grammar. Two grammars ship
// built in: Standard ("2x + sin(pi/4)") and LaTeX
// ("2x + \\sin\\left(\\pi \\div 4\\right)").
//
// A Parser is built once from a syntax (built-in or custom) and a
// value kind, then reused to compile many expressions; each compiled
// Expression owns its own variable cells and can be evaluated
// repeatedly as those variables change.
//
// Modeled on go-dws's pkg/dwscript engine facade: a functional-options
// constructor producing a reusable engine, with Parser.Parse and
// Expression.Evaluate as thin wrappers over the internal pipeline.
package whetstone

import (
	"github.com/rpreston/whetstone/internal/shuntingyard"
	"github.com/rpreston/whetstone/internal/syntax"
	"github.com/rpreston/whetstone/internal/syntax/grammar"
	"github.com/rpreston/whetstone/internal/syntax/ruleset"
	"github.com/rpreston/whetstone/internal/value"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Syntax selects one of the built-in surface grammars.
type Syntax int

const (
	// Standard is the default ASCII-ish grammar (spec.md §6.2).
	Standard Syntax = iota
	// LaTeX is the macro-based grammar (spec.md §6.2).
	LaTeX
)

// Parser compiles expression text against a fixed Ruleset and value
// kind family. A Parser is safe for concurrent use by multiple
// goroutines: Parse only reads its Ruleset, and registering new
// bindings afterward never mutates an already-compiled Parser (spec.md
// §5).
type Parser struct {
	rs     *ruleset.Ruleset
	family value.Family
}

// Option configures a Parser at construction time.
type Option func(*parserConfig)

type parserConfig struct {
	syntax     Syntax
	def        *syntax.Definition
	familyName string
}

// WithSyntax selects a built-in grammar (default Standard). Ignored if
// WithDefinition is also given.
func WithSyntax(s Syntax) Option {
	return func(c *parserConfig) { c.syntax = s }
}

// WithDefinition constructs the Parser from an already-parsed
// definition value (spec.md §6.3's "obtain a built-in definition...
// for programmatic modification" flow), overriding WithSyntax.
func WithDefinition(def *syntax.Definition) Option {
	return func(c *parserConfig) { c.def = def }
}

// WithValueKind selects the numeric value kind family ("float32" or
// "float64"; default "float64").
func WithValueKind(name string) Option {
	return func(c *parserConfig) { c.familyName = name }
}

// NewParser builds a Parser from the given options.
func NewParser(opts ...Option) (*Parser, error) {
	cfg := parserConfig{syntax: Standard, familyName: "float64"}
	for _, opt := range opts {
		opt(&cfg)
	}

	family, ok := value.Lookup(cfg.familyName)
	if !ok {
		return nil, wserrors.New(wserrors.RuleParseError, "unknown value kind %q", cfg.familyName)
	}

	def := cfg.def
	if def == nil {
		var err error
		def, err = builtinDefinition(cfg.syntax)
		if err != nil {
			return nil, err
		}
	}

	rs, err := ruleset.Compile(def, family.Name)
	if err != nil {
		return nil, err
	}
	return &Parser{rs: rs, family: family}, nil
}

// NewParserFromJSON builds a Parser from raw JSON rule-collection text
// (spec.md §6.3's "from a raw definition string" construction path).
func NewParserFromJSON(raw []byte, opts ...Option) (*Parser, error) {
	def, err := syntax.ParseDefinitionJSON(raw)
	if err != nil {
		return nil, err
	}
	return NewParser(append(opts, WithDefinition(def))...)
}

func builtinDefinition(s Syntax) (*syntax.Definition, error) {
	switch s {
	case LaTeX:
		return grammar.LaTeX()
	default:
		return grammar.Standard()
	}
}

// Parse compiles text into an Expression against p's grammar and value
// kind. Every distinct variable name is discovered once, in order of
// first appearance, and backed by its own zero-valued cell.
func (p *Parser) Parse(text string) (*Expression, error) {
	res, err := shuntingyard.Parse(p.rs, p.family, text)
	if err != nil {
		return nil, err
	}
	return &Expression{result: res}, nil
}
