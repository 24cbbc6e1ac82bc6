package shuntingyard

import (
	"math"
	"strconv"
	"testing"

	"github.com/rpreston/whetstone/internal/syntax"
	"github.com/rpreston/whetstone/internal/syntax/ruleset"
	"github.com/rpreston/whetstone/internal/value"
)

func uintp(n uint) *uint { return &n }
func intp(n int) *int    { return &n }

func arithmeticDefinition() *syntax.Definition {
	return &syntax.Definition{
		Categories: map[syntax.Category]syntax.CategoryDefinition{
			syntax.Literals: {
				MayFollow: []syntax.Category{syntax.Operators, syntax.OpenBrackets},
				Rules:     []syntax.RuleDefinition{{Pattern: `\d+(\.\d+)?`, PatternIsRegex: true}},
			},
			syntax.Variables: {
				MayFollow: []syntax.Category{syntax.Operators, syntax.ImplicitOperators, syntax.OpenBrackets, syntax.Separators},
				Rules:     []syntax.RuleDefinition{{Pattern: `[a-zA-Z]+`, PatternIsRegex: true}},
			},
			syntax.Operators: {
				MayFollow: []syntax.Category{syntax.Literals, syntax.Variables, syntax.CloseBrackets},
				Rules: []syntax.RuleDefinition{
					{Pattern: "+", Binding: "Add", Precedence: uintp(1)},
					{Pattern: "-", Binding: "Subtract", Precedence: uintp(1)},
					{Pattern: "*", Binding: "Multiply", Precedence: uintp(2)},
					{Pattern: "^", Binding: "Exponent", Precedence: uintp(3), Associativity: assocp(syntax.RightToLeft)},
				},
			},
			syntax.ImplicitOperators: {
				MayFollow: []syntax.Category{syntax.Literals},
				Rules: []syntax.RuleDefinition{
					{Binding: "Multiply", Precedence: uintp(2), MayFollow: []syntax.Category{syntax.Literals}},
				},
			},
			syntax.Functions: {
				MayFollow: []syntax.Category{syntax.Operators, syntax.OpenBrackets},
				Rules:     []syntax.RuleDefinition{{Pattern: "max", Binding: "Max"}},
			},
			syntax.Separators: {
				MayFollow: []syntax.Category{syntax.Literals, syntax.Variables, syntax.CloseBrackets},
				Rules:     []syntax.RuleDefinition{{Pattern: ",", Context: intp(0)}},
			},
			syntax.OpenBrackets: {
				MayFollow: []syntax.Category{syntax.Operators, syntax.Functions},
				Rules:     []syntax.RuleDefinition{{Pattern: "(", Context: intp(1)}},
			},
			syntax.CloseBrackets: {
				MayFollow: []syntax.Category{syntax.Literals, syntax.Variables},
				Rules:     []syntax.RuleDefinition{{Pattern: ")", Context: intp(-1)}},
			},
		},
	}
}

func assocp(a syntax.Associativity) *syntax.Associativity { return &a }

func compile(t *testing.T) *ruleset.Ruleset {
	t.Helper()
	rs, err := ruleset.Compile(arithmeticDefinition(), "float64")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return rs
}

func evalText(t *testing.T, text string, vars map[string]float64) float64 {
	t.Helper()
	rs := compile(t)
	res, err := Parse(rs, value.Float64Family, text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	for name, v := range vars {
		cell, ok := res.Variables[name]
		if !ok {
			t.Fatalf("Parse(%q) did not discover variable %q", text, name)
		}
		if err := cell.Set(value.NewFloat64(v)); err != nil {
			t.Fatalf("Set(%q) error = %v", name, err)
		}
	}
	result, err := res.Program.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate(%q) error = %v", text, err)
	}
	f, err := strconv.ParseFloat(result.String(), 64)
	if err != nil {
		t.Fatalf("could not parse result %q: %v", result.String(), err)
	}
	return f
}

func TestPrecedenceMultiplyOverAdd(t *testing.T) {
	got := evalText(t, "a+b*c", map[string]float64{"a": 1, "b": 2, "c": 3})
	want := 1.0 + 2.0*3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("a+b*c = %v, want %v", got, want)
	}

	got2 := evalText(t, "a*b+c", map[string]float64{"a": 1, "b": 2, "c": 3})
	want2 := 1.0*2.0 + 3.0
	if math.Abs(got2-want2) > 1e-9 {
		t.Errorf("a*b+c = %v, want %v", got2, want2)
	}
}

func TestRightAssociativeExponent(t *testing.T) {
	got := evalText(t, "a^b^c", map[string]float64{"a": 2, "b": 2, "c": 3})
	want := math.Pow(2, math.Pow(2, 3))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("a^b^c = %v, want %v", got, want)
	}
}

func TestImplicitMultiplication(t *testing.T) {
	got := evalText(t, "2x", map[string]float64{"x": 5})
	if math.Abs(got-10) > 1e-9 {
		t.Errorf("2x = %v, want 10", got)
	}
}

func TestFunctionCallAndSeparator(t *testing.T) {
	got := evalText(t, "max(a,b)", map[string]float64{"a": 3, "b": 7})
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("max(a,b) = %v, want 7", got)
	}
}

func TestMismatchedBracketFails(t *testing.T) {
	rs := compile(t)
	if _, err := Parse(rs, value.Float64Family, "(2["); err == nil {
		t.Fatal("Parse() error = nil, want SyntaxError for mismatched bracket")
	}
}

func TestUnclosedBracketFails(t *testing.T) {
	rs := compile(t)
	if _, err := Parse(rs, value.Float64Family, "(2+3"); err == nil {
		t.Fatal("Parse() error = nil, want SyntaxError for unclosed bracket")
	}
}

func TestVariableOrderIsStable(t *testing.T) {
	rs := compile(t)
	res, err := Parse(rs, value.Float64Family, "b+a+b")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"b", "a"}
	if len(res.VariableOrder) != len(want) {
		t.Fatalf("VariableOrder = %v, want %v", res.VariableOrder, want)
	}
	for i := range want {
		if res.VariableOrder[i] != want[i] {
			t.Errorf("VariableOrder[%d] = %q, want %q", i, res.VariableOrder[i], want[i])
		}
	}
}
