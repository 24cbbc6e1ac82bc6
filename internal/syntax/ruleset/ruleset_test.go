package ruleset

import (
	"testing"

	sy "github.com/rpreston/whetstone/internal/syntax"
)

func uintp(n uint) *uint { return &n }

func minimalDefinition() *sy.Definition {
	return &sy.Definition{
		Categories: map[sy.Category]sy.CategoryDefinition{
			sy.Literals: {
				MayFollow: []sy.Category{sy.Operators},
				Rules: []sy.RuleDefinition{
					{Pattern: `\d+(\.\d+)?`, PatternIsRegex: true},
				},
			},
			sy.Operators: {
				MayFollow:         []sy.Category{sy.Literals, sy.CloseBrackets},
				DefaultPrecedence: uintp(1),
				Rules: []sy.RuleDefinition{
					{Pattern: "+", Binding: "Add", Precedence: uintp(2)},
					{Pattern: "*", Binding: "Multiply"},
				},
			},
			sy.OpenBrackets: {
				MayFollow: []sy.Category{sy.Operators},
				Rules:     []sy.RuleDefinition{{Pattern: "(", Context: intp(0)}},
			},
			sy.CloseBrackets: {
				MayFollow: []sy.Category{sy.Literals},
				Rules:     []sy.RuleDefinition{{Pattern: ")", Context: intp(0)}},
			},
		},
	}
}

func intp(n int) *int { return &n }

func TestCompile(t *testing.T) {
	rs, err := Compile(minimalDefinition(), "float64")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(rs.Rules) != 5 {
		t.Fatalf("len(Rules) = %d, want 5", len(rs.Rules))
	}
}

func TestCompilePrecedenceRuleOverridesDefault(t *testing.T) {
	rs, err := Compile(minimalDefinition(), "float64")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	ops := rs.ByCategory(sy.Operators)
	tests := []struct {
		pattern string
		want    uint
	}{
		{"+", 2}, // rule-level precedence must win over the category default
		{"*", 1}, // falls back to the category default
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			var found *Rule
			for _, r := range ops {
				if r.source == tt.pattern {
					found = r
				}
			}
			if found == nil {
				t.Fatalf("no compiled rule for pattern %q", tt.pattern)
			}
			if found.Precedence != tt.want {
				t.Errorf("Precedence = %d, want %d", found.Precedence, tt.want)
			}
		})
	}
}

func TestCompileResolvesBinding(t *testing.T) {
	rs, err := Compile(minimalDefinition(), "float64")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	for _, r := range rs.ByCategory(sy.Operators) {
		if r.Binding == nil {
			t.Fatalf("rule %q has no resolved binding", r.source)
		}
	}
}

func TestCompileMissingBindingFails(t *testing.T) {
	def := minimalDefinition()
	cd := def.Categories[sy.Operators]
	cd.Rules = append(cd.Rules, sy.RuleDefinition{Pattern: "?", Binding: "NoSuchBinding"})
	def.Categories[sy.Operators] = cd

	if _, err := Compile(def, "float64"); err == nil {
		t.Fatal("Compile() error = nil, want error for unresolvable binding")
	}
}

func TestCompileBracketRequiresContext(t *testing.T) {
	def := minimalDefinition()
	cd := def.Categories[sy.OpenBrackets]
	cd.Rules = append(cd.Rules, sy.RuleDefinition{Pattern: "["})
	def.Categories[sy.OpenBrackets] = cd

	if _, err := Compile(def, "float64"); err == nil {
		t.Fatal("Compile() error = nil, want error for missing bracket context")
	}
}

func TestRuleMatch(t *testing.T) {
	rs, err := Compile(minimalDefinition(), "float64")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	lit := rs.ByCategory(sy.Literals)[0]

	matched, rest, ok := lit.Match("3.14 + x")
	if !ok {
		t.Fatal("Match() ok = false, want true")
	}
	if matched != "3.14" || rest != " + x" {
		t.Errorf("Match() = (%q, %q), want (%q, %q)", matched, rest, "3.14", " + x")
	}

	if _, _, ok := lit.Match("+ 1"); ok {
		t.Error("Match() ok = true for non-matching input, want false")
	}
}

func TestCanFollowFluffIsUniversalPredecessor(t *testing.T) {
	rs, err := Compile(minimalDefinition(), "float64")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	lit := rs.ByCategory(sy.Literals)[0]

	fluff := sy.Fluff
	if !lit.CanFollow(&fluff) {
		t.Error("CanFollow(Fluff) = false, want true regardless of may_follow")
	}
}
