package ruleset

import (
	"github.com/rpreston/whetstone/internal/bindings"
	sy "github.com/rpreston/whetstone/internal/syntax"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Ruleset is the compiled form of a syntax.Definition: every rule of
// every category reduced to a Rule, grouped by category in the order
// the tokenizer must try them (spec.md §4.4's priority/length tiebreak
// is applied at tokenize time over this flat slice, not here).
type Ruleset struct {
	Family string
	Rules  []*Rule
}

// ByCategory returns the subset of compiled rules belonging to cat, in
// definition order.
func (rs *Ruleset) ByCategory(cat sy.Category) []*Rule {
	var out []*Rule
	for _, r := range rs.Rules {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// Compile turns a structural Definition into an executable Ruleset for
// the given value kind family, resolving every rule's pattern,
// precedence, associativity, bracket context and binding.
//
// Grounded on _examples/original_source/src/syntax/ruleset.rs
// (Ruleset::create): one deliberate correction from that source is
// precedence resolution order. The original checks
// default_precedence before falling back to a rule's own precedence;
// SPEC_FULL.md §4.4/§9 treats this as a bug and resolves rule-level
// precedence first, category default second — a rule that specifies
// its own precedence always wins.
func Compile(def *sy.Definition, family string) (*Ruleset, error) {
	rs := &Ruleset{Family: family}

	for _, cat := range sy.AllCategories {
		catDef, ok := def.Categories[cat]
		if !ok {
			continue
		}
		for i, rd := range catDef.Rules {
			rule, err := compileRule(cat, catDef, rd, family)
			if err != nil {
				return nil, wserrors.New(wserrors.RuleParseError,
					"category %q rule %d: %s", cat, i, err)
			}
			rs.Rules = append(rs.Rules, rule)
		}
	}
	return rs, nil
}

func compileRule(cat sy.Category, catDef sy.CategoryDefinition, rd sy.RuleDefinition, family string) (*Rule, error) {
	if cat == sy.ImplicitOperators {
		if rd.Pattern != "" {
			return nil, wserrors.New(wserrors.RuleParseError, "ImplicitOperators rules may not specify a pattern")
		}
	} else if rd.Pattern == "" {
		return nil, wserrors.New(wserrors.RuleParseError, "rule requires a non-empty pattern")
	}

	rule := &Rule{Category: cat, source: rd.Pattern}

	if rd.Pattern != "" {
		re, err := compilePattern(rd.Pattern, rd.PatternIsRegex)
		if err != nil {
			return nil, wserrors.New(wserrors.RuleParseError, "invalid pattern %q: %s", rd.Pattern, err)
		}
		rule.Pattern = re
	}

	// Precedence: rule-level wins over category default. Mandatory
	// for Operators/ImplicitOperators; optional for every other
	// category so a grammar can give e.g. Functions a precedence high
	// enough that the shunting-yard loop pops a pending function
	// ahead of a lower-precedence operator (see standard.json's
	// Functions default_precedence).
	switch {
	case rd.Precedence != nil:
		rule.Precedence = *rd.Precedence
	case catDef.DefaultPrecedence != nil:
		rule.Precedence = *catDef.DefaultPrecedence
	case cat.RequiresPrecedence():
		return nil, wserrors.New(wserrors.RuleParseError, "rule requires a precedence (rule-level or category default)")
	}

	// associativity: rule-level wins over category default, which
	// in turn wins over LeftToRight.
	switch {
	case rd.Associativity != nil:
		rule.Associativity = *rd.Associativity
	case catDef.DefaultAssociativity != nil:
		rule.Associativity = *catDef.DefaultAssociativity
	default:
		rule.Associativity = sy.LeftToRight
	}

	// may_follow: rule-level overrides the category's, per spec.md §4.4.
	follows := rd.MayFollow
	if follows == nil {
		follows = catDef.MayFollow
	}
	rule.Follows = make(map[sy.Category]bool, len(follows))
	for _, f := range follows {
		rule.Follows[f] = true
	}

	if cat.RequiresBracketContext() {
		if rd.Context == nil {
			return nil, wserrors.New(wserrors.RuleParseError, "bracket rule requires an explicit 'context'")
		}
		rule.BracketContext = *rd.Context
	}

	if cat.RequiresBinding() {
		if rd.Binding == "" {
			return nil, wserrors.New(wserrors.RuleParseError, "rule requires a 'binding' label")
		}
		b, ok := bindings.Global().Lookup(family, rd.Binding)
		if !ok {
			return nil, wserrors.New(wserrors.RuleParseError, "no binding registered for label %q and kind %q", rd.Binding, family)
		}
		rule.Binding = &b
	}

	return rule, nil
}
