package syntax

import (
	"fmt"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/rpreston/whetstone/internal/wserrors"
)

// RuleDefinition is the structural (serializable) description of a
// single surface pattern within a category. See spec.md §6.1.
type RuleDefinition struct {
	Pattern         string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternIsRegex  bool       `json:"pattern_is_regex,omitempty" yaml:"pattern_is_regex,omitempty"`
	Precedence      *uint      `json:"precedence,omitempty" yaml:"precedence,omitempty"`
	Associativity   *Associativity `json:"associativity,omitempty" yaml:"associativity,omitempty"`
	Binding         string     `json:"binding,omitempty" yaml:"binding,omitempty"`
	MayFollow       []Category `json:"may_follow,omitempty" yaml:"may_follow,omitempty"`
	Context         *int       `json:"context,omitempty" yaml:"context,omitempty"`
}

// CategoryDefinition is the structural description of every rule
// within one category, plus the defaults rules in it inherit.
type CategoryDefinition struct {
	MayFollow          []Category       `json:"may_follow" yaml:"may_follow"`
	DefaultAssociativity *Associativity `json:"default_associativity,omitempty" yaml:"default_associativity,omitempty"`
	DefaultPrecedence  *uint            `json:"default_precedence,omitempty" yaml:"default_precedence,omitempty"`
	Rules              []RuleDefinition `json:"rules" yaml:"rules"`
}

// Definition is the root structural value: a mapping from category to
// its definition. It is the "already-parsed definition value" of
// spec.md §6.3 — hosts can build one by hand, obtain one of the
// built-ins and mutate it, or parse one from JSON/YAML text.
type Definition struct {
	Categories map[Category]CategoryDefinition
}

// ParseDefinitionJSON parses a RuleCollectionDefinition from JSON text.
//
// Duplicate top-level category keys are rejected: gjson.ForEach walks
// the raw object's members in source order and is invoked once per
// member actually present in the text, including repeats, which a
// map-based decode would silently collapse to the last occurrence.
// This is the "duplicate category keys are a load-time error"
// invariant of spec.md §6.1.
func ParseDefinitionJSON(raw []byte) (*Definition, error) {
	if !gjson.ValidBytes(raw) {
		return nil, wserrors.New(wserrors.RuleParseError, "definition is not valid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, wserrors.New(wserrors.RuleParseError, "definition root must be an object")
	}

	seen := make(map[string]bool)
	def := &Definition{Categories: make(map[Category]CategoryDefinition)}

	var forEachErr error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if seen[name] {
			forEachErr = wserrors.New(wserrors.RuleParseError, "duplicate category key %q in rule definition", name)
			return false
		}
		seen[name] = true

		cat := Category(name)
		if !cat.valid() {
			forEachErr = wserrors.New(wserrors.RuleParseError, "unknown category %q in rule definition", name)
			return false
		}

		catDef, err := parseCategoryDefinitionJSON(value)
		if err != nil {
			forEachErr = err
			return false
		}
		def.Categories[cat] = catDef
		return true
	})
	if forEachErr != nil {
		return nil, forEachErr
	}
	return def, nil
}

func parseCategoryDefinitionJSON(v gjson.Result) (CategoryDefinition, error) {
	var catDef CategoryDefinition

	if mf := v.Get("may_follow"); mf.Exists() {
		for _, c := range mf.Array() {
			catDef.MayFollow = append(catDef.MayFollow, Category(c.String()))
		}
	} else {
		return catDef, wserrors.New(wserrors.RuleParseError, "category definition is missing required field 'may_follow'")
	}

	if assoc := v.Get("default_associativity"); assoc.Exists() {
		a := Associativity(assoc.String())
		catDef.DefaultAssociativity = &a
	}
	if prec := v.Get("default_precedence"); prec.Exists() {
		p := uint(prec.Uint())
		catDef.DefaultPrecedence = &p
	}

	rulesField := v.Get("rules")
	if !rulesField.Exists() || !rulesField.IsArray() || len(rulesField.Array()) == 0 {
		return catDef, wserrors.New(wserrors.RuleParseError, "category definition requires a non-empty 'rules' array")
	}
	for _, r := range rulesField.Array() {
		ruleDef, err := parseRuleDefinitionJSON(r)
		if err != nil {
			return catDef, err
		}
		catDef.Rules = append(catDef.Rules, ruleDef)
	}
	return catDef, nil
}

func parseRuleDefinitionJSON(v gjson.Result) (RuleDefinition, error) {
	var rd RuleDefinition

	if p := v.Get("pattern"); p.Exists() {
		rd.Pattern = p.String()
	}
	if b := v.Get("pattern_is_regex"); b.Exists() {
		rd.PatternIsRegex = b.Bool()
	}
	if p := v.Get("precedence"); p.Exists() {
		n := uint(p.Uint())
		rd.Precedence = &n
	}
	if a := v.Get("associativity"); a.Exists() {
		assoc := Associativity(a.String())
		rd.Associativity = &assoc
	}
	if b := v.Get("binding"); b.Exists() {
		rd.Binding = b.String()
	}
	if mf := v.Get("may_follow"); mf.Exists() {
		for _, c := range mf.Array() {
			rd.MayFollow = append(rd.MayFollow, Category(c.String()))
		}
	}
	if c := v.Get("context"); c.Exists() {
		n := int(c.Int())
		rd.Context = &n
	}
	return rd, nil
}

// ParseDefinitionYAML parses a RuleCollectionDefinition from YAML text
// (valid JSON is valid YAML, so this path also accepts JSON). Strict
// mode makes goccy/go-yaml reject duplicate mapping keys, satisfying
// the same "duplicate category keys are a load-time error" invariant
// that ParseDefinitionJSON enforces for the JSON path.
func ParseDefinitionYAML(raw []byte) (*Definition, error) {
	var flat map[Category]CategoryDefinition
	if err := yaml.UnmarshalWithOptions(raw, &flat, yaml.Strict()); err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return nil, wserrors.New(wserrors.RuleParseError, "duplicate category key in rule definition: %s", err)
		}
		return nil, wserrors.New(wserrors.RuleParseError, "invalid rule definition: %s", err)
	}
	for cat := range flat {
		if !cat.valid() {
			return nil, wserrors.New(wserrors.RuleParseError, "unknown category %q in rule definition", cat)
		}
	}
	for cat, cd := range flat {
		if len(cd.MayFollow) == 0 {
			return nil, wserrors.New(wserrors.RuleParseError, "category %q definition is missing required field 'may_follow'", cat)
		}
		if len(cd.Rules) == 0 {
			return nil, wserrors.New(wserrors.RuleParseError, "category %q definition requires a non-empty 'rules' array", cat)
		}
	}
	return &Definition{Categories: flat}, nil
}

// Clone returns a copy with its own category map and its own per-category
// Rules and MayFollow slices, so replacing a category, a rule or a
// category's may_follow entry in the copy leaves d unchanged. It is not
// a full deep copy: each rule's MayFollow slice and the pointer-valued
// fields (precedences, associativities, contexts) are shared with d.
func (d *Definition) Clone() *Definition {
	out := &Definition{Categories: make(map[Category]CategoryDefinition, len(d.Categories))}
	for cat, cd := range d.Categories {
		rules := make([]RuleDefinition, len(cd.Rules))
		copy(rules, cd.Rules)
		cd.Rules = rules
		mf := make([]Category, len(cd.MayFollow))
		copy(mf, cd.MayFollow)
		cd.MayFollow = mf
		out.Categories[cat] = cd
	}
	return out
}

func (d *Definition) String() string {
	var sb strings.Builder
	for _, cat := range AllCategories {
		cd, ok := d.Categories[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s: %d rule(s)\n", cat, len(cd.Rules))
	}
	return sb.String()
}
