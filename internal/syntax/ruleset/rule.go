// Package ruleset compiles a syntax.Definition into a Ruleset of
// Rules: anchored, case-insensitive compiled patterns with resolved
// bindings, ready for the tokenizer to match against. This is
// component D of SPEC_FULL.md.
package ruleset

import (
	"regexp"
	"regexp/syntax"

	"github.com/rpreston/whetstone/internal/bindings"
	sy "github.com/rpreston/whetstone/internal/syntax"
)

// Rule is a compiled pattern plus the resolved, immutable facts
// spec.md §3 attaches to it.
type Rule struct {
	Pattern        *regexp.Regexp
	Category       sy.Category
	Precedence     uint
	Associativity  sy.Associativity
	Binding        *bindings.Binding // resolved; nil for non-binding categories
	Follows        map[sy.Category]bool
	BracketContext int

	// source retains the original pattern text purely for error
	// messages (the compiled *regexp.Regexp does not expose it in a
	// human-friendly way once wrapped).
	source string
}

// CanFollow reports whether this rule may legally appear after a token
// of category prev, or at the start of an expression if prev is nil.
// Fluff is universally legal as a predecessor (spec.md §9, Open
// Question resolved in favor of the "current latest" draft).
func (r *Rule) CanFollow(prev *sy.Category) bool {
	if prev == nil {
		return r.Category.MayStartExpression()
	}
	if *prev == sy.Fluff {
		return true
	}
	return r.Follows[*prev]
}

// Match anchors Pattern against the remainder of the input and
// returns the matched text and the remainder after it (untrimmed; the
// tokenizer strips leading whitespace itself), or false if
// Pattern does not match at this position. An ImplicitOperators rule
// carries no pattern at all (it matches the empty string by
// definition) and always succeeds without consuming input.
func (r *Rule) Match(remainder string) (matched string, rest string, ok bool) {
	if r.Category == sy.ImplicitOperators {
		return "", remainder, true
	}
	loc := r.Pattern.FindStringSubmatchIndex(remainder)
	if loc == nil {
		return "", "", false
	}
	// loc[2]:loc[3] is capture group 1 (the pattern body); the last
	// pair is the trailing (.*) group (everything after it). Any
	// groups inside a regex pattern sit between the two.
	matched = remainder[loc[2]:loc[3]]
	n := len(loc)
	rest = remainder[loc[n-2]:loc[n-1]]
	return matched, rest, true
}

// Matches reports whether this rule could plausibly be the next token
// given remainder, used only for the tokenizer's one-token lookahead
// (Tokenizer.hasLegalSuccessor). An empty remainder is treated as a
// match iff the rule's own category is legal at the end of an
// expression — mirroring the original source's dual-purpose "matches"
// check, which reuses pattern matching to also answer "would stopping
// here be legal."
func (r *Rule) Matches(remainder string) bool {
	if remainder == "" {
		return r.Category.MayEndExpression()
	}
	_, _, ok := r.Match(remainder)
	return ok
}

// compilePattern wraps pat as "^(pat)(.*)" per spec.md §4.4, applied
// case-insensitively, and escapes it first unless isRegex is set.
func compilePattern(pat string, isRegex bool) (*regexp.Regexp, error) {
	body := pat
	if !isRegex {
		body = regexp.QuoteMeta(pat)
	} else if _, err := syntax.Parse(pat, syntax.Perl); err != nil {
		return nil, err
	}
	full := "(?is)^(" + body + ")(.*)"
	re, err := regexp.Compile(full)
	if err != nil {
		return nil, err
	}
	return re, nil
}
