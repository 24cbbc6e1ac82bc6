// Package tokenizer implements the context-sensitive tokenizer of
// SPEC_FULL.md §4.5: at each cursor position it chooses exactly one
// rule from a compiled Ruleset, given the category of the previously
// emitted token.
//
// Grounded on
// _examples/original_source/src/parser.rs::match_next_token, with one
// deliberate change: position is tracked with an explicit rune cursor
// rather than repeated rfind(remainder) lookups against the original
// string, which breaks whenever the remaining text recurs earlier in
// the input (SPEC_FULL.md §4.5/§9).
package tokenizer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rpreston/whetstone/internal/syntax"
	"github.com/rpreston/whetstone/internal/syntax/ruleset"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// Token is a single emitted token: the rule that matched, the exact
// matched text, and the rune position at which it starts in the
// original input.
type Token struct {
	Rule     *ruleset.Rule
	Text     string
	Position int
}

// Tokenizer walks an input string one token at a time against a
// compiled Ruleset.
type Tokenizer struct {
	rs        *ruleset.Ruleset
	remainder string
	cursor    int
	last      *syntax.Category
}

// New constructs a Tokenizer over input, failing SyntaxError if input
// is empty or entirely whitespace.
func New(rs *ruleset.Ruleset, input string) (*Tokenizer, error) {
	leading := countLeadingWhitespace(input)
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, wserrors.New(wserrors.SyntaxError, "equation string should not be empty")
	}
	return &Tokenizer{rs: rs, remainder: trimmed, cursor: leading}, nil
}

// Done reports whether the entire input has been consumed.
func (t *Tokenizer) Done() bool { return t.remainder == "" }

// Next emits the next token, advancing the cursor past it and any
// trailing whitespace. It is an error to call Next after Done reports
// true.
func (t *Tokenizer) Next() (*Token, error) {
	rule, matched, rest, err := t.matchNext()
	if err != nil {
		return nil, err
	}

	pos := t.cursor
	leading := countLeadingWhitespace(rest)
	trimmedRest := strings.TrimSpace(rest)

	if trimmedRest == "" && !rule.Category.MayEndExpression() {
		return nil, wserrors.New(wserrors.SyntaxError,
			"%s may not appear at the end of an expression", rule.Category)
	}

	t.cursor += utf8.RuneCountInString(matched) + leading
	t.remainder = trimmedRest
	cat := rule.Category
	t.last = &cat

	return &Token{Rule: rule, Text: matched, Position: pos}, nil
}

type candidate struct {
	rule    *ruleset.Rule
	matched string
	rest    string
}

// matchNext implements SPEC_FULL.md §4.5 steps 1-4.
func (t *Tokenizer) matchNext() (*ruleset.Rule, string, string, error) {
	var valid, invalid []candidate

	for _, rule := range t.rs.Rules {
		matched, rest, ok := rule.Match(t.remainder)
		if !ok {
			continue
		}
		if rule.CanFollow(t.last) {
			valid = append(valid, candidate{rule, matched, rest})
		} else if rule.Category != syntax.ImplicitOperators {
			invalid = append(invalid, candidate{rule, matched, rest})
		}
	}

	hasNonEmpty := false
	for _, c := range valid {
		if c.matched != "" {
			hasNonEmpty = true
			break
		}
	}
	var matching []candidate
	for _, c := range valid {
		if !hasNonEmpty || c.matched != "" {
			matching = append(matching, c)
		}
	}

	switch len(matching) {
	case 1:
		return matching[0].rule, matching[0].matched, matching[0].rest, nil
	case 0:
		return nil, "", "", t.noMatchError(invalid)
	}

	// Several candidates: sort by priority descending, then by
	// matched length descending, and walk the list picking the first
	// whose successor admits at least one legal rule (one-token
	// lookahead to avoid dead ends).
	sort.SliceStable(matching, func(i, j int) bool {
		pi, pj := matching[i].rule.Category.Priority(), matching[j].rule.Category.Priority()
		if pi != pj {
			return pi > pj
		}
		return len(matching[i].matched) > len(matching[j].matched)
	})

	for _, c := range matching {
		cat := c.rule.Category
		if t.hasLegalSuccessor(c.rest, cat) {
			return c.rule, c.matched, c.rest, nil
		}
	}

	return nil, "", "", wserrors.New(wserrors.SyntaxError,
		"expression %q does not match any registered rule", t.remainder)
}

func (t *Tokenizer) hasLegalSuccessor(rest string, prev syntax.Category) bool {
	trimmed := strings.TrimSpace(rest)
	for _, rule := range t.rs.Rules {
		if !rule.Matches(trimmed) {
			continue
		}
		if rule.CanFollow(&prev) {
			return true
		}
	}
	return false
}

func (t *Tokenizer) noMatchError(invalid []candidate) error {
	lastStr := "start of equation"
	if t.last != nil {
		lastStr = string(*t.last)
	}
	switch len(invalid) {
	case 0:
		return wserrors.New(wserrors.SyntaxError,
			"no registered rules match start of expression %q at position %d", t.remainder, t.cursor)
	case 1:
		return wserrors.New(wserrors.SyntaxError,
			"%q %s rule may not appear after %s at position %d",
			invalid[0].matched, invalid[0].rule.Category, lastStr, t.cursor)
	default:
		return wserrors.New(wserrors.SyntaxError,
			"multiple rules match start of %q at position %d but none may appear after %s",
			t.remainder, t.cursor, lastStr)
	}
}

func countLeadingWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
