package syntax

// Category is the closed set of token classes that govern grammar
// structure. See spec.md §3.
type Category string

const (
	Operators         Category = "Operators"
	ImplicitOperators Category = "ImplicitOperators"
	Functions         Category = "Functions"
	Literals          Category = "Literals"
	Constants         Category = "Constants"
	Variables         Category = "Variables"
	OpenBrackets      Category = "OpenBrackets"
	CloseBrackets     Category = "CloseBrackets"
	Separators        Category = "Separators"
	Fluff             Category = "Fluff"
)

// AllCategories lists every recognized category, in the order
// spec.md §3 introduces them.
var AllCategories = []Category{
	Operators, ImplicitOperators, Functions, Literals, Constants,
	Variables, OpenBrackets, CloseBrackets, Separators, Fluff,
}

func (c Category) valid() bool {
	for _, k := range AllCategories {
		if k == c {
			return true
		}
	}
	return false
}

// Associativity is the order in which operations of equal precedence
// are resolved.
type Associativity string

const (
	LeftToRight Associativity = "LeftToRight"
	RightToLeft Associativity = "RightToLeft"
)

// properties holds the fixed, per-category behavioral facts from
// spec.md §4.3. Priority is the tokenizer tiebreak. Arity is not kept
// here: leaf categories produce zero-arity atoms, and
// Operators/Functions/ImplicitOperators take arity from their binding.
type properties struct {
	mayStart bool
	mayEnd   bool
	priority int
}

var categoryProperties = map[Category]properties{
	Constants:         {mayStart: true, mayEnd: true, priority: 3},
	Functions:         {mayStart: true, mayEnd: false, priority: 3},
	Literals:          {mayStart: true, mayEnd: true, priority: 2},
	Variables:         {mayStart: true, mayEnd: true, priority: 1},
	OpenBrackets:      {mayStart: true, mayEnd: false, priority: 5},
	CloseBrackets:     {mayStart: false, mayEnd: true, priority: 5},
	Operators:         {mayStart: false, mayEnd: false, priority: 4},
	ImplicitOperators: {mayStart: false, mayEnd: false, priority: 0},
	Separators:        {mayStart: false, mayEnd: false, priority: 5},
	Fluff:             {mayStart: true, mayEnd: true, priority: 0},
}

// MayStartExpression reports whether a token of this category is
// legal at the start of an expression (no previous token).
func (c Category) MayStartExpression() bool { return categoryProperties[c].mayStart }

// MayEndExpression reports whether a token of this category is legal
// at the end of an expression (nothing remains to tokenize).
func (c Category) MayEndExpression() bool { return categoryProperties[c].mayEnd }

// Priority is the tokenizer's tiebreak ordering when several rules
// match at a cursor position with equally-legal context.
func (c Category) Priority() int { return categoryProperties[c].priority }

// RequiresBinding reports whether a rule of this category must resolve
// a binding label at compile time.
func (c Category) RequiresBinding() bool {
	switch c {
	case Operators, ImplicitOperators, Functions, Constants:
		return true
	default:
		return false
	}
}

// RequiresPrecedence reports whether a rule of this category must
// resolve a numeric precedence at compile time.
func (c Category) RequiresPrecedence() bool {
	return c == Operators || c == ImplicitOperators
}

// RequiresBracketContext reports whether a rule of this category must
// carry a signed bracket-family context integer.
func (c Category) RequiresBracketContext() bool {
	return c == OpenBrackets || c == CloseBrackets
}

// IsLeaf reports whether a token of this category produces a
// zero-arity program atom pushed directly to the output (as opposed to
// an operator/function pushed to the operator stack, or a
// non-expression token like a bracket or separator).
func (c Category) IsLeaf() bool {
	return c == Literals || c == Constants || c == Variables
}
