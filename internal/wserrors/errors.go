// Package wserrors defines the single structured error type that every
// component of the expression engine returns, modeled on go-dws's
// internal/errors source-context formatter.
package wserrors

import (
	"fmt"
	"strings"
)

// Kind classifies an Error. See spec.md §7.
type Kind int

const (
	// RuleParseError marks a structurally invalid rule definition or
	// one that references an unknown binding.
	RuleParseError Kind = iota
	// SyntaxError marks an expression the grammar does not accept.
	SyntaxError
	// BindingError marks a duplicate label at binding registration.
	BindingError
	// VariableAccessError marks an unknown variable name or a
	// concurrent mutable borrow.
	VariableAccessError
	// NotInitialisedError marks evaluation of an empty program.
	NotInitialisedError
	// InternalError marks an invariant violation; reserved for
	// defensive checks that should be unreachable.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case RuleParseError:
		return "RuleParseError"
	case SyntaxError:
		return "SyntaxError"
	case BindingError:
		return "BindingError"
	case VariableAccessError:
		return "VariableAccessError"
	case NotInitialisedError:
		return "NotInitialisedError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Position is a character cursor into source text, carried on errors
// that can point at an offending substring.
type Position struct {
	// Offset is the rune offset from the start of the source text.
	Offset int
}

// Error is the single error type returned by every fallible operation
// in the engine.
type Error struct {
	Kind     Kind
	Message  string
	Source   string
	HasPos   bool
	Position Position
}

// New builds an Error with no position information.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds an Error that points at a specific rune offset in
// source.
func NewAt(kind Kind, source string, offset int, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Source:   source,
		HasPos:   true,
		Position: Position{Offset: offset},
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the error, optionally with a caret pointing at the
// offending offset within the source text. Modeled on go-dws's
// internal/errors.CompilerError.Format.
func (e *Error) Format(caret bool) string {
	if !caret || !e.HasPos || e.Source == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	runes := []rune(e.Source)
	offset := e.Position.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at position %d: %s\n", e.Kind, offset, e.Message))
	sb.WriteString(e.Source)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", offset))
	sb.WriteString("^")
	return sb.String()
}

// Is supports errors.Is against a sentinel constructed with the same
// Kind — hosts can do `errors.Is(err, &wserrors.Error{Kind: wserrors.SyntaxError})`.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
