package whetstone

import "github.com/rpreston/whetstone/internal/wserrors"

// ErrorKind classifies an Error. See spec.md §7.
type ErrorKind = wserrors.Kind

// The complete set of error kinds a Parser or Expression can return.
const (
	RuleParseError       = wserrors.RuleParseError
	SyntaxError          = wserrors.SyntaxError
	BindingError         = wserrors.BindingError
	VariableAccessError  = wserrors.VariableAccessError
	NotInitialisedError  = wserrors.NotInitialisedError
	InternalError        = wserrors.InternalError
)

// Error is the single error type every fallible operation in this
// package returns.
type Error = wserrors.Error
