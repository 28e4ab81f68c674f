package executor

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes execution errors.
type ErrorCode string

const (
	// ErrCodeUnknownFunction indicates an operator name outside the registry.
	ErrCodeUnknownFunction ErrorCode = "UNKNOWN_FUNCTION"

	// ErrCodeArity indicates the wrong number of arguments.
	ErrCodeArity ErrorCode = "ARITY"

	// ErrCodeTypeMismatch indicates an argument of the wrong kind.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeUnknownConstant indicates an atom that is not all_rows, a
	// number, or a string:... literal.
	ErrCodeUnknownConstant ErrorCode = "UNKNOWN_CONSTANT"

	// ErrCodeUnknownColumn indicates a well-formed column identifier the
	// table does not have.
	ErrCodeUnknownColumn ErrorCode = "UNKNOWN_COLUMN"
)

// ExecutionError reports a logical form that cannot be evaluated.
type ExecutionError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Expr is the offending sub-expression in S-expression form.
	Expr string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Expr != "" {
		return fmt.Sprintf("%s: %s (expr=%s)", e.Code, e.Message, e.Expr)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsExecutionError returns true if err is or wraps an *ExecutionError.
func IsExecutionError(err error) bool {
	var ee *ExecutionError
	return errors.As(err, &ee)
}

// IsTypeMismatch returns true if err is an execution error caused by an
// argument of the wrong kind.
func IsTypeMismatch(err error) bool {
	return CodeOf(err) == ErrCodeTypeMismatch
}

// CodeOf returns the code of the *ExecutionError in err's chain, or "" if
// there is none.
func CodeOf(err error) ErrorCode {
	var ee *ExecutionError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}

func newError(code ErrorCode, expr fmt.Stringer, format string, args ...any) *ExecutionError {
	e := &ExecutionError{Code: code, Message: fmt.Sprintf(format, args...)}
	if expr != nil {
		e.Expr = expr.String()
	}
	return e
}

// Diagnostic records a soft failure: an operator that produced an empty
// result instead of failing.
type Diagnostic struct {
	// Op is the operator name.
	Op string `json:"op"`

	// Expr is the argument expression that produced the empty input, in
	// bracket-list form.
	Expr string `json:"expr"`

	// Reason describes what went wrong.
	Reason string `json:"reason"`
}

// String renders the diagnostic as "<reason>: <expr>".
func (d Diagnostic) String() string {
	return d.Reason + ": " + d.Expr
}
