package lf

import (
	"errors"
	"fmt"
)

// ParseError reports malformed logical-form syntax: unbalanced
// parentheses, an empty expression, or trailing input after a complete
// expression.
type ParseError struct {
	// Pos is the byte offset in the input where the problem was detected.
	Pos int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse logical form at offset %d: %s", e.Pos, e.Message)
}

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
