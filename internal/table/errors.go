package table

import (
	"errors"
	"fmt"
)

// FormatError reports a malformed tagged table file.
type FormatError struct {
	// Path is the file being read, empty for in-memory input.
	Path string

	// Line is the 1-based line number of the offending line.
	Line int

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// IsFormatError returns true if err is or wraps a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
