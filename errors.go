package pathtoregexp

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedGroup is reported when a "(" has no matching ")".
	ErrUnterminatedGroup = errors.New("unterminated group")
	// ErrEmptyParameterName is reported when a ":" is not followed by a name.
	ErrEmptyParameterName = errors.New("empty parameter name")
	// ErrDanglingEscape is reported when the pattern ends with a backslash.
	ErrDanglingEscape = errors.New("dangling escape")
)

// SyntaxError describes a malformed path pattern.
//
// Err is one of ErrUnterminatedGroup, ErrEmptyParameterName or ErrDanglingEscape.
// Offset is counted in code points from the start of Path.
type SyntaxError struct {
	Path   string
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid path pattern %q at offset %d: %s", e.Path, e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newSyntaxError(path string, offset int, err error) *SyntaxError {
	return &SyntaxError{Path: path, Offset: offset, Err: err}
}
