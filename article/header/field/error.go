package field

import (
	"errors"
	"fmt"
)

// Errors wrapped by ParseError to tell apart the two ways matching stops.
var (
	// ErrIncomplete means the input ended before the grammar was satisfied.
	ErrIncomplete = errors.New("unexpected end of header block")

	// ErrUnexpected means a byte did not belong to the expected class.
	ErrUnexpected = errors.New("unexpected byte in header block")
)

// ParseError is returned when the header block cannot be matched. Offset is the
// position in the parsed buffer where matching could not continue.
type ParseError struct {
	Offset   int    // offset of the failure in the input
	Expected string // description of what was expected at Offset
	Err      error  // either ErrIncomplete or ErrUnexpected
}

// Error returns the error message.
func (err *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: expected %s", err.Err, err.Offset, err.Expected)
}

// Unwrap returns ErrIncomplete or ErrUnexpected.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// errorAt builds the ParseError for a failed match at offset at of b.
func errorAt(b []byte, at int, expected string) *ParseError {
	kind := ErrUnexpected
	if at >= len(b) {
		kind = ErrIncomplete
	}
	return &ParseError{Offset: at, Expected: expected, Err: kind}
}
