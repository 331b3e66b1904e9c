package maze

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Grid accessors for positions outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// FormatError reports maze text that cannot be turned into a Grid.
type FormatError struct {
	Line   int // 1-based line among the non-blank lines, 0 if not line specific
	Column int // 1-based, 0 if not column specific
	Reason string
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("maze format: line %d, column %d: %s", e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("maze format: line %d: %s", e.Line, e.Reason)
	default:
		return "maze format: " + e.Reason
	}
}
