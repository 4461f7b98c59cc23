package charstream

import (
	"fmt"
)

// Position represents a position within a text file.
//
// Line and Column are 1-based and describe the next character to be
// returned.  Offset is the number of raw bytes consumed from the source.
type Position struct {
	Offset int
	Line   int
	Column int
}

// MakePosition returns the Position for the start of a text file.
func MakePosition() Position {
	return Position{Line: 1, Column: 1}
}

// Reset sets this position to the start of the file.
func (pos *Position) Reset() {
	*pos = MakePosition()
}

// newline moves to the first column of the next line.
func (pos *Position) newline() {
	pos.Line++
	pos.Column = 1
}

// nextTabStop returns the number of columns between pos and the next tab
// stop, given stops every tabSize columns.
func (pos Position) nextTabStop(tabSize int) int {
	return tabSize - ((pos.Column - 1) % tabSize)
}

func (pos Position) String() string {
	return fmt.Sprintf("line %d column %d (byte offset %d)", pos.Line, pos.Column, pos.Offset)
}
