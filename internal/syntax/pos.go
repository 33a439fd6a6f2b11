package syntax

import "fmt"

// Pos is a source position. The zero value is invalid and prints as "-".
type Pos struct {
	filename string // source file name, may be empty
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number, counted in characters
}

// NoPos is the invalid position.
var NoPos Pos

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns "filename:line:col", or "line:col" if filename is empty.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid (line > 0).
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
