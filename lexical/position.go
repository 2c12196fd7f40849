// Package lexical holds source positions attached to declarations and diagnostics.
package lexical

import "strconv"

// Position is a location in a source file. Line and Column are 1-based;
// a zero Line means the position is unknown.
type Position struct {
	File   string
	Line   int
	Column int
}

// At returns a position in file at line:column.
func At(file string, line, column int) Position {
	return Position{File: file, Line: line, Column: column}
}

// IsKnown reports whether the position refers to an actual source location.
func (p Position) IsKnown() bool {
	return p.Line > 0
}

// String renders the position as "file:line:column".
func (p Position) String() string {
	if !p.IsKnown() {
		if p.File == "" {
			return "<unknown>"
		}
		return p.File
	}

	file := p.File
	if file == "" {
		file = "<input>"
	}
	return file + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
