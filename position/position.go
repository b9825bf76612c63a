/*
File    : pseudo/position/position.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package position tracks a cursor's location inside a source file and
// renders two-line caret markers for diagnostics (lex/parse/runtime errors).
package position

import (
	"fmt"
	"strings"
)

// Position identifies a single point in a source file.
// Line and Column are 0-based internally; Render produces 1-based output.
type Position struct {
	FileName string // name of the source file (or "stdin" for REPL input)
	Index    int    // absolute byte offset into Text
	Line     int    // 0-indexed line number
	Column   int    // 0-indexed column number
}

// NewPosition creates a Position at the start of a file.
func NewPosition(fileName string) Position {
	return Position{FileName: fileName, Index: 0, Line: 0, Column: 0}
}

// Advance moves the position past one character. A newline resets the
// column to zero and increments the line; any other character just
// advances the column.
func (p Position) Advance(current byte) Position {
	p.Index++
	p.Column++
	if current == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

// Copy returns a value copy of the position (positions are small value
// types, but Copy documents intent at call sites that snapshot a cursor).
func (p Position) Copy() Position {
	return p
}

// String renders the position in 1-based "line:column" form for error text.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.FileName, p.Line+1, p.Column+1)
}

// Marker renders a two-line caret marker pointing at pos within text, in
// the style "<line>:    <source line>\n     <dashes>^-".
func Marker(text string, pos Position) string {
	lines := strings.Split(text, "\n")
	if pos.Line < 0 || pos.Line >= len(lines) {
		return ""
	}
	lineNo := fmt.Sprintf("%d", pos.Line+1)
	var b strings.Builder
	b.WriteString(lineNo)
	b.WriteString(":    ")
	b.WriteString(lines[pos.Line])
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(lineNo)+5))
	b.WriteString(strings.Repeat("-", pos.Column))
	b.WriteString("^-\n")
	return b.String()
}

// Diagnostic pairs a human-readable message with the span where it
// occurred, used by lex/parse/runtime error reporting.
type Diagnostic struct {
	Message string
	Pos     Position
	HasPos  bool
}

// NewDiagnostic creates a Diagnostic carrying a source position.
func NewDiagnostic(message string, pos Position) Diagnostic {
	return Diagnostic{Message: message, Pos: pos, HasPos: true}
}

// NewDiagnosticNoPos creates a Diagnostic with no source position attached.
func NewDiagnosticNoPos(message string) Diagnostic {
	return Diagnostic{Message: message}
}

// Render formats the diagnostic against the original source text,
// including the caret marker when a position is available.
func (d Diagnostic) Render(tag string, text string) string {
	if !d.HasPos {
		return fmt.Sprintf("%s: %s", tag, d.Message)
	}
	return fmt.Sprintf("%s: %s\n%s", tag, d.Message, Marker(text, d.Pos))
}
