package document

import "strings"

// Document is a read-only view of a text buffer, exposed to the seek
// engine by the host. The document must not be mutated while a seek call
// is in progress; the engine performs no locking of its own.
//
// Line indices are 0-based. Line text is returned without its terminator,
// and lengths are measured in characters (runes).
type Document interface {
	// LineCount returns the number of lines in the document.
	// A document always has at least one (possibly empty) line.
	LineCount() int

	// Line returns the text of line i without its line terminator.
	Line(i int) string

	// LineLen returns the length of line i in characters.
	LineLen(i int) int

	// CharAt returns the character at p, or 0 when p addresses the
	// implicit line-break slot (p.Character == LineLen(p.Line)).
	CharAt(p Position) rune
}

// Lines is an in-memory Document backed by a slice of lines. It is the
// boundary adapter hosts map their buffers through, and the fixture type
// the engine's tests build documents from.
type Lines struct {
	lines []string
	runes [][]rune
}

// NewLines creates a document from pre-split lines.
func NewLines(lines []string) *Lines {
	if len(lines) == 0 {
		lines = []string{""}
	}
	runes := make([][]rune, len(lines))
	for i, l := range lines {
		runes[i] = []rune(l)
	}
	return &Lines{lines: lines, runes: runes}
}

// NewText creates a document by splitting text on line feeds.
// Carriage returns before a line feed are stripped.
func NewText(text string) *Lines {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return NewLines(strings.Split(text, "\n"))
}

// LineCount returns the number of lines.
func (d *Lines) LineCount() int {
	return len(d.lines)
}

// Line returns the text of line i without its terminator.
func (d *Lines) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// LineLen returns the length of line i in characters.
func (d *Lines) LineLen(i int) int {
	if i < 0 || i >= len(d.runes) {
		return 0
	}
	return len(d.runes[i])
}

// CharAt returns the character at p, or 0 for the line-break slot and any
// out-of-range position.
func (d *Lines) CharAt(p Position) rune {
	if p.Line < 0 || p.Line >= len(d.runes) {
		return 0
	}
	line := d.runes[p.Line]
	if p.Character < 0 || p.Character >= len(line) {
		return 0
	}
	return line[p.Character]
}

// Start returns the first valid position of the document.
func Start() Position {
	return Position{}
}

// End returns the last valid position of doc: the line-break slot of the
// final line.
func End(doc Document) Position {
	last := doc.LineCount() - 1
	return Position{Line: last, Character: doc.LineLen(last)}
}

// Clamp returns p constrained to a valid position for doc.
func Clamp(doc Document, p Position) Position {
	if p.Line < 0 {
		return Start()
	}
	if p.Line >= doc.LineCount() {
		return End(doc)
	}
	if p.Character < 0 {
		p.Character = 0
	}
	if max := doc.LineLen(p.Line); p.Character > max {
		p.Character = max
	}
	return p
}
