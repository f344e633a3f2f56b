package seek

import (
	"github.com/dshills/textseek/charset"
	"github.com/dshills/textseek/document"
)

// Context carries the collaborator inputs a seek operation needs: the
// borrowed read-only document, the character classification, and the
// selection behavior of the caller's editing mode.
//
// A Context holds no mutable state; the same Context may be used from
// multiple goroutines as long as the document is not mutated during the
// calls.
type Context struct {
	Doc      document.Document
	Charset  *charset.Charset
	Behavior document.SelectionBehavior
}

// NewContext creates a seek context. A nil charset uses charset.Default().
func NewContext(doc document.Document, cs *charset.Charset, behavior document.SelectionBehavior) *Context {
	if cs == nil {
		cs = charset.Default()
	}
	return &Context{Doc: doc, Charset: cs, Behavior: behavior}
}

// withWORD returns a context classifying every non-blank character as a
// word character.
func (c *Context) withWORD() *Context {
	return &Context{Doc: c.Doc, Charset: c.Charset.WORD(), Behavior: c.Behavior}
}

// classifyAt returns the category of the character at p. The line-break
// slot classifies as Blank via the NUL sentinel.
func (c *Context) classifyAt(p document.Position) charset.Category {
	return c.Charset.Classify(c.Doc.CharAt(p))
}

// lastColumn returns the last usable column of a line under the context's
// selection behavior.
func (c *Context) lastColumn(line int) int {
	return c.Behavior.LastColumn(c.Doc.LineLen(line))
}

// isBreakSlot reports whether p addresses a line-break slot.
func (c *Context) isBreakSlot(p document.Position) bool {
	return p.Character >= c.Doc.LineLen(p.Line)
}

// next returns the position one character after p, crossing the line
// break. The second result is false when p is the document end.
func (c *Context) next(p document.Position) (document.Position, bool) {
	if p.Character < c.Doc.LineLen(p.Line) {
		return document.Position{Line: p.Line, Character: p.Character + 1}, true
	}
	if p.Line+1 < c.Doc.LineCount() {
		return document.Position{Line: p.Line + 1}, true
	}
	return p, false
}

// prev returns the position one character before p, crossing the line
// break. The second result is false when p is the document start.
func (c *Context) prev(p document.Position) (document.Position, bool) {
	if p.Character > 0 {
		return document.Position{Line: p.Line, Character: p.Character - 1}, true
	}
	if p.Line > 0 {
		return document.Position{Line: p.Line - 1, Character: c.Doc.LineLen(p.Line - 1)}, true
	}
	return p, false
}

// lineEmpty reports whether line i has zero length.
func (c *Context) lineEmpty(i int) bool {
	return c.Doc.LineLen(i) == 0
}

// lineBlank reports whether line i is empty or contains only blank
// characters.
func (c *Context) lineBlank(i int) bool {
	text := c.Doc.Line(i)
	for _, r := range text {
		if !c.Charset.IsBlank(r) {
			return false
		}
	}
	return true
}

// indentOf returns the column of the first non-blank character of line i,
// or the line length when the line is blank.
func (c *Context) indentOf(i int) int {
	col := 0
	for _, r := range c.Doc.Line(i) {
		if !c.Charset.IsBlank(r) {
			return col
		}
		col++
	}
	return col
}

// lineBreak returns the line-break slot position of line i.
func (c *Context) lineBreak(i int) document.Position {
	return document.Position{Line: i, Character: c.Doc.LineLen(i)}
}

// lineStart returns the first position of line i.
func (c *Context) lineStart(i int) document.Position {
	return document.Position{Line: i}
}
