package seek

import "github.com/dshills/textseek/document"

// A paragraph is a maximal run of consecutive non-blank lines.

// ParagraphStart returns the first position of the paragraph at pos.
// Invoked on a blank line it anchors to the previous line first, then
// walks back over the blank run to the first line of the preceding
// non-blank run. With no preceding paragraph the document start is
// returned.
func ParagraphStart(ctx *Context, pos document.Position, inner bool) document.Position {
	line := pos.Line
	if line > 0 && ctx.lineBlank(line) {
		line--
	}
	for line >= 0 && ctx.lineBlank(line) {
		line--
	}
	if line < 0 {
		return document.Start()
	}
	for line > 0 && !ctx.lineBlank(line-1) {
		line--
	}
	return ctx.lineStart(line)
}

// ParagraphEnd returns the end of the paragraph at pos. Inner stops at
// the break of the last non-blank line; outer consumes the full trailing
// run of blank lines.
func ParagraphEnd(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position {
	if knownStart != nil {
		pos = *knownStart
	}
	doc := ctx.Doc
	count := doc.LineCount()

	l := pos.Line
	for l < count && !ctx.lineBlank(l) {
		l++
	}
	if l >= count {
		return document.End(doc)
	}

	if inner {
		if l == 0 {
			return document.Start()
		}
		return ctx.lineBreak(l - 1)
	}

	for l < count && ctx.lineBlank(l) {
		l++
	}
	if l >= count {
		return document.End(doc)
	}
	return ctx.lineBreak(l - 1)
}

// Paragraph selects the whole paragraph at pos. Invoked exactly on a
// blank line immediately followed by a non-blank line it selects the
// next paragraph, not the gap.
func Paragraph(ctx *Context, pos document.Position, inner bool) document.Selection {
	var start document.Position
	if ctx.lineBlank(pos.Line) && pos.Line+1 < ctx.Doc.LineCount() && !ctx.lineBlank(pos.Line+1) {
		start = ctx.lineStart(pos.Line + 1)
	} else {
		start = ParagraphStart(ctx, pos, inner)
	}
	end := ParagraphEnd(ctx, start, inner, &start)
	return document.NewSelection(start, end)
}
