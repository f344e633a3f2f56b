package seek

import "github.com/dshills/textseek/document"

// An indent block is a maximal run of lines whose first non-blank column
// is at least a reference indent. Blank lines inside the run are
// transparent and never break it.

// indentRefLine finds the reference line for an indent scan: the first
// non-blank line at or beyond line in the scan direction. The second
// result is false when only blank lines remain to the document edge.
func indentRefLine(ctx *Context, line int, dir document.Direction) (int, bool) {
	count := ctx.Doc.LineCount()
	for line >= 0 && line < count {
		if !ctx.lineBlank(line) {
			return line, true
		}
		line += int(dir)
	}
	return 0, false
}

// IndentStart returns the start of the indent block at pos. Inner
// excludes blank lines preceding the block's first kept line; outer
// extends to the line immediately following the dedented line above.
func IndentStart(ctx *Context, pos document.Position, inner bool) document.Position {
	ref, ok := indentRefLine(ctx, pos.Line, document.Backward)
	if !ok {
		return document.Start()
	}
	indent := ctx.indentOf(ref)

	kept := ref
	for l := ref - 1; l >= 0; l-- {
		if ctx.lineBlank(l) {
			continue
		}
		if ctx.indentOf(l) < indent {
			if inner {
				return ctx.lineStart(kept)
			}
			return ctx.lineStart(l + 1)
		}
		kept = l
	}
	return document.Start()
}

// IndentEnd returns the end of the indent block at pos. Inner stops at
// the break of the last kept line; outer extends to the break of the line
// immediately preceding the dedented line below, which may include
// trailing blank lines the inner boundary excludes.
func IndentEnd(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position {
	if knownStart != nil {
		pos = *knownStart
	}
	ref, ok := indentRefLine(ctx, pos.Line, document.Forward)
	if !ok {
		return document.End(ctx.Doc)
	}
	indent := ctx.indentOf(ref)

	count := ctx.Doc.LineCount()
	kept := ref
	for l := ref + 1; l < count; l++ {
		if ctx.lineBlank(l) {
			continue
		}
		if ctx.indentOf(l) < indent {
			if inner {
				return ctx.lineBreak(kept)
			}
			return ctx.lineBreak(l - 1)
		}
		kept = l
	}
	return document.End(ctx.Doc)
}

// Indent selects the whole indent block at pos.
func Indent(ctx *Context, pos document.Position, inner bool) document.Selection {
	start := IndentStart(ctx, pos, inner)
	end := IndentEnd(ctx, pos, inner, nil)
	return document.NewSelection(start, end)
}
