package seek

import (
	"github.com/dshills/textseek/charset"
	"github.com/dshills/textseek/document"
)

// WordBoundary seeks the next word boundary from origin in the given
// direction. Word objects never cross a line boundary: the scan anchors
// on a usable line (skipping fully empty lines when origin sits at a line
// edge) and then walks within that line, consuming a blank run and a
// maximal run of same-category characters.
//
// stopAtEnd selects which side of the word the blank run belongs to: when
// it matches the scan direction (true going forward, false going
// backward) blanks are consumed before the category run, landing on the
// word's near edge; otherwise the blank run is consumed afterward,
// landing past the word's far edge.
//
// The second result is false when no further word exists in the scan
// direction.
func WordBoundary(ctx *Context, dir document.Direction, origin document.Position, stopAtEnd bool) (document.Selection, bool) {
	doc := ctx.Doc
	anchor := origin

	atEdge := false
	if dir == document.Forward {
		atEdge = origin.Character >= ctx.lastColumn(origin.Line)
	} else {
		limit := 0
		if ctx.Behavior == document.BehaviorCharacter {
			limit = 1
		}
		atEdge = origin.Character <= limit
	}

	if atEdge {
		// Skip fully empty lines in the scan direction.
		line := origin.Line + int(dir)
		for line >= 0 && line < doc.LineCount() && doc.LineLen(line) == 0 {
			line += int(dir)
		}
		if line < 0 || line >= doc.LineCount() {
			return document.Selection{}, false
		}
		if dir == document.Forward {
			anchor = document.Position{Line: line}
		} else {
			anchor = document.Position{Line: line, Character: ctx.lastColumn(line)}
		}
	} else if ctx.Behavior == document.BehaviorCharacter {
		// Skip the character under the cursor when its neighbor in the
		// scan direction starts a different run, so the scan does not
		// re-enter the word already under the cursor. Suppressed for a
		// blank neighbor when the caller wants trailing blank runs.
		cur := ctx.classifyAt(origin)
		neighbor := document.Position{Line: origin.Line, Character: origin.Character + int(dir)}
		ncat := ctx.classifyAt(neighbor)
		if cur != ncat && !(stopAtEnd && ncat == charset.Blank) {
			anchor = neighbor
		}
	}

	line := anchor.Line
	length := doc.LineLen(line)
	step := int(dir)
	col := anchor.Character
	if dir == document.Backward {
		// Backward scans examine the character before the anchor.
		col--
	}

	inRange := func(c int) bool { return c >= 0 && c <= length }
	catAt := func(c int) charset.Category {
		if c < 0 || c >= length {
			return charset.Blank // line-break slot
		}
		return ctx.Charset.Classify(doc.CharAt(document.Position{Line: line, Character: c}))
	}

	blanksFirst := stopAtEnd == (dir == document.Forward)
	if blanksFirst {
		for inRange(col) && catAt(col) == charset.Blank {
			col += step
		}
	}
	if inRange(col) {
		if k := catAt(col); k != charset.Blank {
			for inRange(col) && catAt(col) == k {
				col += step
			}
		}
	}
	if !blanksFirst {
		for inRange(col) && catAt(col) == charset.Blank {
			col += step
		}
	}

	// Backward walking stops one past the true boundary.
	var activeCol int
	if dir == document.Forward {
		activeCol = col
		if activeCol > length {
			activeCol = length
		}
	} else {
		activeCol = col + 1
		if activeCol < 0 {
			activeCol = 0
		}
	}

	active := document.Position{Line: line, Character: activeCol}
	return document.NewSelection(anchor, active), true
}

// WordStart returns the start boundary of the word at pos. With no word
// before pos the document start is returned.
func WordStart(ctx *Context, pos document.Position, inner bool) document.Position {
	sel, ok := WordBoundary(ctx, document.Backward, pos, false)
	if !ok {
		return document.Start()
	}
	return sel.Active
}

// WordEnd returns the end boundary of the word at pos. Inner stops at the
// word's last character; outer consumes the trailing blank run. With no
// word after pos the document end is returned.
func WordEnd(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position {
	origin := pos
	if knownStart != nil {
		origin = *knownStart
	}
	sel, ok := WordBoundary(ctx, document.Forward, origin, inner)
	if !ok {
		return document.End(ctx.Doc)
	}
	return sel.Active
}

// Word selects the whole word at pos.
func Word(ctx *Context, pos document.Position, inner bool) document.Selection {
	start := WordStart(ctx, pos, inner)
	end := WordEnd(ctx, pos, inner, &start)
	return document.NewSelection(start, end)
}

// WORDStart is WordStart over the whitespace-delimited WORD charset.
func WORDStart(ctx *Context, pos document.Position, inner bool) document.Position {
	return WordStart(ctx.withWORD(), pos, inner)
}

// WORDEnd is WordEnd over the whitespace-delimited WORD charset.
func WORDEnd(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position {
	return WordEnd(ctx.withWORD(), pos, inner, knownStart)
}

// WORD selects the whole whitespace-delimited WORD at pos.
func WORD(ctx *Context, pos document.Position, inner bool) document.Selection {
	return Word(ctx.withWORD(), pos, inner)
}
