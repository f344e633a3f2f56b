package seek

import "github.com/dshills/textseek/document"

// Surrounding-pair objects select the span between a delimiter pair
// enclosing the cursor: brackets with nesting balance, quotes by nearest
// match. Not part of the line-oriented seeks; the scan is character-level
// and may cross lines.

// PairDelimiters returns the open/close pair for a delimiter key, such as
// '(' or ')' for the paren pair. ok is false for non-delimiter keys.
func PairDelimiters(key rune) (open, close rune, ok bool) {
	switch key {
	case '"', '\'', '`':
		return key, key, true
	case '(', ')':
		return '(', ')', true
	case '[', ']':
		return '[', ']', true
	case '{', '}':
		return '{', '}', true
	case '<', '>':
		return '<', '>', true
	default:
		return 0, 0, false
	}
}

// pairOpenBefore finds the unmatched opening delimiter at or before pos.
func pairOpenBefore(ctx *Context, pos document.Position, open, close rune) (document.Position, bool) {
	if ctx.Doc.CharAt(pos) == open {
		return pos, true
	}
	depth := 0
	cur := pos
	for {
		prev, ok := ctx.prev(cur)
		if !ok {
			return document.Position{}, false
		}
		switch ctx.Doc.CharAt(prev) {
		case close:
			depth++
		case open:
			if depth == 0 {
				return prev, true
			}
			depth--
		}
		cur = prev
	}
}

// pairCloseAfter finds the unmatched closing delimiter strictly after
// openPos.
func pairCloseAfter(ctx *Context, openPos document.Position, open, close rune) (document.Position, bool) {
	depth := 0
	cur := openPos
	for {
		next, ok := ctx.next(cur)
		if !ok {
			return document.Position{}, false
		}
		cur = next
		switch ctx.Doc.CharAt(cur) {
		case open:
			depth++
		case close:
			if depth == 0 {
				return cur, true
			}
			depth--
		}
	}
}

// quoteBounds finds the nearest symmetric delimiters around pos. A cursor
// sitting on a quote treats it as the opening one.
func quoteBounds(ctx *Context, pos document.Position, q rune) (open, close document.Position, ok bool) {
	if ctx.Doc.CharAt(pos) == q {
		open = pos
	} else {
		cur := pos
		for {
			prev, prevOK := ctx.prev(cur)
			if !prevOK {
				return document.Position{}, document.Position{}, false
			}
			cur = prev
			if ctx.Doc.CharAt(cur) == q {
				open = cur
				break
			}
		}
	}

	cur := open
	for {
		next, nextOK := ctx.next(cur)
		if !nextOK {
			return document.Position{}, document.Position{}, false
		}
		cur = next
		if ctx.Doc.CharAt(cur) == q {
			return open, cur, true
		}
	}
}

// pairBounds finds the enclosing delimiter positions for pos.
func pairBounds(ctx *Context, pos document.Position, open, close rune) (document.Position, document.Position, bool) {
	if open == close {
		return quoteBounds(ctx, pos, open)
	}
	// A cursor on the closing delimiter searches from just before it so
	// the pair it closes is the one selected.
	origin := pos
	if ctx.Doc.CharAt(pos) == close {
		prev, ok := ctx.prev(pos)
		if !ok {
			return document.Position{}, document.Position{}, false
		}
		origin = prev
	}
	openPos, ok := pairOpenBefore(ctx, origin, open, close)
	if !ok {
		return document.Position{}, document.Position{}, false
	}
	closePos, ok := pairCloseAfter(ctx, openPos, open, close)
	if !ok {
		return document.Position{}, document.Position{}, false
	}
	return openPos, closePos, true
}

// PairStart returns the start boundary of the pair object enclosing pos:
// the opening delimiter for outer, the position after it for inner. With
// no enclosing pair, pos is returned with ok false.
func PairStart(ctx *Context, pos document.Position, open, close rune, inner bool) (document.Position, bool) {
	openPos, _, ok := pairBounds(ctx, pos, open, close)
	if !ok {
		return pos, false
	}
	if inner {
		if next, nok := ctx.next(openPos); nok {
			return next, true
		}
	}
	return openPos, ok
}

// PairEnd returns the end boundary of the pair object enclosing pos: the
// position after the closing delimiter for outer, the delimiter itself
// for inner. With no enclosing pair, pos is returned with ok false.
func PairEnd(ctx *Context, pos document.Position, open, close rune, inner bool) (document.Position, bool) {
	_, closePos, ok := pairBounds(ctx, pos, open, close)
	if !ok {
		return pos, false
	}
	if !inner {
		if next, nok := ctx.next(closePos); nok {
			return next, true
		}
	}
	return closePos, ok
}

// Pair selects the span enclosed by the delimiter pair around pos. Inner
// excludes the delimiters; outer includes them. With no enclosing pair a
// collapsed selection at pos is returned with ok false.
func Pair(ctx *Context, pos document.Position, open, close rune, inner bool) (document.Selection, bool) {
	openPos, closePos, ok := pairBounds(ctx, pos, open, close)
	if !ok {
		return document.NewCursorSelection(pos), false
	}
	start := openPos
	end := closePos
	if inner {
		if next, nok := ctx.next(openPos); nok {
			start = next
		}
	} else {
		if next, nok := ctx.next(closePos); nok {
			end = next
		}
	}
	return document.NewSelection(start, end), true
}
