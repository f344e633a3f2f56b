package seek

import (
	"github.com/dshills/textseek/charset"
	"github.com/dshills/textseek/document"
)

// Argument objects are bracket/comma-delimited spans inside a call. The
// scan is character-level and may cross lines, tracking parenthesis and
// bracket balance independently because array or call nesting can occur
// inside a single argument.

// argStop identifies what terminated an argument scan.
type argStop int

const (
	argStopEdge argStop = iota
	argStopParen
	argStopBracket
	argStopComma
)

// enclosureKind identifies the innermost unmatched opening delimiter
// behind the origin.
type enclosureKind int

const (
	enclosureNone enclosureKind = iota
	enclosureParen
	enclosureBracket
)

// argumentEnclosure walks backward from origin balancing both delimiter
// kinds and reports the innermost unmatched opener. Origins directly
// inside a bracket pair treat the whole bracket interior as one argument:
// commas there do not separate.
func argumentEnclosure(ctx *Context, origin document.Position) enclosureKind {
	pb, bb := 0, 0
	cur := origin
	for {
		prev, ok := ctx.prev(cur)
		if !ok {
			return enclosureNone
		}
		switch ctx.Doc.CharAt(prev) {
		case ')':
			pb++
		case ']':
			bb++
		case '(':
			if pb == 0 {
				return enclosureParen
			}
			pb--
		case '[':
			if bb == 0 {
				return enclosureBracket
			}
			bb--
		}
		cur = prev
	}
}

// argumentBackward scans backward from origin to the argument's start
// boundary. The terminating delimiter is never consumed.
func argumentBackward(ctx *Context, origin document.Position, commasActive bool) (document.Position, argStop) {
	pb, bb := 0, 0
	cur := origin
	for {
		prev, ok := ctx.prev(cur)
		if !ok {
			return document.Start(), argStopEdge
		}
		switch ctx.Doc.CharAt(prev) {
		case ')':
			pb++
		case ']':
			bb++
		case '(':
			if pb == 0 {
				return cur, argStopParen
			}
			pb--
		case '[':
			if bb == 0 {
				return cur, argStopBracket
			}
			bb--
		case ',':
			if commasActive && pb == 0 && bb == 0 {
				return cur, argStopComma
			}
		}
		cur = prev
	}
}

// argumentForward scans forward from origin to the argument's end
// boundary. The terminating delimiter is never consumed.
func argumentForward(ctx *Context, origin document.Position, commasActive bool) (document.Position, argStop) {
	pb, bb := 0, 0
	cur := origin
	for {
		switch ctx.Doc.CharAt(cur) {
		case '(':
			pb++
		case '[':
			bb++
		case ')':
			if pb == 0 {
				return cur, argStopParen
			}
			pb--
		case ']':
			if bb == 0 {
				return cur, argStopBracket
			}
			bb--
		case ',':
			if commasActive && pb == 0 && bb == 0 {
				return cur, argStopComma
			}
		}
		next, ok := ctx.next(cur)
		if !ok {
			return document.End(ctx.Doc), argStopEdge
		}
		cur = next
	}
}

// trimBlanksForward advances p over a run of blank characters.
func trimBlanksForward(ctx *Context, p document.Position) document.Position {
	for ctx.classifyAt(p) == charset.Blank {
		next, ok := ctx.next(p)
		if !ok {
			break
		}
		p = next
	}
	return p
}

// trimBlanksBackward retreats p over a run of blank characters before it.
func trimBlanksBackward(ctx *Context, p document.Position) document.Position {
	for {
		prev, ok := ctx.prev(p)
		if !ok || ctx.classifyAt(prev) != charset.Blank {
			return p
		}
		p = prev
	}
}

// ArgumentStart returns the start boundary of the argument at pos. The
// enclosing delimiter is always excluded; a leading comma is never
// included. Inner trims the adjacent blank run.
func ArgumentStart(ctx *Context, pos document.Position, inner bool) document.Position {
	commas := argumentEnclosure(ctx, pos) != enclosureBracket
	start, _ := argumentBackward(ctx, pos, commas)
	if inner {
		start = trimBlanksForward(ctx, start)
	}
	return start
}

// ArgumentEnd returns the end boundary of the argument at pos. The
// enclosing delimiter is always excluded. Outer includes a single
// trailing comma when the scan stopped on one; inner trims the adjacent
// blank run instead.
func ArgumentEnd(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position {
	origin := pos
	if knownStart != nil {
		origin = *knownStart
	}
	commas := argumentEnclosure(ctx, origin) != enclosureBracket
	end, stop := argumentForward(ctx, origin, commas)
	if inner {
		return trimBlanksBackward(ctx, end)
	}
	if stop == argStopComma {
		if next, ok := ctx.next(end); ok {
			end = next
		}
	}
	return end
}

// Argument selects the whole argument at pos.
func Argument(ctx *Context, pos document.Position, inner bool) document.Selection {
	start := ArgumentStart(ctx, pos, inner)
	end := ArgumentEnd(ctx, pos, inner, &start)
	return document.NewSelection(start, end)
}
