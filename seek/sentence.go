package seek

import (
	"github.com/dshills/textseek/charset"
	"github.com/dshills/textseek/document"
)

// sentenceTerminators is the fixed set of sentence-ending punctuation.
// The exact contents are part of the engine's observable contract.
var sentenceTerminators = map[rune]bool{
	'.': true,
	'!': true,
	'?': true,
	'¡': true,
	'§': true,
	'¶': true,
	'¿': true,
	';': true,
	'֞': true,
	'。': true,
}

// IsSentenceTerminator reports whether r ends a sentence.
func IsSentenceTerminator(r rune) bool {
	return sentenceTerminators[r]
}

// sentenceBeforeBlank scans backward over a run of blank characters from
// origin. At most one line break may be crossed; a paragraph gap (two
// consecutive line breaks) may only be crossed when allowPrevious is set,
// and only onto the terminator of the previous sentence. A scan that is
// not permitted to cross returns origin unchanged.
func sentenceBeforeBlank(ctx *Context, origin document.Position, allowPrevious bool) document.Position {
	cur := origin
	breaks := 0
	crossedGap := false

	for ctx.classifyAt(cur) == charset.Blank {
		if ctx.isBreakSlot(cur) {
			breaks++
			if breaks >= 2 {
				if !allowPrevious {
					return origin
				}
				crossedGap = true
			}
		}
		prev, ok := ctx.prev(cur)
		if !ok {
			break
		}
		cur = prev
	}

	if crossedGap && !IsSentenceTerminator(ctx.Doc.CharAt(cur)) {
		return origin
	}

	return cur
}

// sentenceStartScan finds the sentence start behind pos: backward from
// the before-blank position (skipping the first character, which may be
// this sentence's own terminator) until a terminator, a paragraph gap, or
// the document start, then forward over the blank run to the first
// content character.
func sentenceStartScan(ctx *Context, pos document.Position, allowPrevious bool) document.Position {
	cur := sentenceBeforeBlank(ctx, pos, allowPrevious)

	breaks := 0
	first := true
	for {
		prev, ok := ctx.prev(cur)
		if !ok {
			break // document start
		}
		if !first && IsSentenceTerminator(ctx.Doc.CharAt(prev)) {
			break
		}
		if ctx.isBreakSlot(prev) {
			breaks++
			if breaks >= 2 {
				break // paragraph gap
			}
		} else {
			breaks = 0
		}
		first = false
		cur = prev
	}

	// Land on the first content character.
	for ctx.classifyAt(cur) == charset.Blank {
		next, ok := ctx.next(cur)
		if !ok {
			break
		}
		cur = next
	}
	return cur
}

// SentenceStart returns the start of the sentence containing pos.
func SentenceStart(ctx *Context, pos document.Position, inner bool) document.Position {
	return sentenceStartScan(ctx, pos, false)
}

// PreviousSentenceStart returns the start of the sentence containing pos,
// allowing the scan to cross a paragraph gap onto the previous sentence
// when pos sits in trailing blanks behind its terminator.
func PreviousSentenceStart(ctx *Context, pos document.Position) document.Position {
	return sentenceStartScan(ctx, pos, true)
}

// SentenceEnd returns the end of the sentence containing pos. Supplying
// knownStart scans from the true sentence start, which is more reliable
// than guessing from an arbitrary interior position.
//
// Inner stops right after the terminator (or just before a paragraph
// gap); outer additionally consumes the blank run following the
// terminator on its own line, including the line break but nothing
// beyond it.
func SentenceEnd(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position {
	if knownStart != nil {
		pos = *knownStart
	}
	doc := ctx.Doc

	if ctx.lineEmpty(pos.Line) {
		next := pos.Line + 1
		if next >= doc.LineCount() || ctx.lineEmpty(next) {
			return pos
		}
		pos = ctx.lineStart(next)
	}

	breaks := 0
	var firstBreak document.Position
	cur := pos
	for {
		if ctx.isBreakSlot(cur) {
			breaks++
			if breaks == 1 {
				firstBreak = cur
			}
			if breaks >= 2 {
				if inner {
					return firstBreak
				}
				return ctx.lineStart(firstBreak.Line + 1)
			}
		} else {
			breaks = 0
			if IsSentenceTerminator(doc.CharAt(cur)) {
				after, ok := ctx.next(cur)
				if !ok {
					return document.End(doc)
				}
				if inner {
					return after
				}
				// Trailing blanks on the terminator's line belong to the
				// sentence; the following line does not.
				out := after
				for out.Line == cur.Line && ctx.classifyAt(out) == charset.Blank {
					next, ok := ctx.next(out)
					if !ok {
						break
					}
					out = next
				}
				return out
			}
		}

		next, ok := ctx.next(cur)
		if !ok {
			return document.End(doc)
		}
		cur = next
	}
}

// Sentence selects the whole sentence at pos. The start scan does not
// cross to the previous sentence.
func Sentence(ctx *Context, pos document.Position, inner bool) document.Selection {
	start := sentenceStartScan(ctx, pos, false)
	end := SentenceEnd(ctx, pos, inner, &start)
	return document.NewSelection(start, end)
}
