// Package seek implements text-object boundary seeking: pure algorithms
// that map a cursor position to the span of the word, WORD, sentence,
// paragraph, indent block, or argument at that position, as either an
// inner extent (content only) or an outer extent (content plus a
// canonical amount of surrounding separator).
//
// Every object kind exposes the same three operations:
//
//	Whole(ctx, pos, inner)            -> document.Selection
//	Start(ctx, pos, inner)            -> document.Position
//	End(ctx, pos, inner, knownStart)  -> document.Position
//
// plus the standalone WordBoundary primitive. Lookup dispatches by
// ObjectKind over a static table of the three operations.
//
// All operations are synchronous, side-effect-free, and re-entrant: they
// read the borrowed Document and compute positions, nothing else. Calls
// are bounded by the document length; typical calls stay within the
// current or an adjacent line. Document edges, empty documents, and
// single empty lines resolve to sentinel positions rather than errors.
package seek
