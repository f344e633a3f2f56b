package seek

import "github.com/dshills/textseek/document"

// ObjectKind identifies a text-object kind.
type ObjectKind int

const (
	// KindWord is a run of word or punctuation characters.
	KindWord ObjectKind = iota

	// KindWORD is a whitespace-delimited run.
	KindWORD

	// KindSentence is a terminator-delimited sentence.
	KindSentence

	// KindParagraph is a run of non-blank lines.
	KindParagraph

	// KindIndent is a run of lines at or above a reference indent.
	KindIndent

	// KindArgument is a bracket/comma-delimited argument.
	KindArgument
)

// String returns the kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindWORD:
		return "WORD"
	case KindSentence:
		return "sentence"
	case KindParagraph:
		return "paragraph"
	case KindIndent:
		return "indent"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// WholeFunc selects the whole object at a position.
type WholeFunc func(ctx *Context, pos document.Position, inner bool) document.Selection

// StartFunc seeks the object's start boundary.
type StartFunc func(ctx *Context, pos document.Position, inner bool) document.Position

// EndFunc seeks the object's end boundary, optionally scanning from a
// known start.
type EndFunc func(ctx *Context, pos document.Position, inner bool, knownStart *document.Position) document.Position

// Object bundles the three seek operations of one object kind. The table
// is static: no callable is ever patched at runtime.
type Object struct {
	Kind  ObjectKind
	Whole WholeFunc
	Start StartFunc
	End   EndFunc
}

var objects = map[ObjectKind]Object{
	KindWord:      {Kind: KindWord, Whole: Word, Start: WordStart, End: WordEnd},
	KindWORD:      {Kind: KindWORD, Whole: WORD, Start: WORDStart, End: WORDEnd},
	KindSentence:  {Kind: KindSentence, Whole: Sentence, Start: SentenceStart, End: SentenceEnd},
	KindParagraph: {Kind: KindParagraph, Whole: Paragraph, Start: ParagraphStart, End: ParagraphEnd},
	KindIndent:    {Kind: KindIndent, Whole: Indent, Start: IndentStart, End: IndentEnd},
	KindArgument:  {Kind: KindArgument, Whole: Argument, Start: ArgumentStart, End: ArgumentEnd},
}

// Lookup returns the object bundle for a kind.
func Lookup(kind ObjectKind) (Object, bool) {
	obj, ok := objects[kind]
	return obj, ok
}

// Kinds returns all object kinds in declaration order.
func Kinds() []ObjectKind {
	return []ObjectKind{KindWord, KindWORD, KindSentence, KindParagraph, KindIndent, KindArgument}
}

// PairObject builds an Object for a surrounding delimiter pair. Pair
// objects are parameterized by their delimiters and therefore live
// outside the fixed kind table. Seeks with no enclosing pair collapse to
// the origin.
func PairObject(open, close rune) Object {
	return Object{
		Kind: -1,
		Whole: func(ctx *Context, pos document.Position, inner bool) document.Selection {
			sel, _ := Pair(ctx, pos, open, close, inner)
			return sel
		},
		Start: func(ctx *Context, pos document.Position, inner bool) document.Position {
			p, _ := PairStart(ctx, pos, open, close, inner)
			return p
		},
		End: func(ctx *Context, pos document.Position, inner bool, _ *document.Position) document.Position {
			p, _ := PairEnd(ctx, pos, open, close, inner)
			return p
		},
	}
}
