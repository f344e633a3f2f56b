package charset

import "unicode"

// Category classifies a character for the seek engine.
type Category int

const (
	// Word characters form word runs.
	Word Category = iota

	// Blank characters separate words and never extend a run.
	Blank

	// Punctuation characters form punctuation runs.
	Punctuation
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Word:
		return "word"
	case Blank:
		return "blank"
	case Punctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Predicate reports whether a character belongs to a class.
type Predicate func(r rune) bool

// Charset classifies characters into Word, Blank, and Punctuation using a
// configurable membership test per class. A character is Word if the word
// predicate matches; otherwise Blank if it is the NUL sentinel (used for
// the line-break slot past the end of a line) or the blank predicate
// matches; otherwise Punctuation.
//
// Charsets are immutable once constructed and safe for concurrent use as
// long as their predicates are.
type Charset struct {
	word  Predicate
	blank Predicate
}

// New creates a charset from word and blank predicates.
// Nil predicates are a caller programming error and panic.
func New(word, blank Predicate) *Charset {
	if word == nil || blank == nil {
		panic("charset: nil classification predicate")
	}
	return &Charset{word: word, blank: blank}
}

// Default returns the standard charset: letters, digits, and underscore
// are word characters; Unicode whitespace is blank.
func Default() *Charset {
	return New(isDefaultWord, unicode.IsSpace)
}

func isDefaultWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WithExtraWordChars returns a charset whose word class additionally
// contains every character in extra. Language configurations use this to
// widen the word class (for example "-" in lisps).
func (c *Charset) WithExtraWordChars(extra string) *Charset {
	if extra == "" {
		return c
	}
	set := make(map[rune]bool, len(extra))
	for _, r := range extra {
		set[r] = true
	}
	word := c.word
	return New(func(r rune) bool {
		return set[r] || word(r)
	}, c.blank)
}

// WORD returns the whitespace-delimited variant of this charset: every
// non-blank character counts as a word character, so word and punctuation
// runs merge into WORD runs.
func (c *Charset) WORD() *Charset {
	blank := c.blank
	return New(func(r rune) bool {
		return r != 0 && !blank(r)
	}, blank)
}

// Classify returns the category of r.
func (c *Charset) Classify(r rune) Category {
	if c.word(r) {
		return Word
	}
	if r == 0 || c.blank(r) {
		return Blank
	}
	return Punctuation
}

// IsWord reports whether r is a word character.
func (c *Charset) IsWord(r rune) bool {
	return c.Classify(r) == Word
}

// IsBlank reports whether r is blank.
func (c *Charset) IsBlank(r rune) bool {
	return c.Classify(r) == Blank
}

// IsPunctuation reports whether r is punctuation.
func (c *Charset) IsPunctuation(r rune) bool {
	return c.Classify(r) == Punctuation
}
