package seek

import (
	"testing"

	"github.com/dshills/textseek/document"
)

func TestSentenceTerminators(t *testing.T) {
	for _, r := range []rune{'.', '!', '?', '¡', '§', '¶', '¿', ';', '֞', '。'} {
		if !IsSentenceTerminator(r) {
			t.Errorf("IsSentenceTerminator(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{',', ':', 'a', ' ', 0} {
		if IsSentenceTerminator(r) {
			t.Errorf("IsSentenceTerminator(%q) = true, want false", r)
		}
	}
}

func TestSentenceWholeWithTrailingBlanks(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "foo.", "  bar")

	inner := Sentence(ctx, pos(0, 0), true)
	if !inner.SameSpan(span(0, 0, 0, 4)) {
		t.Errorf("inner sentence = %s, want span (0:0)..(0:4)", inner)
	}

	// Outer consumes the blanks on the terminator's line, including its
	// line break, but stops before the next line's content.
	outer := Sentence(ctx, pos(0, 0), false)
	if !outer.SameSpan(span(0, 0, 1, 0)) {
		t.Errorf("outer sentence = %s, want span (0:0)..(1:0)", outer)
	}

	// The second sentence starts at its first content character.
	second := Sentence(ctx, pos(1, 3), true)
	if !second.SameSpan(span(1, 2, 1, 5)) {
		t.Errorf("second sentence = %s, want span (1:2)..(1:5)", second)
	}
}

func TestSentenceStartSameLine(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "One. Two three.")

	// From inside the second sentence.
	if got := SentenceStart(ctx, pos(0, 6), true); !got.Equals(pos(0, 5)) {
		t.Errorf("SentenceStart(0:6) = %s, want (0:5)", got)
	}

	// Trailing blanks behind a terminator still belong to that sentence.
	if got := SentenceStart(ctx, pos(0, 4), true); !got.Equals(pos(0, 0)) {
		t.Errorf("SentenceStart(0:4) = %s, want (0:0)", got)
	}

	// The terminator itself belongs to its own sentence.
	if got := SentenceStart(ctx, pos(0, 3), true); !got.Equals(pos(0, 0)) {
		t.Errorf("SentenceStart(0:3) = %s, want (0:0)", got)
	}
}

func TestSentenceStartAcrossParagraphGap(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "One.", "", "Two.")

	// The plain start scan never crosses a paragraph gap backward.
	if got := SentenceStart(ctx, pos(2, 0), true); !got.Equals(pos(2, 0)) {
		t.Errorf("SentenceStart(2:0) = %s, want (2:0)", got)
	}

	// From the gap, the previous-sentence scan crosses onto the sentence
	// the gap follows.
	if got := PreviousSentenceStart(ctx, pos(1, 0)); !got.Equals(pos(0, 0)) {
		t.Errorf("PreviousSentenceStart(1:0) = %s, want (0:0)", got)
	}
}

func TestSentenceEndTerminator(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "One. Two three.")

	if got := SentenceEnd(ctx, pos(0, 0), true, nil); !got.Equals(pos(0, 4)) {
		t.Errorf("inner SentenceEnd(0:0) = %s, want (0:4)", got)
	}
	// Outer consumes the single blank after the terminator.
	if got := SentenceEnd(ctx, pos(0, 0), false, nil); !got.Equals(pos(0, 5)) {
		t.Errorf("outer SentenceEnd(0:0) = %s, want (0:5)", got)
	}

	start := pos(0, 5)
	if got := SentenceEnd(ctx, pos(0, 9), true, &start); !got.Equals(pos(0, 15)) {
		t.Errorf("inner SentenceEnd from known start = %s, want (0:15)", got)
	}
}

func TestSentenceEndParagraphGap(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "One", "", "Two")

	// Without a terminator the sentence ends at the paragraph gap: inner
	// stops at the first line break, outer at the following line start.
	if got := SentenceEnd(ctx, pos(0, 0), true, nil); !got.Equals(pos(0, 3)) {
		t.Errorf("inner SentenceEnd = %s, want (0:3)", got)
	}
	if got := SentenceEnd(ctx, pos(0, 0), false, nil); !got.Equals(pos(1, 0)) {
		t.Errorf("outer SentenceEnd = %s, want (1:0)", got)
	}
}

func TestSentenceEndOnEmptyLine(t *testing.T) {
	gap := ctxLines(document.BehaviorCaret, "", "", "x")
	if got := SentenceEnd(gap, pos(0, 0), true, nil); !got.Equals(pos(0, 0)) {
		t.Errorf("SentenceEnd on empty line before empty line = %s, want (0:0)", got)
	}

	lead := ctxLines(document.BehaviorCaret, "", "abc")
	if got := SentenceEnd(lead, pos(0, 0), true, nil); !got.Equals(pos(1, 3)) {
		t.Errorf("SentenceEnd on empty line before content = %s, want (1:3)", got)
	}
}

func TestSentenceEndWithoutTerminator(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "hello world")
	if got := SentenceEnd(ctx, pos(0, 0), true, nil); !got.Equals(document.End(ctx.Doc)) {
		t.Errorf("SentenceEnd = %s, want document end %s", got, document.End(ctx.Doc))
	}
}
