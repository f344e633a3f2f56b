package seek

import (
	"testing"

	"github.com/dshills/textseek/document"
)

func TestIndentWhole(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "top", "  one", "  two", "end")

	got := Indent(ctx, pos(1, 0), true)
	if !got.SameSpan(span(1, 0, 2, 5)) {
		t.Errorf("indent block = %s, want span (1:0)..(2:5)", got)
	}

	// The same block is found from any line inside it.
	fromBelow := Indent(ctx, pos(2, 3), true)
	if !fromBelow.SameSpan(got.Normalize()) {
		t.Errorf("indent block from line 2 = %s, want %s", fromBelow, got)
	}
}

func TestIndentBlankLinesAreTransparent(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "top", "  one", "", "  two", "end")

	// A blank line inside the block never breaks it, and seeking from the
	// blank line itself finds the surrounding block.
	got := Indent(ctx, pos(2, 0), true)
	if !got.SameSpan(span(1, 0, 3, 5)) {
		t.Errorf("indent block across blank line = %s, want span (1:0)..(3:5)", got)
	}
}

func TestIndentEndTrailingBlanks(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "top", "  one", "  two", "", "end")

	// Inner excludes the trailing blank line, outer includes it.
	if got := IndentEnd(ctx, pos(1, 0), true, nil); !got.Equals(pos(2, 5)) {
		t.Errorf("inner IndentEnd = %s, want (2:5)", got)
	}
	if got := IndentEnd(ctx, pos(1, 0), false, nil); !got.Equals(pos(3, 0)) {
		t.Errorf("outer IndentEnd = %s, want (3:0)", got)
	}
}

func TestIndentStart(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "top", "  one", "  two", "end")

	if got := IndentStart(ctx, pos(2, 0), true); !got.Equals(pos(1, 0)) {
		t.Errorf("inner IndentStart = %s, want (1:0)", got)
	}
	if got := IndentStart(ctx, pos(2, 0), false); !got.Equals(pos(1, 0)) {
		t.Errorf("outer IndentStart = %s, want (1:0)", got)
	}

	// A block at indent zero runs to the document edges.
	if got := IndentStart(ctx, pos(0, 0), true); !got.Equals(document.Start()) {
		t.Errorf("IndentStart at indent zero = %s, want (0:0)", got)
	}
}

func TestIndentAtDocumentEdges(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "  a", "  b")

	got := Indent(ctx, pos(0, 0), true)
	if !got.SameSpan(document.NewSelection(document.Start(), document.End(ctx.Doc))) {
		t.Errorf("indent block = %s, want whole document", got)
	}
}

func TestIndentBlankDocument(t *testing.T) {
	ctx := ctxLines(document.BehaviorCaret, "", "  ")

	if got := IndentStart(ctx, pos(1, 0), true); !got.Equals(document.Start()) {
		t.Errorf("IndentStart in blank document = %s, want (0:0)", got)
	}
	if got := IndentEnd(ctx, pos(0, 0), true, nil); !got.Equals(document.End(ctx.Doc)) {
		t.Errorf("IndentEnd in blank document = %s, want %s", got, document.End(ctx.Doc))
	}
}
