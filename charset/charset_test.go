package charset

import "testing"

func TestDefaultClassify(t *testing.T) {
	cs := Default()

	tests := []struct {
		r    rune
		want Category
	}{
		{'a', Word},
		{'Z', Word},
		{'9', Word},
		{'_', Word},
		{'é', Word},
		{'語', Word},
		{' ', Blank},
		{'\t', Blank},
		{0, Blank}, // line-break sentinel
		{'-', Punctuation},
		{'.', Punctuation},
		{'(', Punctuation},
	}
	for _, tt := range tests {
		if got := cs.Classify(tt.r); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCategoryPredicates(t *testing.T) {
	cs := Default()
	if !cs.IsWord('x') || cs.IsWord('-') {
		t.Error("IsWord misclassifies")
	}
	if !cs.IsBlank(' ') || cs.IsBlank('x') {
		t.Error("IsBlank misclassifies")
	}
	if !cs.IsPunctuation('-') || cs.IsPunctuation('x') {
		t.Error("IsPunctuation misclassifies")
	}
}

func TestWithExtraWordChars(t *testing.T) {
	cs := Default().WithExtraWordChars("-*")

	if !cs.IsWord('-') || !cs.IsWord('*') {
		t.Error("extra characters should classify as word")
	}
	if !cs.IsWord('a') {
		t.Error("base word characters should be kept")
	}
	if cs.IsWord('.') {
		t.Error("unlisted punctuation should stay punctuation")
	}

	base := Default()
	if base.WithExtraWordChars("") != base {
		t.Error("empty extra set should return the receiver unchanged")
	}
}

func TestWORD(t *testing.T) {
	cs := Default().WORD()

	if !cs.IsWord('-') || !cs.IsWord('a') || !cs.IsWord('(') {
		t.Error("every non-blank character should be a WORD character")
	}
	if !cs.IsBlank(' ') || !cs.IsBlank('\t') {
		t.Error("blanks should stay blank")
	}
	if got := cs.Classify(0); got != Blank {
		t.Errorf("Classify(0) = %v, want blank", got)
	}
}

func TestNewNilPredicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with a nil predicate should panic")
		}
	}()
	New(nil, nil)
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{Word, "word"},
		{Blank, "blank"},
		{Punctuation, "punctuation"},
		{Category(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", int(tt.cat), got, tt.want)
		}
	}
}
