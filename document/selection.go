package document

import "fmt"

// Selection represents a directional span of text. Anchor is the fixed
// end; Active is the end that moved during the scan that produced the
// selection. When Anchor == Active the selection is a bare cursor, which
// is only meaningful under BehaviorCaret.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position // Where the selection started
	Active Position // The end that moved
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// NewCursorSelection creates a collapsed selection at the given position.
func NewCursorSelection(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equals(s.Active)
}

// Start returns the earlier end of the selection.
func (s Selection) Start() Position {
	return s.Anchor.Min(s.Active)
}

// End returns the later end of the selection.
func (s Selection) End() Position {
	return s.Anchor.Max(s.Active)
}

// IsForward returns true if the selection extends forward
// (active at or after anchor).
func (s Selection) IsForward() bool {
	return !s.Active.Before(s.Anchor)
}

// IsBackward returns true if the selection extends backward.
func (s Selection) IsBackward() bool {
	return s.Active.Before(s.Anchor)
}

// Extend returns a new selection with the anchor fixed and the active end
// moved to p.
func (s Selection) Extend(p Position) Selection {
	return Selection{Anchor: s.Anchor, Active: p}
}

// Flip returns a selection with anchor and active swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Active, Active: s.Anchor}
}

// Normalize returns a forward selection covering the same span.
func (s Selection) Normalize() Selection {
	if s.IsBackward() {
		return s.Flip()
	}
	return s
}

// Contains returns true if p falls within [Start, End).
func (s Selection) Contains(p Position) bool {
	return !p.Before(s.Start()) && p.Before(s.End())
}

// Equals returns true if both selections have the same anchor and active.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor.Equals(other.Anchor) && s.Active.Equals(other.Active)
}

// SameSpan returns true if both selections cover the same span,
// regardless of direction.
func (s Selection) SameSpan(other Selection) bool {
	return s.Start().Equals(other.Start()) && s.End().Equals(other.End())
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Active)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Active)
}
