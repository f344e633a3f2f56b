package document

import "fmt"

// Position represents a line and character position in a document.
// Both Line and Character are 0-indexed. Character is measured in
// characters (runes) from the start of the line; Character equal to the
// line length denotes the implicit line-break slot at the end of the line.
// Position is an immutable value type.
type Position struct {
	Line      int // 0-indexed line number
	Character int // 0-indexed character offset within the line
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Positions are ordered lexicographically on (Line, Character).
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Character < other.Character {
		return -1
	}
	if p.Character > other.Character {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Equals returns true if both positions name the same place.
func (p Position) Equals(other Position) bool {
	return p.Line == other.Line && p.Character == other.Character
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Character == 0
}

// Min returns the earlier of p and other.
func (p Position) Min(other Position) Position {
	if p.Before(other) {
		return p
	}
	return other
}

// Max returns the later of p and other.
func (p Position) Max(other Position) Position {
	if p.After(other) {
		return p
	}
	return other
}

// Direction is a scan direction used as an arithmetic step: stepping a
// position by Direction characters or lines must wrap correctly at line
// boundaries.
type Direction int

const (
	// Forward scans toward the end of the document.
	Forward Direction = 1

	// Backward scans toward the start of the document.
	Backward Direction = -1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return -d
}
