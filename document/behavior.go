package document

// SelectionBehavior determines how positions relate to characters, which
// slightly changes boundary arithmetic at line ends.
type SelectionBehavior int

const (
	// BehaviorCaret places positions between characters. The last usable
	// column of a line equals the line length (the line-break slot), and
	// selections may be empty.
	BehaviorCaret SelectionBehavior = iota

	// BehaviorCharacter places positions on characters. The last usable
	// column of a line is length - 1, and selections are never empty.
	BehaviorCharacter
)

// String returns the behavior name.
func (b SelectionBehavior) String() string {
	switch b {
	case BehaviorCaret:
		return "caret"
	case BehaviorCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// LastColumn returns the last usable column of a line of the given length
// under this behavior. An empty line has column 0 either way.
func (b SelectionBehavior) LastColumn(lineLen int) int {
	if b == BehaviorCharacter && lineLen > 0 {
		return lineLen - 1
	}
	return lineLen
}
