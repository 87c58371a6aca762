package meta

// Strategy represents the execution strategy for wildcard matching.
//
// The engine chooses between:
//   - UseLiteral: plain substring search (no wildcard characters)
//   - UseSegments: per-segment search for patterns containing '*'
//   - UseSingleChar: first-'?' substitution for patterns with '?' but no '*'
//   - UseAllWildcard: trivial acceptance for patterns made only of '*'
//
// Strategy selection is automatic based on pattern shape; see Compile.
type Strategy int

const (
	// UseLiteral handles patterns without any wildcard characters.
	// The whole pattern is one literal and matching reduces to a
	// case-insensitive substring test.
	UseLiteral Strategy = iota

	// UseSegments handles patterns containing '*'. The pattern is split
	// into non-empty literal segments; containment checks each segment
	// independently while counting runs the ordered-ways DP over the
	// segments' occurrence lists.
	UseSegments

	// UseSingleChar handles patterns containing '?' but no '*'.
	// Only the first '?' is resolved: it is substituted with each
	// character of the text in turn and the result is tested for
	// containment. Additional '?' characters stay unsubstituted, so
	// multi-'?' patterns are only partially handled. Counting under this
	// strategy always yields 0.
	UseSingleChar

	// UseAllWildcard handles patterns consisting solely of '*' characters
	// (zero segments). Such a pattern matches any non-empty text exactly
	// once.
	UseAllWildcard
)

// String returns the strategy name for debugging and test output.
func (s Strategy) String() string {
	switch s {
	case UseLiteral:
		return "UseLiteral"
	case UseSegments:
		return "UseSegments"
	case UseSingleChar:
		return "UseSingleChar"
	case UseAllWildcard:
		return "UseAllWildcard"
	default:
		return "Unknown"
	}
}
