// ismatch.go implements boolean containment, dispatched by strategy.

package meta

import "strings"

// IsMatch reports whether the pattern is contained in text.
//
// Empty pattern or empty text is always false. Matching is
// case-insensitive; the text is folded per call and the original is never
// modified.
//
// For multi-segment patterns every segment must be present somewhere in
// the text, but segment ORDER is not checked — only Count enforces order.
// "b a" therefore matches "*a*b*" while counting the same pair yields 0.
//
// Example:
//
//	engine := meta.Compile("*hello*world*")
//	engine.IsMatch("world, hello") // true (order ignored)
func (e *Engine) IsMatch(text string) bool {
	if e.folded == "" || text == "" {
		return false
	}
	haystack := strings.ToLower(text)

	switch e.strategy {
	case UseLiteral:
		return strings.Contains(haystack, e.folded)
	case UseSegments:
		return e.isMatchSegments(haystack)
	case UseSingleChar:
		return e.isMatchSingleChar(haystack)
	case UseAllWildcard:
		// text is non-empty here; only-'*' patterns accept it.
		return true
	}
	return false
}

// isMatchSegments checks that every segment is independently a substring
// of the haystack. A single segment reduces to a plain substring test.
func (e *Engine) isMatchSegments(haystack string) bool {
	if e.prefilter != nil && !e.prefilter.IsMatch([]byte(haystack)) {
		// No segment occurs anywhere.
		return false
	}

	for _, seg := range e.segments {
		if !strings.Contains(haystack, seg) {
			return false
		}
	}
	return true
}

// isMatchSingleChar resolves only the FIRST '?' in the pattern: it is
// substituted with each character of the haystack in turn and the result
// is tested for containment. Later '?' characters stay unsubstituted, so
// they must appear verbatim in the text for the test to succeed. This is a
// known capability gap; do not generalize it.
func (e *Engine) isMatchSingleChar(haystack string) bool {
	i := strings.IndexByte(e.folded, '?')
	prefix, suffix := e.folded[:i], e.folded[i+1:]

	for _, c := range haystack {
		if strings.Contains(haystack, prefix+string(c)+suffix) {
			return true
		}
	}
	return false
}
