// count.go implements ordered occurrence counting, dispatched by strategy.

package meta

import (
	"strings"

	"github.com/coregx/wildmatch/segment"
)

// Count returns the number of ordered, overlap-permitting ways the pattern
// occurs in text.
//
// Empty pattern or empty text is always 0. Counting is case-insensitive.
//
// Semantics per strategy:
//   - UseLiteral: overlapping occurrence count of the literal
//   - UseAllWildcard: 1 (the whole text, which is non-empty here)
//   - UseSegments: ordered-ways DP over per-segment occurrence lists;
//     0 as soon as any segment is absent
//   - UseSingleChar: 0 — counting does not support '?'
//
// Any '?' anywhere in the pattern makes Count return 0, even when '*' is
// also present. This is an explicit capability gap shared with the '?'
// matcher limitation; it is intentionally not generalized.
//
// Example:
//
//	meta.Compile("*hello*world*").Count("hello world world") // 2
//	meta.Compile("aa").Count("aaa")                          // 2 (overlap)
func (e *Engine) Count(text string) int {
	if e.folded == "" || text == "" {
		return 0
	}
	haystack := strings.ToLower(text)

	switch e.strategy {
	case UseLiteral:
		return segment.Count(haystack, e.folded)
	case UseSegments:
		if strings.ContainsRune(e.folded, '?') {
			// Capability gap: '?' is unsupported in counting.
			return 0
		}
		return e.countSegments(haystack)
	case UseSingleChar:
		// Capability gap: '?' is unsupported in counting.
		return 0
	case UseAllWildcard:
		return 1
	}
	return 0
}

// countSegments counts the ways to choose one occurrence per segment with
// non-decreasing positions. Equal positions are permitted: overlapping
// segment occurrences at the same index all count, as long as no later
// segment picks a strictly smaller position.
func (e *Engine) countSegments(haystack string) int {
	if len(e.segments) == 1 {
		// Single token with wildcards around it: its raw overlapping
		// occurrence count.
		return segment.Count(haystack, e.segments[0])
	}

	if e.prefilter != nil && !e.prefilter.IsMatch([]byte(haystack)) {
		// No segment occurs anywhere, so no chain can exist.
		return 0
	}

	// Occurrence positions per segment, ascending, overlaps included.
	occurrences := make([][]int, len(e.segments))
	for j, seg := range e.segments {
		positions := segment.Occurrences(haystack, seg)
		if len(positions) == 0 {
			return 0
		}
		occurrences[j] = positions
	}

	// DP over segments left to right. ways[k] is the number of chains
	// ending at occurrence k of the current segment. Every occurrence of
	// the first segment seeds a chain of weight 1.
	ways := make([]int, len(occurrences[0]))
	for k := range ways {
		ways[k] = 1
	}

	// Both position lists are sorted, so the sum of previous-segment
	// weights at positions <= the current position accumulates with a
	// single forward pointer per transition: linear, not quadratic, in
	// the number of occurrences.
	for j := 1; j < len(occurrences); j++ {
		prevPositions := occurrences[j-1]
		currPositions := occurrences[j]
		currWays := make([]int, len(currPositions))

		i := 0
		runningSum := 0
		for k, pos := range currPositions {
			for i < len(prevPositions) && prevPositions[i] <= pos {
				runningSum += ways[i]
				i++
			}
			currWays[k] = runningSum
		}
		ways = currWays
	}

	total := 0
	for _, w := range ways {
		total += w
	}
	return total
}
