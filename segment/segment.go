// Package segment provides the literal tooling for the wildcard engine:
// splitting patterns into literal segments and locating segment occurrences
// in text.
//
// Key concepts:
//   - A segment is a maximal non-empty literal substring of a wildcard
//     pattern, bounded by '*' markers
//   - An occurrence is a start index where a segment is found in text;
//     overlapping occurrences are all reported (the scan resumes one byte
//     after the previous match start, not after its end)
//
// All functions expect already case-folded input; callers lower both the
// pattern and the text before reaching this package.
package segment

import "strings"

// Split splits a wildcard pattern on '*' and returns its ordered non-empty
// literal segments. Empty strings produced by leading, trailing, or
// consecutive '*' markers are dropped.
//
// A pattern consisting only of '*' characters yields an empty slice (the
// all-wildcard case). Callers handle patterns without any '*' on the plain
// substring path and never pass them here.
//
// Example:
//
//	segment.Split("*hello**world*") // ["hello", "world"]
//	segment.Split("***")            // []
func Split(pattern string) []string {
	parts := strings.Split(pattern, "*")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Occurrences returns the ascending list of all start indices where seg
// occurs in text, overlapping occurrences included: after a match at index
// i the scan resumes at i+1.
//
// An empty segment or empty text yields nil.
//
// Example:
//
//	segment.Occurrences("aaa", "aa") // [0, 1]
func Occurrences(text, seg string) []int {
	if seg == "" || text == "" {
		return nil
	}

	var positions []int
	start := 0
	for {
		idx := strings.Index(text[start:], seg)
		if idx < 0 {
			break
		}
		positions = append(positions, start+idx)
		start += idx + 1
	}
	return positions
}

// Count returns the number of (overlapping) occurrences of seg in text
// without building a position slice. Same scan semantics as Occurrences.
func Count(text, seg string) int {
	if seg == "" || text == "" {
		return 0
	}

	count := 0
	start := 0
	for {
		idx := strings.Index(text[start:], seg)
		if idx < 0 {
			break
		}
		count++
		start += idx + 1
	}
	return count
}
