// Package wildmatch implements a small wildcard pattern-matching and
// occurrence-counting engine for short text fields such as sender names,
// subjects, and snippets.
//
// A pattern is literal text interleaved with wildcards:
//   - '*' matches any substring (including empty) between literal segments
//   - '?' is intended to match exactly one character, but is only
//     partially supported (see Limitations)
//
// The engine answers two questions without a regex engine:
//   - Match: is the pattern contained in the text?
//   - Count: how many ordered, possibly-overlapping ways does it appear?
//
// Basic usage:
//
//	// One-shot over one or more patterns
//	wildmatch.Match("hello world", "*world")          // true
//	wildmatch.Count("hello world world", "*hello*world*") // 2
//
//	// Compile once, search many times
//	p := wildmatch.Compile("*unsubscribe*")
//	p.Matches("Click here to unsubscribe") // true
//
// Both operations are pure functions of their inputs: no shared state, no
// errors, fully reentrant. Malformed or unsupported input degrades to
// false/0, which suits best-effort heuristic scoring.
//
// Semantics worth knowing:
//   - Matching and counting are case-insensitive
//   - Empty text or empty pattern always yields false/0
//   - Count counts chains: one occurrence per segment, positions
//     non-decreasing left to right, overlaps permitted
//   - For multi-segment patterns Match checks each segment independently
//     and ignores segment order, while Count enforces it. Match("b a",
//     "*a*b*") is true yet Count("b a", "*a*b*") is 0. This divergence is
//     characterized behavior relied on downstream; do not "fix" it.
//
// Limitations:
//   - No character classes, anchors, or escape sequences
//   - '?' matching substitutes only the first '?' in a pattern; counting
//     returns 0 for any pattern containing '?'
package wildmatch

import (
	"github.com/coregx/wildmatch/meta"
)

// Pattern represents a compiled wildcard pattern.
//
// A Pattern is immutable and safe to use concurrently from multiple
// goroutines.
//
// Example:
//
//	p := wildmatch.Compile("*hello*world*")
//	if p.Matches("hello world") {
//	    println("matched!")
//	}
type Pattern struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a wildcard pattern.
//
// Every string is a valid pattern, so unlike a regex compiler this never
// returns an error.
//
// Example:
//
//	p := wildmatch.Compile("order?confirmation")
func Compile(pattern string) *Pattern {
	return &Pattern{
		engine:  meta.Compile(pattern),
		pattern: pattern,
	}
}

// CompileWithConfig compiles a pattern with custom engine configuration.
//
// Example:
//
//	config := wildmatch.DefaultConfig()
//	config.EnablePrefilter = false
//	p := wildmatch.CompileWithConfig("*a*b*", config)
func CompileWithConfig(pattern string, config meta.Config) *Pattern {
	return &Pattern{
		engine:  meta.CompileWithConfig(pattern, config),
		pattern: pattern,
	}
}

// DefaultConfig returns the default engine configuration for compilation.
// Users can customize this and pass to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Matches reports whether the pattern is contained in text.
//
// Example:
//
//	p := wildmatch.Compile("hello*world")
//	p.Matches("hello big world") // true
func (p *Pattern) Matches(text string) bool {
	return p.engine.IsMatch(text)
}

// Count returns the number of ordered, overlap-permitting ways the pattern
// appears in text.
//
// Example:
//
//	p := wildmatch.Compile("aa")
//	p.Count("aaa") // 2 (matches at index 0 and 1)
func (p *Pattern) Count(text string) int {
	return p.engine.Count(text)
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Match reports whether ANY of the given patterns is contained in text,
// short-circuiting on the first hit.
//
// Example:
//
//	wildmatch.Match("hello world", "goodbye", "*world") // true
func Match(text string, patterns ...string) bool {
	for _, pattern := range patterns {
		if Compile(pattern).Matches(text) {
			return true
		}
	}
	return false
}

// Count returns the sum of occurrence-way counts over EVERY given pattern.
// All patterns are evaluated; there is no short-circuit.
//
// Example:
//
//	wildmatch.Count("hello world", "hello", "world") // 2
func Count(text string, patterns ...string) int {
	total := 0
	for _, pattern := range patterns {
		total += Compile(pattern).Count(text)
	}
	return total
}
