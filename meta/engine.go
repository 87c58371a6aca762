// engine.go contains the Engine struct definition and accessors.

package meta

import (
	"github.com/coregx/ahocorasick"
)

// Engine executes one compiled wildcard pattern.
//
// The Engine is immutable after Compile: every search allocates only
// call-local state, so a single Engine is safe for unrestricted concurrent
// use from multiple goroutines.
//
// Example:
//
//	engine := meta.Compile("*hello*world*")
//	engine.IsMatch("hello there world") // true
//	engine.Count("hello world world")   // 2
type Engine struct {
	// pattern is the original pattern text, unmodified.
	pattern string

	// folded is the case-folded pattern all searches run against.
	folded string

	// segments holds the ordered non-empty literal segments for
	// UseSegments; nil under every other strategy.
	segments []string

	// prefilter is the Aho-Corasick automaton over segments used as a
	// fast reject for multi-segment patterns. nil when disabled, when the
	// pattern has fewer than PrefilterMinSegments segments, or when the
	// automaton failed to build (plain scans still give correct results).
	prefilter *ahocorasick.Automaton

	strategy Strategy
	config   Config
}

// Pattern returns the original pattern text used to compile the engine.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Segments returns a copy of the pattern's literal segments. The slice is
// empty unless the engine runs under UseSegments.
func (e *Engine) Segments() []string {
	out := make([]string, len(e.segments))
	copy(out, e.segments)
	return out
}
