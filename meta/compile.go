// compile.go builds an Engine from a wildcard pattern.

package meta

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/wildmatch/segment"
)

// Compile analyzes a wildcard pattern and returns an Engine for it using
// the default configuration.
//
// Compilation is total: every string is a valid pattern and no error is
// ever returned. The pattern is case-folded once here; texts are folded
// per search.
//
// Steps:
//  1. Case-fold the pattern
//  2. Classify its shape (literal, '*'-segmented, '?'-only, all-wildcard)
//  3. For '*' patterns, split into non-empty literal segments
//  4. For multi-segment patterns, build the Aho-Corasick fast-reject
//
// Example:
//
//	engine := meta.Compile("Hello*World")
//	engine.Strategy() // UseSegments
func Compile(pattern string) *Engine {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) *Engine {
	folded := strings.ToLower(pattern)
	e := &Engine{
		pattern: pattern,
		folded:  folded,
		config:  config,
	}

	switch {
	case !strings.ContainsAny(folded, "*?"):
		e.strategy = UseLiteral
	case strings.ContainsRune(folded, '*'):
		// '*' takes precedence: a '?' inside a starred pattern stays a
		// literal character of its segment.
		e.segments = segment.Split(folded)
		if len(e.segments) == 0 {
			e.strategy = UseAllWildcard
		} else {
			e.strategy = UseSegments
			e.prefilter = buildPrefilter(e.segments, config)
		}
	default:
		e.strategy = UseSingleChar
	}

	return e
}

// buildPrefilter builds the Aho-Corasick automaton over the pattern's
// segments. A build failure degrades to nil; searches then run plain
// per-segment scans with identical results.
func buildPrefilter(segments []string, config Config) *ahocorasick.Automaton {
	if !config.EnablePrefilter || len(segments) < config.PrefilterMinSegments {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, seg := range segments {
		builder.AddPattern([]byte(seg))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}
