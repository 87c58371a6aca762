// Package meta implements the wildcard engine orchestrator that selects the
// execution strategy for a pattern and runs containment and counting over it.
//
// The engine coordinates two operations with deliberately different
// semantics:
//   - IsMatch: boolean containment; for multi-segment patterns every
//     segment must be present but segment order is NOT enforced
//   - Count: ordered occurrence counting; chosen segment positions must be
//     non-decreasing from first to last segment
//
// The asymmetry is characterized downstream behavior, not an oversight:
// classification heuristics consume both signals as-is, and unifying the
// two algorithms would change their outputs. Keep them separate.
//
// The engine is total over all string inputs. Malformed or unsupported
// patterns degrade to false/0, never to an error.
package meta

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // force plain per-segment scans
//	engine := meta.CompileWithConfig("*hello*world*", config)
type Config struct {
	// EnablePrefilter enables the Aho-Corasick fast-reject automaton for
	// multi-segment patterns. When the automaton reports that no segment
	// occurs anywhere in the text, both IsMatch and Count short-circuit
	// without scanning per segment.
	// Default: true
	EnablePrefilter bool

	// PrefilterMinSegments is the minimum number of segments required
	// before a prefilter automaton is built. Single-segment patterns are
	// already a single substring scan and gain nothing from it.
	// Default: 2
	PrefilterMinSegments int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:      true,
		PrefilterMinSegments: 2,
	}
}
