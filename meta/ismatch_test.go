package meta

import "testing"

// TestIsMatchStrategyDispatch tests IsMatch through pattern shapes that
// trigger each execution strategy.
func TestIsMatchStrategyDispatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		// Literal path
		{"literal match", "hello", "hello world", true},
		{"literal inner match", "world", "hello world", true},
		{"literal no match", "goodbye", "hello world", false},
		{"literal case folded", "hello", "HELLO WORLD", true},
		{"literal pattern uppercased", "HELLO", "hello world", true},

		// Empty inputs are always false
		{"empty text", "hello", "", false},
		{"empty pattern", "", "hello", false},
		{"both empty", "", "", false},

		// Star segments: every segment present, order NOT enforced
		{"prefix star", "hello*", "hello world", true},
		{"suffix star", "*world", "hello world", true},
		{"infix star", "hello*world", "hello world", true},
		{"infix star with gap", "hello*world", "hello beautiful world", true},
		{"missing segment", "hello*universe", "hello world", false},
		{"double star", "hello**world", "hello world", true},
		{"surrounded", "**hello**", "hello world", true},
		{"order ignored", "*a*b*", "b a", true},
		{"out of order segments", "*world*hello*", "hello world", true},
		{"three segments", "hello*amazing*world", "hello amazing world", true},
		{"three segments one missing", "hello*amazing*world", "hello world", false},

		// All-wildcard patterns accept any non-empty text
		{"single star pattern", "*", "anything", true},
		{"star pattern empty text", "*", "", false},
		{"many stars", "***", "x", true},

		// Single-char wildcard: only the first '?' is resolved
		{"question mark mid-word", "h?llo", "hello world", true},
		{"question mark between words", "hello?world", "hello world", true},
		{"question mark no match", "h?llx", "hello world", false},
		{"first question mark resolved", "?b?c", "xab?c", true},
		{"second question mark stays literal", "a?b?c", "axbyc", false},

		// '?' inside a starred pattern stays a literal character
		{"literal question in segment", "hello?*world", "hello? big world", true},
		{"literal question in segment no match", "hello?*world", "hello big world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := Compile(tt.pattern)
			if got := engine.IsMatch(tt.text); got != tt.want {
				t.Errorf("IsMatch(%q) = %v, want %v (pattern %q, strategy %s)",
					tt.text, got, tt.want, tt.pattern, engine.Strategy())
			}
		})
	}
}

// TestIsMatchCountDivergence pins the documented asymmetry: containment
// ignores segment order while counting enforces it. Both results must hold
// simultaneously; neither side is a bug to fix.
func TestIsMatchCountDivergence(t *testing.T) {
	engine := Compile("*a*b*")

	if !engine.IsMatch("b a") {
		t.Error(`IsMatch("b a") = false, want true (unordered containment)`)
	}
	if got := engine.Count("b a"); got != 0 {
		t.Errorf(`Count("b a") = %d, want 0 (order enforced)`, got)
	}
}
