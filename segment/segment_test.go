package segment

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"two segments", "hello*world", []string{"hello", "world"}},
		{"leading star", "*world", []string{"world"}},
		{"trailing star", "hello*", []string{"hello"}},
		{"surrounding stars", "*hello*", []string{"hello"}},
		{"consecutive stars", "hello**world", []string{"hello", "world"}},
		{"three segments", "a*b*c", []string{"a", "b", "c"}},
		{"single star", "*", []string{}},
		{"only stars", "****", []string{}},
		{"stars and empties mixed", "**a**", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name string
		text string
		seg  string
		want []int
	}{
		{"single occurrence", "hello world", "world", []int{6}},
		{"two occurrences", "hello world hello", "hello", []int{0, 12}},
		{"overlapping", "aaa", "aa", []int{0, 1}},
		{"heavily overlapping", "aaaa", "aaa", []int{0, 1}},
		{"single chars", "abcabc", "a", []int{0, 3}},
		{"absent", "hello world", "xyz", nil},
		{"empty text", "", "a", nil},
		{"empty segment", "hello", "", nil},
		{"segment longer than text", "hi", "hello", nil},
		{"whole text", "abc", "abc", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Occurrences(tt.text, tt.seg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Occurrences(%q, %q) = %v, want %v", tt.text, tt.seg, got, tt.want)
			}
		})
	}
}

// TestOccurrencesSorted checks the ascending-order invariant on a text with
// many overlapping hits.
func TestOccurrencesSorted(t *testing.T) {
	positions := Occurrences("abababababab", "abab")
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Fatalf("positions not strictly ascending: %v", positions)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		seg  string
		want int
	}{
		{"single", "hello world", "hello", 1},
		{"two", "hello world hello", "hello", 2},
		{"overlapping", "aaa", "aa", 2},
		{"absent", "foo bar", "baz", 0},
		{"empty text", "", "a", 0},
		{"empty segment", "abc", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.text, tt.seg); got != tt.want {
				t.Errorf("Count(%q, %q) = %d, want %d", tt.text, tt.seg, got, tt.want)
			}
		})
	}
}

// Count must agree with the length of Occurrences; both are used by the
// engine depending on whether positions are needed.
func TestCountMatchesOccurrences(t *testing.T) {
	cases := []struct{ text, seg string }{
		{"aaaa", "aa"},
		{"hello world hello", "hello"},
		{"mississippi", "issi"},
		{"", "x"},
	}
	for _, c := range cases {
		if got, want := Count(c.text, c.seg), len(Occurrences(c.text, c.seg)); got != want {
			t.Errorf("Count(%q, %q) = %d, len(Occurrences) = %d", c.text, c.seg, got, want)
		}
	}
}
