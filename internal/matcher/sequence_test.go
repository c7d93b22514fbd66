package matcher

import (
	"math"
	"testing"
)

func TestSequenceSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"both empty", "", "", 1.0},
		{"left empty", "", "abc", 0.0},
		{"right empty", "abc", "", 0.0},
		{"identical", "customer_id", "customer_id", 1.0},
		{"no overlap", "abc", "xyz", 0.0},
		// "bcd" aligns as one block; the leftover "a" cannot pair across it
		{"rotation", "abcd", "bcda", 0.75},
		// "cust" then "mer" align, 7 of 15 characters total
		{"dropped character", "customer", "custmer", 14.0 / 15.0},
		// "gr" then "at" align recursively; a greedy scan would miss "at"
		{"transposed tail", "great", "grate", 0.8},
		// leftmost "abc" matches, second repetition finds no partner
		{"repeated substring", "abcabc", "abc", 2.0 / 3.0},
		{"abbreviated", "customer_id", "custid", 12.0 / 17.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SequenceSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("SequenceSimilarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSequenceSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"customer", "custmer"},
		{"abcd", "bcda"},
		{"first_name", "last_name"},
		{"", "abc"},
		{"abcabc", "abc"},
	}

	for _, p := range pairs {
		ab := SequenceSimilarity(p[0], p[1])
		ba := SequenceSimilarity(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("SequenceSimilarity not symmetric for (%q, %q): %f vs %f", p[0], p[1], ab, ba)
		}
	}
}

func TestSequenceSimilarityRange(t *testing.T) {
	samples := []string{"", "a", "ab", "customer_id", "first_name", "zzzz", "abcabcabc"}

	for _, a := range samples {
		for _, b := range samples {
			got := SequenceSimilarity(a, b)
			if got < 0.0 || got > 1.0 {
				t.Errorf("SequenceSimilarity(%q, %q) = %f, out of range", a, b, got)
			}
		}
	}
}

func TestLongestCommonRunTieBreak(t *testing.T) {
	// Two runs of length 2 exist ("ab" at 0 and 2); the leftmost in a wins
	ai, bi, n := longestCommonRun([]rune("abab"), []rune("ab"))
	if n != 2 || ai != 0 || bi != 0 {
		t.Errorf("longestCommonRun(abab, ab) = (%d, %d, %d), want (0, 0, 2)", ai, bi, n)
	}

	// Both occurrences of "bc" in b can host the run; leftmost in b wins
	ai, bi, n = longestCommonRun([]rune("bc"), []rune("xbcybc"))
	if n != 2 || ai != 0 || bi != 1 {
		t.Errorf("longestCommonRun(bc, xbcybc) = (%d, %d, %d), want (0, 1, 2)", ai, bi, n)
	}
}
