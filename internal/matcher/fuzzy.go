package matcher

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// FuzzySimilarity computes an edit-distance- and prefix-weighted similarity
// between two strings.
//
// Two scores are evaluated and the larger one wins:
//
//  1. 1 - d/max(len(a), len(b)) where d is the optimal string alignment
//     (transposition-aware Damerau-Levenshtein) distance, so single typos,
//     adjacent swaps, and dropped characters each cost one edit;
//  2. Jaro-Winkler similarity, which combines base character overlap with a
//     bonus for a shared leading substring (capped at 4 characters, 0.1
//     weight per character).
//
// The result is clamped to [0,1] and the function is symmetric. Two empty
// strings score 1.0; exactly one empty string scores 0.0.
func FuzzySimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0.0
	}

	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}

	distance := edlib.OSADamerauLevenshteinDistance(a, b)
	editScore := 1.0 - float64(distance)/float64(maxLen)

	prefixScore := float64(edlib.JaroWinklerSimilarity(a, b))

	score := editScore
	if prefixScore > score {
		score = prefixScore
	}

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
