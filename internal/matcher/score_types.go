package matcher

import "fmt"

// Algorithm identifies which comparison produced a candidate's winning score
type Algorithm string

const (
	// AlgorithmNameSimilarity is block-alignment similarity on raw lowercase names
	AlgorithmNameSimilarity Algorithm = "name_similarity"
	// AlgorithmNameSimilarityExpanded is block-alignment similarity on
	// normalized, abbreviation-expanded names
	AlgorithmNameSimilarityExpanded Algorithm = "name_similarity_expanded"
	// AlgorithmFuzzySimilarity is edit-distance/prefix-weighted similarity on
	// raw lowercase names
	AlgorithmFuzzySimilarity Algorithm = "fuzzy_similarity"
	// AlgorithmFuzzySimilarityExpanded is the fuzzy comparison on normalized,
	// abbreviation-expanded names
	AlgorithmFuzzySimilarityExpanded Algorithm = "fuzzy_similarity_expanded"
	// AlgorithmStemSimilarity is block-alignment similarity on stemmed tokens,
	// only evaluated when stemming is enabled
	AlgorithmStemSimilarity Algorithm = "stem_similarity"
)

// Algorithms lists every tag a MatchCandidate can carry, so consumers can
// handle the set exhaustively.
var Algorithms = []Algorithm{
	AlgorithmNameSimilarity,
	AlgorithmNameSimilarityExpanded,
	AlgorithmFuzzySimilarity,
	AlgorithmFuzzySimilarityExpanded,
	AlgorithmStemSimilarity,
}

// MatchCandidate is one scored target column from a FindBestMatches call
type MatchCandidate struct {
	// Column is the target schema column, verbatim
	Column string `json:"column"`

	// Score is the fused similarity score (0.0-1.0)
	Score float64 `json:"score"`

	// Algorithm is the comparison that achieved the score
	Algorithm Algorithm `json:"algorithm"`
}

// MaxResults caps the number of candidates FindBestMatches returns.
// The top-5 cap is part of the external contract and must not change.
const MaxResults = 5

// DefaultThreshold is the minimum fused score a candidate needs to be kept
// when the caller does not specify one.
const DefaultThreshold = 0.5

// String returns a human-readable representation of a MatchCandidate
func (c MatchCandidate) String() string {
	return fmt.Sprintf("MatchCandidate{Column: %q, Score: %.3f, Algorithm: %s}",
		c.Column, c.Score, c.Algorithm)
}

// IsValidScore checks if the candidate's score is within acceptable bounds
func (c MatchCandidate) IsValidScore() bool {
	return c.Score >= 0.0 && c.Score <= 1.0
}
