package matcher

// SequenceSimilarity computes a block-alignment similarity ratio between two
// strings: the total length M of all non-overlapping longest common
// contiguous runs, scaled by 2M/(len(a)+len(b)).
//
// The runs are found recursively: locate the longest run common to both
// strings (ties broken by the leftmost occurrence in a, then in b), then
// apply the same procedure to the text before the run and to the text after
// it. A single greedy left-to-right scan is not equivalent; it misaligns
// strings with repeated substrings.
//
// Two empty strings score 1.0. The function is symmetric, total, and
// returns values in [0,1] with 1.0 exactly when a == b.
func SequenceSimilarity(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)

	if len(ar) == 0 && len(br) == 0 {
		return 1.0
	}
	if len(ar) == 0 || len(br) == 0 {
		return 0.0
	}

	m := matchedRunTotal(ar, br)
	return 2.0 * float64(m) / float64(len(ar)+len(br))
}

// matchedRunTotal sums the lengths of the aligned common runs between a and b
func matchedRunTotal(a, b []rune) int {
	ai, bi, n := longestCommonRun(a, b)
	if n == 0 {
		return 0
	}

	total := n
	total += matchedRunTotal(a[:ai], b[:bi])
	total += matchedRunTotal(a[ai+n:], b[bi+n:])
	return total
}

// longestCommonRun finds the longest contiguous run of runes common to a and
// b, returning its start in a, start in b, and length. Ties prefer the run
// starting leftmost in a, then leftmost in b.
func longestCommonRun(a, b []rune) (bestA, bestB, bestLen int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] is the length of the common run ending at a[i], b[j]
	lengths := make([]int, len(b)+1)

	for i := 0; i < len(a); i++ {
		// Walk b right to left so lengths[j-1] still holds the previous row
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] != b[j] {
				lengths[j+1] = 0
				continue
			}
			run := lengths[j] + 1
			lengths[j+1] = run

			startA := i - run + 1
			startB := j - run + 1
			if run > bestLen ||
				(run == bestLen && (startA < bestA || (startA == bestA && startB < bestB))) {
				bestA, bestB, bestLen = startA, startB, run
			}
		}
	}

	return bestA, bestB, bestLen
}
