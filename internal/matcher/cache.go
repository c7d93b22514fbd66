package matcher

import "sync"

// comparisonKind distinguishes which similarity function a cache entry
// belongs to; the same string pair yields different scores per algorithm.
type comparisonKind uint8

const (
	sequenceComparison comparisonKind = iota
	fuzzyComparison
)

// pairKey identifies one memoized comparison: the algorithm kind plus the
// ordered pair of normalized strings actually compared.
type pairKey struct {
	kind comparisonKind
	a, b string
}

// similarityCache memoizes per-pair similarity scores. Entries are owned by
// a single Matcher and cleared whenever its schema set is reset, so cached
// values are never stale relative to the current schema.
//
// Thread-safe: guarded by an RWMutex so concurrent readers do not contend.
type similarityCache struct {
	mu      sync.RWMutex
	entries map[pairKey]float64
}

func newSimilarityCache() *similarityCache {
	return &similarityCache{
		entries: make(map[pairKey]float64),
	}
}

// get retrieves a memoized score
func (c *similarityCache) get(key pairKey) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	score, ok := c.entries[key]
	return score, ok
}

// set stores a score for a comparison pair
func (c *similarityCache) set(key pairKey, score float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = score
}

// clear removes all entries
func (c *similarityCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[pairKey]float64)
}

// size returns the current number of memoized comparisons
func (c *similarityCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
