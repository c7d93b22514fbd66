package matcher

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Matcher owns a fixed target-schema column set and a similarity cache, and
// exposes the ranked matching operation.
//
// A Matcher is safe for concurrent readers; SetSchemaColumns takes the write
// lock and clears the cache in the same critical section so cached scores
// are never stale relative to the current schema.
type Matcher struct {
	mu       sync.RWMutex
	columns  []string
	dict     *Dictionary
	stemming bool
	cache    *similarityCache
}

// New creates a matcher for the given target schema columns. The slice is
// defensively copied; duplicate and empty column names are dropped,
// preserving first-occurrence order.
func New(columns []string) *Matcher {
	return &Matcher{
		columns: dedupeColumns(columns),
		dict:    DefaultDictionary(),
		cache:   newSimilarityCache(),
	}
}

// NewFromValues creates a matcher from a runtime-typed schema, as decoded
// from JSON or configuration. The argument must be a []string or a []any
// whose elements are strings or scalar values; each element is coerced to
// its string form. Anything else fails with ErrInvalidSchema.
func NewFromValues(v any) (*Matcher, error) {
	switch cols := v.(type) {
	case []string:
		return New(cols), nil
	case []any:
		coerced := make([]string, 0, len(cols))
		for i, el := range cols {
			s, ok := coerceString(el)
			if !ok {
				return nil, invalidSchemaElementError(i, el)
			}
			coerced = append(coerced, s)
		}
		return New(coerced), nil
	default:
		return nil, invalidSchemaError(v)
	}
}

func coerceString(v any) (string, bool) {
	switch el := v.(type) {
	case string:
		return el, true
	case fmt.Stringer:
		return el.String(), true
	case bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprint(el), true
	default:
		return "", false
	}
}

func dedupeColumns(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if col == "" || seen[col] {
			continue
		}
		seen[col] = true
		out = append(out, col)
	}
	return out
}

// UseDictionary replaces the abbreviation dictionary and clears the cache,
// since expanded comparison forms depend on it.
func (m *Matcher) UseDictionary(dict *Dictionary) {
	if dict == nil {
		dict = DefaultDictionary()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.dict = dict
	m.cache.clear()
}

// EnableStemming turns on the stemmed comparison variant
func (m *Matcher) EnableStemming() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stemming = true
}

// DisableStemming turns off the stemmed comparison variant
func (m *Matcher) DisableStemming() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stemming = false
}

// SchemaColumns returns a defensive copy of the current schema column set
func (m *Matcher) SchemaColumns() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// SetSchemaColumns replaces the schema column set and clears the similarity
// cache atomically.
func (m *Matcher) SetSchemaColumns(columns []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.columns = dedupeColumns(columns)
	m.cache.clear()
}

// ClearCache empties the similarity cache without altering the schema.
// Callers mutating the schema through any other path must call this to keep
// cached scores consistent.
func (m *Matcher) ClearCache() {
	m.cache.clear()
}

// CacheSize returns the number of memoized comparisons
func (m *Matcher) CacheSize() int {
	return m.cache.size()
}

// NormalizeColumnName canonicalizes a raw column name; see the package
// function of the same name.
func (m *Matcher) NormalizeColumnName(name string) string {
	return NormalizeColumnName(name)
}

// ExpandAbbreviations expands abbreviated tokens of an already-normalized
// name through the matcher's dictionary.
func (m *Matcher) ExpandAbbreviations(name string) string {
	m.mu.RLock()
	dict := m.dict
	m.mu.RUnlock()

	return dict.ExpandName(name)
}

// FindBestMatches ranks the schema columns against a source column name.
//
// An empty source column yields an empty result; that is policy, not an
// error. Each target column is scored by four comparisons (sequence and
// fuzzy similarity, each on raw lowercase and on normalized+expanded forms)
// and the maximum wins, tagged with the algorithm that produced it.
// Candidates scoring at least threshold are sorted by score descending,
// ties by column name ascending, and truncated to MaxResults.
func (m *Matcher) FindBestMatches(source string, threshold float64) []MatchCandidate {
	candidates := make([]MatchCandidate, 0, MaxResults)
	if strings.TrimSpace(source) == "" {
		return candidates
	}

	m.mu.RLock()
	columns := m.columns
	dict := m.dict
	stemming := m.stemming
	m.mu.RUnlock()

	srcRaw := strings.ToLower(source)
	srcExpanded := dict.ExpandName(NormalizeColumnName(source))

	var srcStemmed string
	if stemming {
		srcStemmed = stemName(srcExpanded)
	}

	for _, column := range columns {
		tgtRaw := strings.ToLower(column)
		tgtExpanded := dict.ExpandName(NormalizeColumnName(column))

		best := MatchCandidate{
			Column:    column,
			Score:     m.cachedSequence(srcRaw, tgtRaw),
			Algorithm: AlgorithmNameSimilarity,
		}

		variants := []struct {
			score float64
			alg   Algorithm
		}{
			{m.cachedSequence(srcExpanded, tgtExpanded), AlgorithmNameSimilarityExpanded},
			{m.cachedFuzzy(srcRaw, tgtRaw), AlgorithmFuzzySimilarity},
			{m.cachedFuzzy(srcExpanded, tgtExpanded), AlgorithmFuzzySimilarityExpanded},
		}
		for _, v := range variants {
			if v.score > best.Score {
				best.Score = v.score
				best.Algorithm = v.alg
			}
		}

		if stemming {
			if score := m.cachedSequence(srcStemmed, stemName(tgtExpanded)); score > best.Score {
				best.Score = score
				best.Algorithm = AlgorithmStemSimilarity
			}
		}

		if best.Score >= threshold {
			candidates = append(candidates, best)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Column < candidates[j].Column
	})

	if len(candidates) > MaxResults {
		candidates = candidates[:MaxResults]
	}
	return candidates
}

func (m *Matcher) cachedSequence(a, b string) float64 {
	key := pairKey{kind: sequenceComparison, a: a, b: b}
	if score, ok := m.cache.get(key); ok {
		return score
	}

	score := SequenceSimilarity(a, b)
	m.cache.set(key, score)
	return score
}

func (m *Matcher) cachedFuzzy(a, b string) float64 {
	key := pairKey{kind: fuzzyComparison, a: a, b: b}
	if score, ok := m.cache.get(key); ok {
		return score
	}

	score := FuzzySimilarity(a, b)
	m.cache.set(key, score)
	return score
}
