package matcher

import "testing"

func TestSimilarityCache(t *testing.T) {
	cache := newSimilarityCache()

	key := pairKey{kind: sequenceComparison, a: "customer_id", b: "cust_id"}
	if _, ok := cache.get(key); ok {
		t.Error("empty cache should not report hits")
	}

	cache.set(key, 0.75)
	score, ok := cache.get(key)
	if !ok || score != 0.75 {
		t.Errorf("expected cached score 0.75, got %f (hit=%v)", score, ok)
	}

	if cache.size() != 1 {
		t.Errorf("expected size 1, got %d", cache.size())
	}

	cache.clear()
	if cache.size() != 0 {
		t.Errorf("expected empty cache after clear, got size %d", cache.size())
	}
	if _, ok := cache.get(key); ok {
		t.Error("cleared cache should not report hits")
	}
}

func TestSimilarityCacheKeyedByComparison(t *testing.T) {
	cache := newSimilarityCache()

	seqKey := pairKey{kind: sequenceComparison, a: "a", b: "b"}
	fzKey := pairKey{kind: fuzzyComparison, a: "a", b: "b"}

	cache.set(seqKey, 0.2)
	cache.set(fzKey, 0.9)

	if score, _ := cache.get(seqKey); score != 0.2 {
		t.Errorf("sequence entry clobbered: got %f", score)
	}
	if score, _ := cache.get(fzKey); score != 0.9 {
		t.Errorf("fuzzy entry clobbered: got %f", score)
	}
}

func TestSimilarityCacheOrderedPairs(t *testing.T) {
	cache := newSimilarityCache()

	cache.set(pairKey{kind: fuzzyComparison, a: "x", b: "y"}, 0.4)
	if _, ok := cache.get(pairKey{kind: fuzzyComparison, a: "y", b: "x"}); ok {
		t.Error("cache keys are ordered pairs; reversed pair must miss")
	}
}
