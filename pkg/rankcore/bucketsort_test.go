package rankcore

import "testing"

// scoreCriterion is a minimal test-only Criterion ordering documents
// by a fixed score map, used to drive BucketSort without depending on
// the built-in criteria's match-decoding machinery.
type scoreCriterion struct {
	scores map[DocumentId]int
}

func (c *scoreCriterion) Name() string { return "score" }
func (c *scoreCriterion) Prepare(ctx *Context, group []*RawDocument) error { return nil }
func (c *scoreCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	return c.scores[a.DocumentId] - c.scores[b.DocumentId]
}
func (c *scoreCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.scores[a.DocumentId] == c.scores[b.DocumentId]
}

func docsByID(ids ...DocumentId) []*RawDocument {
	docs := make([]*RawDocument, len(ids))
	for i, id := range ids {
		docs[i] = &RawDocument{DocumentId: id}
	}
	return docs
}

func TestBucketSortOrdersByCriterion(t *testing.T) {
	docs := docsByID(1, 2, 3)
	crit := &scoreCriterion{scores: map[DocumentId]int{1: 3, 2: 1, 3: 2}}

	result, err := BucketSort(&Context{}, docs, []Criterion{crit}, Range{Start: 0, End: 10})
	if err != nil {
		t.Fatalf("BucketSort: %v", err)
	}

	want := []DocumentId{2, 3, 1}
	if len(result.Documents) != len(want) {
		t.Fatalf("len(Documents) = %d, want %d", len(result.Documents), len(want))
	}
	for i, id := range want {
		if result.Documents[i].DocumentId != id {
			t.Fatalf("Documents[%d] = %d, want %d", i, result.Documents[i].DocumentId, id)
		}
	}
	if !result.ExhaustiveNbHits {
		t.Fatal("expected exhaustive result when page covers every document")
	}
}

func TestBucketSortPagination(t *testing.T) {
	docs := docsByID(1, 2, 3, 4, 5)
	crit := &scoreCriterion{scores: map[DocumentId]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}}

	result, err := BucketSort(&Context{}, docs, []Criterion{crit}, Range{Start: 1, End: 3})
	if err != nil {
		t.Fatalf("BucketSort: %v", err)
	}

	want := []DocumentId{2, 3}
	if len(result.Documents) != len(want) {
		t.Fatalf("len(Documents) = %d, want %d: %v", len(result.Documents), len(want), result.Documents)
	}
	for i, id := range want {
		if result.Documents[i].DocumentId != id {
			t.Fatalf("Documents[%d] = %d, want %d", i, result.Documents[i].DocumentId, id)
		}
	}
}

func TestBucketSortEarlyTerminationMarksNonExhaustive(t *testing.T) {
	docs := docsByID(1, 2, 3, 4, 5)
	crit := &scoreCriterion{scores: map[DocumentId]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}}

	result, err := BucketSort(&Context{}, docs, []Criterion{crit}, Range{Start: 0, End: 2})
	if err != nil {
		t.Fatalf("BucketSort: %v", err)
	}
	if result.ExhaustiveNbHits {
		t.Fatal("expected ExhaustiveNbHits=false when the cascade stops before the last document")
	}
	if len(result.Documents) != 2 {
		t.Fatalf("len(Documents) = %d, want 2", len(result.Documents))
	}
}

func TestBucketSortNoCriteriaFallsBackToInputOrder(t *testing.T) {
	docs := docsByID(5, 4, 3)
	result, err := BucketSort(&Context{}, docs, nil, Range{Start: 0, End: 10})
	if err != nil {
		t.Fatalf("BucketSort: %v", err)
	}
	for i, id := range []DocumentId{5, 4, 3} {
		if result.Documents[i].DocumentId != id {
			t.Fatalf("Documents[%d] = %d, want %d", i, result.Documents[i].DocumentId, id)
		}
	}
}

func TestBucketSortWithDistinctDeduplicates(t *testing.T) {
	docs := docsByID(1, 2, 3, 4)
	crit := &scoreCriterion{scores: map[DocumentId]int{1: 1, 2: 2, 3: 3, 4: 4}}

	// Documents 1 and 2 share a distinct key; only the first should survive.
	keyFunc := func(id DocumentId) DistinctKey {
		if id == 1 || id == 2 {
			return "shared"
		}
		return nil
	}

	result, err := BucketSortWithDistinct(&Context{}, docs, []Criterion{crit}, keyFunc, 1, Range{Start: 0, End: 10})
	if err != nil {
		t.Fatalf("BucketSortWithDistinct: %v", err)
	}

	seen := map[DocumentId]bool{}
	for _, d := range result.Documents {
		if d.DocumentId == 1 || d.DocumentId == 2 {
			seen[d.DocumentId] = true
		}
	}
	if len(seen) != 1 {
		t.Fatalf("expected exactly one of {1,2} in the deduplicated result, got %v", result.Documents)
	}
}
