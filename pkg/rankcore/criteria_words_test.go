package rankcore

import "testing"

func TestWordsCriterionPrefersMoreDistinctTerms(t *testing.T) {
	c := NewWordsCriterion()
	matchedTwo := &RawDocument{DocumentId: 1, BareMatch: []BareMatch{{QueryIndex: 0}, {QueryIndex: 1}}}
	matchedOne := &RawDocument{DocumentId: 2, BareMatch: []BareMatch{{QueryIndex: 0}}}

	if err := c.Prepare(&Context{}, []*RawDocument{matchedTwo, matchedOne}); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if c.Evaluate(&Context{}, matchedTwo, matchedOne) >= 0 {
		t.Fatal("expected document matching more terms to sort first")
	}
}

func TestWordsCriterionCountsDistinctQueryIndexesOnly(t *testing.T) {
	c := NewWordsCriterion()
	doc := &RawDocument{DocumentId: 1, BareMatch: []BareMatch{
		{QueryIndex: 0}, {QueryIndex: 0}, {QueryIndex: 1},
	}}
	_ = c.Prepare(&Context{}, []*RawDocument{doc})

	if c.count[1] != 2 {
		t.Fatalf("count = %d, want 2 distinct query indexes", c.count[1])
	}
}
