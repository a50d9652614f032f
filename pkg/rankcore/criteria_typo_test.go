package rankcore

import "testing"

func TestTypoCriterionPrefersLowerTotalDistance(t *testing.T) {
	c := NewTypoCriterion()
	docA := &RawDocument{DocumentId: 1, BareMatch: []BareMatch{
		{QueryIndex: 0, Distance: 0},
		{QueryIndex: 1, Distance: 1},
	}}
	docB := &RawDocument{DocumentId: 2, BareMatch: []BareMatch{
		{QueryIndex: 0, Distance: 0},
		{QueryIndex: 1, Distance: 0},
	}}

	if err := c.Prepare(&Context{}, []*RawDocument{docA, docB}); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if c.Evaluate(&Context{}, docA, docB) <= 0 {
		t.Fatal("expected docA (higher total distance) to sort after docB")
	}
	if c.Eq(&Context{}, docA, docB) {
		t.Fatal("docA and docB should not be equivalent")
	}
}

func TestTypoCriterionKeepsBestDistancePerQueryIndex(t *testing.T) {
	c := NewTypoCriterion()
	doc := &RawDocument{DocumentId: 1, BareMatch: []BareMatch{
		{QueryIndex: 0, Distance: 2},
		{QueryIndex: 0, Distance: 0}, // best match for query 0
	}}

	if err := c.Prepare(&Context{}, []*RawDocument{doc}); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if c.totalDistance[1] != 0 {
		t.Fatalf("totalDistance = %d, want 0 (best distance kept)", c.totalDistance[1])
	}
}

func TestTypoCriterionEqForEqualDistance(t *testing.T) {
	c := NewTypoCriterion()
	a := &RawDocument{DocumentId: 1, BareMatch: []BareMatch{{QueryIndex: 0, Distance: 1}}}
	b := &RawDocument{DocumentId: 2, BareMatch: []BareMatch{{QueryIndex: 0, Distance: 1}}}

	_ = c.Prepare(&Context{}, []*RawDocument{a, b})
	if !c.Eq(&Context{}, a, b) {
		t.Fatal("expected equal total distance to be Eq")
	}
	if c.Evaluate(&Context{}, a, b) != 0 {
		t.Fatal("expected equal total distance to Evaluate to 0")
	}
}
