package rankcore

import "testing"

func TestRankedMapGetMissing(t *testing.T) {
	m := NewRankedMap()
	v := m.Get(1, 0)
	if v.Valid {
		t.Fatal("expected missing entry to be invalid")
	}
}

func TestRankedMapInsertGet(t *testing.T) {
	m := NewRankedMap()
	m.Insert(1, 0, 42)

	v := m.Get(1, 0)
	if !v.Valid || v.Value != 42 {
		t.Fatalf("Get = %+v, want {42 true}", v)
	}
}

func TestRankedMapNilSafe(t *testing.T) {
	var m *RankedMap
	if v := m.Get(1, 0); v.Valid {
		t.Fatal("expected nil RankedMap.Get to return an invalid value")
	}
}

func TestCompareRankedMissingAlwaysLast(t *testing.T) {
	present := RankedValue{Value: 5, Valid: true}
	missing := RankedValue{}

	if compareRanked(present, missing) >= 0 {
		t.Fatal("expected present < missing under compareRanked's own argument order")
	}
	if compareRanked(missing, present) <= 0 {
		t.Fatal("expected missing > present under compareRanked's own argument order")
	}
	if compareRanked(missing, missing) != 0 {
		t.Fatal("expected two missing values to compare equal")
	}
}

func TestCompareRankedOrdersByValue(t *testing.T) {
	a := RankedValue{Value: 1, Valid: true}
	b := RankedValue{Value: 2, Valid: true}

	if compareRanked(a, b) >= 0 {
		t.Fatal("expected a < b")
	}
	if compareRanked(b, a) <= 0 {
		t.Fatal("expected b > a")
	}
}
