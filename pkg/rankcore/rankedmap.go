package rankcore

// FieldId identifies a schema field usable by RankedMap-backed sorts
// (the placeholder sort, §4.7, and the user-defined attribute-sort
// criterion, §4.4).
type FieldId uint16

// RankedValue is a single precomputed, ordered attribute value. Only
// Valid entries participate in ordering; an invalid (missing) value
// sorts last under ascending order and first under descending order,
// matching the spec's "absent sorts last under asc, first under desc
// via negation" rule (§4.7).
type RankedValue struct {
	Value int64
	Valid bool
}

type rankedKey struct {
	doc   DocumentId
	field FieldId
}

// RankedMap is a precomputed per-document attribute-value lookup. It
// is read-only during a search call and is typically built once per
// index generation and reused across searches (see
// internal/rankedcache for the reuse path).
type RankedMap struct {
	values map[rankedKey]int64
}

// NewRankedMap returns an empty, ready-to-populate RankedMap.
func NewRankedMap() *RankedMap {
	return &RankedMap{values: make(map[rankedKey]int64)}
}

// Insert records doc's value for field.
func (m *RankedMap) Insert(doc DocumentId, field FieldId, value int64) {
	m.values[rankedKey{doc, field}] = value
}

// Get returns doc's value for field, or an invalid RankedValue if
// absent.
func (m *RankedMap) Get(doc DocumentId, field FieldId) RankedValue {
	if m == nil {
		return RankedValue{}
	}
	v, ok := m.values[rankedKey{doc, field}]
	return RankedValue{Value: v, Valid: ok}
}

// compareRanked orders two RankedValues so that invalid (missing)
// values always sort last, regardless of direction; this is then
// combined with ascending/descending swap by the caller.
func compareRanked(a, b RankedValue) int {
	if !a.Valid && !b.Valid {
		return 0
	}
	if !a.Valid {
		return 1
	}
	if !b.Valid {
		return -1
	}
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	default:
		return 0
	}
}
