package rankcore

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// DocumentId is an opaque, totally ordered document identifier.
// It is managed entirely by the index; the ranking core never
// constructs one, only compares and carries it around.
type DocumentId uint64

// DocIndex is a single position record: a term occurrence at
// (DocumentId, Attribute, WordIndex). It is totally ordered, primarily
// by DocumentId, so that a sorted []DocIndex groups by document under
// linear adjacency.
type DocIndex struct {
	DocumentId DocumentId
	Attribute  uint16
	WordIndex  uint16
	// CharIndex is the byte offset of the match within the attribute's
	// text. No criterion in this package reads it, and Less ignores it.
	CharIndex uint16
}

// Less implements the DocIndex total order: DocumentId first, then
// Attribute, then WordIndex.
func (a DocIndex) Less(b DocIndex) bool {
	if a.DocumentId != b.DocumentId {
		return a.DocumentId < b.DocumentId
	}
	if a.Attribute != b.Attribute {
		return a.Attribute < b.Attribute
	}
	return a.WordIndex < b.WordIndex
}

// SortDocIndexes sorts a slice of DocIndex by the natural order.
// Every PostingList handed to the ranking core is expected to already
// be sorted this way; callers that build posting lists themselves
// (such as the rankdemo index) use this helper to establish it.
func SortDocIndexes(s []DocIndex) {
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
}

// PostingList is the ordered, duplicate-free sequence of DocIndex
// entries for a single term, borrowed from the index for the
// duration of one search call.
type PostingList []DocIndex

// DocSet is a sorted, duplicate-free set of DocumentId, backed by a
// compressed roaring bitmap. It is the concrete representation of the
// spec's "SortedSet<DocumentId>": candidate sets, posting-list docid
// projections, and facet docid sets all use it.
//
// A DocSet is cheap to intersect and cheap to test membership against,
// which is exactly what candidate-set intersection (facet filtering)
// and match extraction's density-based branch need.
type DocSet struct {
	bm *roaring64.Bitmap
}

// NewDocSet builds a DocSet from a slice of ids. The slice need not be
// sorted or deduplicated.
func NewDocSet(ids ...DocumentId) DocSet {
	bm := roaring64.New()
	for _, id := range ids {
		bm.Add(uint64(id))
	}
	return DocSet{bm: bm}
}

// emptyDocSet returns a DocSet instance with an initialized, empty
// bitmap so zero-value DocSets are never dereferenced.
func emptyDocSet() DocSet {
	return DocSet{bm: roaring64.New()}
}

func (s DocSet) ensure() *roaring64.Bitmap {
	if s.bm == nil {
		return roaring64.New()
	}
	return s.bm
}

// Len returns the number of distinct document ids in the set.
func (s DocSet) Len() int {
	return int(s.ensure().GetCardinality())
}

// Contains reports whether id is a member of the set.
func (s DocSet) Contains(id DocumentId) bool {
	return s.ensure().Contains(uint64(id))
}

// ToSlice returns the set's members in ascending order.
func (s DocSet) ToSlice() []DocumentId {
	bm := s.ensure()
	out := make([]DocumentId, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, DocumentId(it.Next()))
	}
	return out
}

// Intersect returns a new, owned DocSet holding the intersection of s
// and other. Per §9's copy-on-write note, the ranking core always
// collapses to an owned buffer on first intersection rather than
// threading a borrowed/owned distinction through the type system --
// a roaring bitmap clone is cheap enough that the distinction isn't
// worth the complexity here.
func (s DocSet) Intersect(other DocSet) DocSet {
	result := s.ensure().Clone()
	result.And(other.ensure())
	return DocSet{bm: result}
}

// IntersectionCardinality returns |s ∩ other| without materialising
// the intersection. Used by facet counting (§4.8), which only ever
// needs the count.
func (s DocSet) IntersectionCardinality(other DocSet) int {
	return int(s.ensure().AndCardinality(other.ensure()))
}

// QueryKind describes how a single query term should be matched:
// an exact word, a typo-tolerant word, part of a phrase, or a prefix.
type QueryKind int

const (
	QueryKindExact QueryKind = iota
	QueryKindTolerant
	QueryKindPhrase
	QueryKindPrefix
)

// QueryId identifies a single leaf query node within the query tree.
type QueryId int

// QueryMapping maps each query id to its kind, read-only for the
// duration of a search call.
type QueryMapping map[QueryId]QueryKind

// Range is the half-open pagination window [Start, End) requested by
// the caller.
type Range struct {
	Start int
	End   int
}

// Len returns End-Start, clamped to zero.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}
