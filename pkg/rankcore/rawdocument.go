package rankcore

// SimpleMatch is a single decoded query-term occurrence, derived
// lazily from a BareMatch's posting-list view by
// RawDocument.DecodedMatches. Criteria operate on these rather than
// on raw DocIndex records because SimpleMatch already carries the
// query-level metadata (QueryIndex, Distance, IsExact) alongside the
// position.
type SimpleMatch struct {
	QueryIndex QueryId
	Distance   uint8
	Attribute  uint16
	WordIndex  uint16
	IsExact    bool
}

// ReorderedAttrs remaps the stored attribute-id space to a
// search-visible one, e.g. so that criteria comparing "earlier
// attribute wins" agree with a user-configured searchable-attributes
// order rather than the schema's declaration order.
type ReorderedAttrs struct {
	// order[stored attribute id] = search-visible rank. Attributes
	// absent from order are not searchable and sort last.
	order map[uint16]uint16
}

// NewReorderedAttrs builds a ReorderedAttrs from an ordered list of
// stored attribute ids, the order in which they should be considered
// during search.
func NewReorderedAttrs(searchableOrder []uint16) *ReorderedAttrs {
	order := make(map[uint16]uint16, len(searchableOrder))
	for rank, attr := range searchableOrder {
		order[attr] = uint16(rank)
	}
	return &ReorderedAttrs{order: order}
}

// Reorder maps a stored attribute id to its search-visible rank.
// Attributes outside the configured searchable set map to the
// maximum rank, so they sort after every configured attribute.
func (r *ReorderedAttrs) Reorder(attribute uint16) uint16 {
	if r == nil {
		return attribute
	}
	if rank, ok := r.order[attribute]; ok {
		return rank
	}
	return ^uint16(0)
}

// RawDocument groups every BareMatch for a single document; the arena
// and query mapping needed to lazily decode them into SimpleMatch
// records are passed to DecodedMatches by the caller. Criteria read RawDocument.DecodedMatches; they
// keep their own per-document scratch state rather than writing onto
// RawDocument directly (§9: "each concrete criterion is an
// independent value carrying its own scratch").
type RawDocument struct {
	DocumentId DocumentId
	BareMatch  []BareMatch

	Searchable *ReorderedAttrs

	decoded       []SimpleMatch
	decodedReady  bool
}

// BuildRawDocuments partitions a document-sorted []BareMatch into
// maximal equal-DocumentId runs and turns each into a RawDocument
// (§4.3). matches must already be sorted by DocumentId, as produced
// by ExtractBareMatches.
func BuildRawDocuments(matches []BareMatch, searchable *ReorderedAttrs) []*RawDocument {
	var docs []*RawDocument

	start := 0
	for start < len(matches) {
		end := start + 1
		documentId := matches[start].DocumentId
		for end < len(matches) && matches[end].DocumentId == documentId {
			end++
		}

		docs = append(docs, &RawDocument{
			DocumentId: documentId,
			BareMatch:  matches[start:end],
			Searchable: searchable,
		})

		start = end
	}

	return docs
}

// DecodedMatches decodes rd's bare matches into SimpleMatch records
// using arena-held posting-list views, caching the result so repeated
// criteria passes over the same RawDocument don't re-decode (prepare
// must be idempotent per group, §4.4).
func (rd *RawDocument) DecodedMatches(arena *Arena, mapping QueryMapping) []SimpleMatch {
	if rd.decodedReady {
		return rd.decoded
	}

	var out []SimpleMatch
	for _, bm := range rd.BareMatch {
		view := arena.Get(bm.PostingList)
		for _, pos := range view.Set() {
			attr := pos.Attribute
			if rd.Searchable != nil {
				attr = rd.Searchable.Reorder(attr)
			}
			out = append(out, SimpleMatch{
				QueryIndex: bm.QueryIndex,
				Distance:   bm.Distance,
				Attribute:  attr,
				WordIndex:  pos.WordIndex,
				IsExact:    bm.IsExact,
			})
		}
	}

	rd.decoded = out
	rd.decodedReady = true
	return out
}

// QueryIndexes returns the distinct query ids matched by rd, used by
// the "words" criterion to count how many distinct query terms a
// document satisfied.
func (rd *RawDocument) QueryIndexes() map[QueryId]struct{} {
	seen := make(map[QueryId]struct{}, len(rd.BareMatch))
	for _, bm := range rd.BareMatch {
		seen[bm.QueryIndex] = struct{}{}
	}
	return seen
}
