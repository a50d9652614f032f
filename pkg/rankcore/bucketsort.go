package rankcore

import "sort"

// SortResult is the outcome of one ranking-core call (§3).
type SortResult struct {
	Documents []*RawDocument
	// NbHits is the size of the candidate set the cascade ranked --
	// len(documents) as handed to BucketSort/BucketSortWithDistinct.
	// It is independent of pagination, distinct deduplication, and early
	// termination, but counts only the documents handed in: one removed
	// upstream (e.g. by Search's Filter) is not included. Search
	// overrides this with the post-facet-intersection candidate count,
	// which does include documents its Filter rejected (§3, §8
	// property 4).
	NbHits int
	// ExhaustiveNbHits reports whether every criterion finished
	// refining the documents needed to produce Documents, or the
	// cascade stopped early once the page was already satisfied
	// (early termination, §4.5). It says nothing about NbHits, which
	// is always exact.
	ExhaustiveNbHits bool
	// Facets holds one count per facet value a caller requested, nil
	// unless Search was asked to count facets (§4.8).
	Facets []FacetCount
	// ExhaustiveFacetsCount reports whether Facets holds an exact
	// count. Always true when Facets is non-nil: approximate facet
	// counting is a future optimisation this core doesn't implement
	// (§9).
	ExhaustiveFacetsCount bool
}

// DistinctKeyFunc derives a DistinctKey from a document, used by
// BucketSortWithDistinct to deduplicate the result page (§4.6). A nil
// DistinctKeyFunc, or one that always returns nil, disables
// deduplication.
type DistinctKeyFunc func(DocumentId) DistinctKey

// BucketSort ranks candidates by cascading through criteria and
// returns the requested page, without distinct-attribute
// deduplication. It is defined in terms of BucketSortWithDistinct with
// a no-op key function and distinctSize 1, exactly as the original
// implementation delegates bucket_sort to bucket_sort_with_distinct
// (§4.5, §4.6).
func BucketSort(ctx *Context, documents []*RawDocument, criteria []Criterion, page Range) (SortResult, error) {
	return BucketSortWithDistinct(ctx, documents, criteria, nil, 1, page)
}

// BucketSortWithDistinct ranks candidates by cascading through
// criteria, applying distinct-attribute deduplication as it goes, and
// returns the requested page (§4.5, §4.6).
//
// documents is sorted in place, criterion by criterion: each
// criterion's Prepare runs once per bucket, Evaluate orders the
// bucket, and Eq re-partitions it into sub-buckets for the next
// criterion. groups tracks which slices of documents remain open for
// further refinement; sorting a sub-slice mutates documents directly,
// so a bucket dropped from groups once the page is already full stays
// exactly where it was left -- still present in documents, just never
// touched by a later criterion (the skip-ahead optimisation in
// bucket_sort.rs).
//
// Each criterion pass also tracks distinctRawOffset, the raw position
// (from the start of documents) before which every document is known
// to fall entirely before the requested page: once a pass's
// BufferedDistinctMap count stays below page.Start for an entire
// sub-bucket, that bucket's distinct accounting is committed to the
// shared DistinctMap and distinctRawOffset advances past it, so later
// passes never re-walk it. The final walk below starts from
// distinctRawOffset and re-derives distinct acceptance fresh from
// there, since a bucket sitting exactly on the page boundary can't be
// safely committed ahead of time.
func BucketSortWithDistinct(
	ctx *Context,
	documents []*RawDocument,
	criteria []Criterion,
	keyFunc DistinctKeyFunc,
	distinctSize int,
	page Range,
) (SortResult, error) {
	distinctMap := NewDistinctMap(distinctSize)
	distinctRawOffset := 0
	exhaustive := true
	groups := [][]*RawDocument{documents}

criteriaLoop:
	for _, crit := range criteria {
		pending := groups
		groups = nil
		buf := NewBufferedDistinctMap(distinctMap)
		documentsSeen := 0

		for pi, group := range pending {
			if documentsSeen+len(group) <= distinctRawOffset {
				documentsSeen += len(group)
				groups = append(groups, group)
				continue
			}

			if err := crit.Prepare(ctx, group); err != nil {
				return SortResult{}, err
			}
			sort.SliceStable(group, func(i, j int) bool {
				return crit.Evaluate(ctx, group[i], group[j]) < 0
			})

			start := 0
			for start < len(group) {
				end := start + 1
				for end < len(group) && crit.Eq(ctx, group[start], group[end]) {
					end++
				}
				sub := group[start:end]

				for _, rd := range sub {
					registerForPage(buf, keyFunc, rd)
					if buf.Len() >= page.End {
						break
					}
				}

				documentsSeen += len(sub)
				groups = append(groups, sub)

				if buf.Len() < page.Start {
					buf.TransferToInternal()
					distinctRawOffset = documentsSeen
				}

				if buf.Len() >= page.End {
					if end < len(group) || pi < len(pending)-1 {
						exhaustive = false
					}
					continue criteriaLoop
				}
				start = end
			}
		}
	}

	if distinctRawOffset > len(documents) {
		distinctRawOffset = len(documents)
	}

	pageLen := page.Len()
	out := make([]*RawDocument, 0, pageLen)

	if pageLen > 0 {
		seen := NewBufferedDistinctMap(distinctMap)
		for _, rd := range documents[distinctRawOffset:] {
			accepted := registerForPage(seen, keyFunc, rd)
			if accepted && seen.Len() > page.Start {
				out = append(out, rd)
				if len(out) == pageLen {
					break
				}
			}
		}
	}

	return SortResult{Documents: out, NbHits: len(documents), ExhaustiveNbHits: exhaustive}, nil
}

// registerForPage stages rd's distinct-budget consumption with buf,
// deriving its key via keyFunc (a nil keyFunc, or a nil key, always
// registers as unkeyed). It reports whether rd is within budget.
func registerForPage(buf *BufferedDistinctMap, keyFunc DistinctKeyFunc, rd *RawDocument) bool {
	if keyFunc == nil {
		buf.RegisterWithoutKey()
		return true
	}
	key := keyFunc(rd.DocumentId)
	if key == nil {
		buf.RegisterWithoutKey()
		return true
	}
	return buf.Register(key)
}
