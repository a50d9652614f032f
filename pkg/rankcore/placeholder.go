package rankcore

import "sort"

// PlaceholderSortRule orders a placeholder (no-query) search by a
// single ranked attribute, ascending or descending.
type PlaceholderSortRule struct {
	Field     FieldId
	Direction SortDirection
}

// PlaceholderDocumentSort orders candidates with no query terms at all
// (§4.7): there are no criteria to cascade through, so documents are
// sorted directly by the configured ranked attributes, falling back to
// DocumentId order when rules is empty or exhausted, and paginated the
// same way as a cascaded sort.
func PlaceholderDocumentSort(candidates DocSet, rules []PlaceholderSortRule, values *RankedMap, page Range) SortResult {
	ids := candidates.ToSlice()

	sort.SliceStable(ids, func(i, j int) bool {
		for _, rule := range rules {
			av := values.Get(ids[i], rule.Field)
			bv := values.Get(ids[j], rule.Field)
			var cmp int
			if rule.Direction == Descending {
				cmp = compareRanked(bv, av)
			} else {
				cmp = compareRanked(av, bv)
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return ids[i] < ids[j]
	})

	start := page.Start
	if start > len(ids) {
		start = len(ids)
	}
	end := page.End
	if end > len(ids) {
		end = len(ids)
	}
	if end < start {
		end = start
	}

	docs := make([]*RawDocument, 0, end-start)
	for _, id := range ids[start:end] {
		docs = append(docs, &RawDocument{DocumentId: id})
	}

	return SortResult{Documents: docs, NbHits: len(ids), ExhaustiveNbHits: true}
}
