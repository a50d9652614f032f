package rankcore

import "sort"

// PostingsKey identifies one resolved query-term posting list within
// a traverse_query_tree result: which leaf query produced it, its raw
// term bytes, its edit distance from the query term, and whether the
// match was exact.
type PostingsKey struct {
	Query    QueryId
	Input    []byte
	Distance uint8
	IsExact  bool
}

// BareMatch is the minimal per-document witness that a query term
// matched: enough for criterion evaluation, plus a stable arena handle
// to the originating posting-list sub-range. It never borrows a Go
// pointer into index memory directly (§9).
type BareMatch struct {
	DocumentId  DocumentId
	QueryIndex  QueryId
	Distance    uint8
	IsExact     bool
	PostingList PostingListIndex
}

// matchDensityThreshold is the fixed policy constant from §4.2: above
// this candidate/posting-list size ratio, it is cheaper to walk the
// posting list and test membership in the candidate set; below it,
// it's cheaper to walk the (smaller) candidate set and probe into the
// posting list with exponential search.
const matchDensityThreshold = 0.8

// ExtractBareMatches turns a query-result {candidate docids, term →
// posting list} mapping into a flat, document-sorted array of
// BareMatch, intersecting each posting list with the candidate set by
// whichever of the two strategies is cheaper for that term (§4.2).
//
// Every retained run is registered in arena as an Original view over
// the matching sub-range of its source posting list, and threshold
// lets callers override the fixed 0.8 density policy (wired to
// internal/rankconfig.Config.MatchDensityThreshold); pass 0 to use
// the spec's default.
func ExtractBareMatches(arena *Arena, docids DocSet, queries map[PostingsKey]PostingList, threshold float64) []BareMatch {
	if threshold <= 0 {
		threshold = matchDensityThreshold
	}

	var bareMatches []BareMatch
	docidsLen := float64(docids.Len())

	for key, list := range queries {
		view := OriginalPostingListView(key.Input, list)
		listLen := float64(view.Len())
		if listLen == 0 {
			continue
		}

		if docidsLen/listLen >= threshold {
			bareMatches = append(bareMatches, extractByWalkingPostings(arena, view, docids, key)...)
		} else {
			bareMatches = append(bareMatches, extractByProbingPostings(arena, view, docids, key)...)
		}
	}

	SortBareMatchesByDocument(bareMatches)
	return bareMatches
}

// extractByWalkingPostings implements the dense branch (§4.2): iterate
// the posting list grouped by document id, testing membership in the
// (smaller-relative) candidate set for each group.
func extractByWalkingPostings(arena *Arena, view PostingListView, docids DocSet, key PostingsKey) []BareMatch {
	var matches []BareMatch
	list := view.Set()

	offset := 0
	for offset < len(list) {
		runEnd := offset + 1
		documentId := list[offset].DocumentId
		for runEnd < len(list) && list[runEnd].DocumentId == documentId {
			runEnd++
		}
		runLen := runEnd - offset

		if docids.Contains(documentId) {
			idx := arena.Add(view.Range(offset, runLen))
			matches = append(matches, BareMatch{
				DocumentId:  documentId,
				QueryIndex:  key.Query,
				Distance:    key.Distance,
				IsExact:     key.IsExact,
				PostingList: idx,
			})
		}

		offset = runEnd
	}
	return matches
}

// extractByProbingPostings implements the sparse branch (§4.2):
// iterate the candidate set and, for each docid, exponential-search
// into the remaining tail of the posting list for its leading run.
func extractByProbingPostings(arena *Arena, view PostingListView, docids DocSet, key PostingsKey) []BareMatch {
	var matches []BareMatch
	list := view.Set()

	offset := 0
	for _, id := range docids.ToSlice() {
		if offset >= len(list) {
			break
		}

		pos := exponentialSearchDocumentId(list[offset:], id)
		offset += pos
		if offset >= len(list) || list[offset].DocumentId != id {
			continue
		}

		runEnd := offset + 1
		for runEnd < len(list) && list[runEnd].DocumentId == id {
			runEnd++
		}
		runLen := runEnd - offset

		idx := arena.Add(view.Range(offset, runLen))
		matches = append(matches, BareMatch{
			DocumentId:  id,
			QueryIndex:  key.Query,
			Distance:    key.Distance,
			IsExact:     key.IsExact,
			PostingList: idx,
		})

		offset = runEnd
	}
	return matches
}

// exponentialSearchDocumentId returns the index of the first element
// in list with DocumentId >= target, galloping outward in doubling
// steps before binary-searching the bracketed range. This is the
// standard exponential/galloping search the original implementation
// names directly (meilisearch-core's sdset::exponential_search).
func exponentialSearchDocumentId(list []DocIndex, target DocumentId) int {
	if len(list) == 0 {
		return 0
	}

	bound := 1
	for bound < len(list) && list[bound].DocumentId < target {
		bound *= 2
	}

	lo := bound / 2
	hi := bound
	if hi > len(list) {
		hi = len(list)
	}

	for lo < hi {
		mid := lo + (hi-lo)/2
		if list[mid].DocumentId < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// SortBareMatchesByDocument sorts matches by DocumentId so that
// adjacent runs correspond to a single document (§3 invariant). The
// order within a document is reconstructed downstream by raw-document
// assembly and is not preserved here, so an unstable sort is fine.
func SortBareMatchesByDocument(matches []BareMatch) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DocumentId < matches[j].DocumentId
	})
}
