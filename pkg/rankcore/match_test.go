package rankcore

import "testing"

func buildPostingList(docIDs ...DocumentId) PostingList {
	list := make(PostingList, 0, len(docIDs))
	for _, id := range docIDs {
		list = append(list, DocIndex{DocumentId: id})
	}
	return list
}

func TestExtractBareMatchesDenseBranch(t *testing.T) {
	arena := NewArena(0)
	docids := NewDocSet(1, 2, 3, 4, 5)
	queries := map[PostingsKey]PostingList{
		{Query: 0, Input: []byte("term")}: buildPostingList(1, 2, 3, 4, 5),
	}

	// density 5/5 = 1.0 >= threshold: dense branch.
	matches := ExtractBareMatches(arena, docids, queries, 0.8)
	if len(matches) != 5 {
		t.Fatalf("len(matches) = %d, want 5", len(matches))
	}
	for i, m := range matches {
		if m.DocumentId != DocumentId(i+1) {
			t.Fatalf("matches[%d].DocumentId = %d, want %d", i, m.DocumentId, i+1)
		}
	}
}

func TestExtractBareMatchesSparseBranch(t *testing.T) {
	arena := NewArena(0)
	docids := NewDocSet(3)
	queries := map[PostingsKey]PostingList{
		{Query: 0, Input: []byte("term")}: buildPostingList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
	}

	// density 1/10 = 0.1 < threshold: sparse branch.
	matches := ExtractBareMatches(arena, docids, queries, 0.8)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].DocumentId != 3 {
		t.Fatalf("matches[0].DocumentId = %d, want 3", matches[0].DocumentId)
	}
}

func TestExtractBareMatchesSkipsEmptyPostingList(t *testing.T) {
	arena := NewArena(0)
	docids := NewDocSet(1)
	queries := map[PostingsKey]PostingList{
		{Query: 0, Input: []byte("term")}: {},
	}

	matches := ExtractBareMatches(arena, docids, queries, 0.8)
	if len(matches) != 0 {
		t.Fatalf("len(matches) = %d, want 0", len(matches))
	}
}

func TestExtractBareMatchesGroupsMultiplePositionsPerDocument(t *testing.T) {
	arena := NewArena(0)
	docids := NewDocSet(1)
	list := PostingList{
		{DocumentId: 1, WordIndex: 0},
		{DocumentId: 1, WordIndex: 5},
	}
	queries := map[PostingsKey]PostingList{
		{Query: 0, Input: []byte("term")}: list,
	}

	matches := ExtractBareMatches(arena, docids, queries, 0.8)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1 (one BareMatch per document run)", len(matches))
	}
	view := arena.Get(matches[0].PostingList)
	if view.Len() != 2 {
		t.Fatalf("view.Len() = %d, want 2", view.Len())
	}
}

func TestExponentialSearchDocumentId(t *testing.T) {
	list := buildPostingList(1, 3, 5, 7, 9, 11, 13)

	cases := []struct {
		target DocumentId
		want   int
	}{
		{1, 0},
		{5, 2},
		{13, 6},
		{0, 0},
		{14, 7},
		{4, 2},
	}
	for _, c := range cases {
		if got := exponentialSearchDocumentId(list, c.target); got != c.want {
			t.Errorf("exponentialSearchDocumentId(list, %d) = %d, want %d", c.target, got, c.want)
		}
	}
}

func TestExponentialSearchEmptyList(t *testing.T) {
	if got := exponentialSearchDocumentId(nil, 5); got != 0 {
		t.Fatalf("exponentialSearchDocumentId(nil, 5) = %d, want 0", got)
	}
}

func TestSortBareMatchesByDocument(t *testing.T) {
	matches := []BareMatch{
		{DocumentId: 3},
		{DocumentId: 1},
		{DocumentId: 2},
	}
	SortBareMatchesByDocument(matches)

	for i, want := range []DocumentId{1, 2, 3} {
		if matches[i].DocumentId != want {
			t.Fatalf("matches[%d].DocumentId = %d, want %d", i, matches[i].DocumentId, want)
		}
	}
}

func TestExtractBareMatchesBothBranchesAgree(t *testing.T) {
	arena1 := NewArena(0)
	arena2 := NewArena(0)
	list := buildPostingList(2, 4, 6, 8, 10, 12, 14, 16, 18, 20)
	docids := NewDocSet(4, 10, 16)

	dense := ExtractBareMatches(arena1, docids, map[PostingsKey]PostingList{
		{Query: 0, Input: []byte("t")}: list,
	}, 0.01) // density 3/10 >= 0.01: dense branch
	sparse := ExtractBareMatches(arena2, docids, map[PostingsKey]PostingList{
		{Query: 0, Input: []byte("t")}: list,
	}, 1.0) // density 3/10 < 1.0: sparse branch

	if len(dense) != len(sparse) {
		t.Fatalf("dense and sparse branches disagree on match count: %d vs %d", len(dense), len(sparse))
	}
	for i := range dense {
		if dense[i].DocumentId != sparse[i].DocumentId {
			t.Fatalf("dense[%d].DocumentId=%d != sparse[%d].DocumentId=%d", i, dense[i].DocumentId, i, sparse[i].DocumentId)
		}
	}
}
