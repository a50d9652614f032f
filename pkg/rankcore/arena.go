package rankcore

// PostingListIndex is a stable handle into an Arena. BareMatch and
// RawDocument hold these instead of direct references to a
// PostingListView, so the views can be freely reallocated (e.g. moved
// between slices during the bucket-sort cascade) without invalidating
// anything that points at them.
type PostingListIndex int

// Arena owns every PostingListView materialised during a single
// search call. It replaces a pointer graph with a flat slice and
// stable integer indices (§9, "arena-backed views with internal
// references"): nothing outside the arena ever holds a Go pointer
// into index-owned memory, so the whole thing is released as one unit
// when the search call returns.
//
// An Arena is not safe for concurrent use; a single search call owns
// it exclusively (§5).
type Arena struct {
	views []PostingListView
}

// NewArena returns an empty arena, optionally pre-sized for an
// expected number of posting-list views.
func NewArena(capacityHint int) *Arena {
	return &Arena{views: make([]PostingListView, 0, capacityHint)}
}

// Add stores view in the arena and returns a stable index for it.
func (a *Arena) Add(view PostingListView) PostingListIndex {
	a.views = append(a.views, view)
	return PostingListIndex(len(a.views) - 1)
}

// Get returns the view at idx.
func (a *Arena) Get(idx PostingListIndex) PostingListView {
	return a.views[idx]
}

// Set replaces the view at idx in place. Criteria use this to rewrite
// a posting list (e.g. restrict it to a single attribute) without
// invalidating any other index that still points at the arena slot --
// every holder of idx observes the replacement the next time it calls
// Get, which is safe because a single search call is single-threaded
// (§5, §9).
func (a *Arena) Set(idx PostingListIndex, view PostingListView) {
	a.views[idx] = view
}

// Len returns the number of views currently held by the arena.
func (a *Arena) Len() int {
	return len(a.views)
}

// Release drops the arena's backing storage. Called on every exit
// path of Search, including error paths, so that posting-list views
// borrowed from the read transaction never outlive the call (§5).
func (a *Arena) Release() {
	a.views = nil
}
