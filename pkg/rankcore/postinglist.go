package rankcore

// postingListKind tags which variant a PostingListView holds. Go has
// no tagged union, so this plus the two payload fields (only one of
// which is meaningful per kind) stands in for the sum type described
// in §9 ("sum-type posting-list view ... not inheritance").
type postingListKind int

const (
	postingListOriginal postingListKind = iota
	postingListRewritten
)

// PostingListView is either a zero-copy sub-range of a borrowed
// PostingList (Original) or an owned, edited copy (Rewritten).
// Criteria read through it via Set; only Original views support
// further range subdivision, since a Rewritten view no longer shares
// structure with the backing store it was derived from.
type PostingListView struct {
	kind  postingListKind
	input []byte // the term's raw bytes, kept for debugging/rendering

	// Original fields.
	backing PostingList // the full, shared backing list
	offset  int
	length  int

	// Rewritten field.
	owned PostingList
}

// OriginalPostingListView creates a view over the whole of list,
// sharing its backing storage.
func OriginalPostingListView(input []byte, list PostingList) PostingListView {
	return PostingListView{
		kind:    postingListOriginal,
		input:   input,
		backing: list,
		offset:  0,
		length:  len(list),
	}
}

// RewrittenPostingListView creates a view that owns an edited copy of
// a posting list, no longer sharing storage with any Original view it
// was derived from.
func RewrittenPostingListView(input []byte, owned PostingList) PostingListView {
	return PostingListView{
		kind:  postingListRewritten,
		input: input,
		owned: owned,
	}
}

// RewriteWith replaces v's contents with owned, preserving Input().
// The resulting view is Rewritten regardless of what v was before.
func (v PostingListView) RewriteWith(owned PostingList) PostingListView {
	return RewrittenPostingListView(v.input, owned)
}

// Len returns the number of DocIndex entries the view exposes.
func (v PostingListView) Len() int {
	if v.kind == postingListRewritten {
		return len(v.owned)
	}
	return v.length
}

// Input returns the term's raw source bytes.
func (v PostingListView) Input() []byte {
	return v.input
}

// Set returns the DocIndex entries the view currently exposes, in
// natural order.
func (v PostingListView) Set() PostingList {
	if v.kind == postingListRewritten {
		return v.owned
	}
	return v.backing[v.offset : v.offset+v.length]
}

// IsRewritten reports whether the view is the owned, edited variant.
func (v PostingListView) IsRewritten() bool {
	return v.kind == postingListRewritten
}

// Range returns a narrower view over [offset, offset+length) of an
// Original view, still sharing the same backing storage -- no
// allocation. It panics if offset+length exceeds the view's current
// length, and if called on a Rewritten view: range sub-slicing is
// only defined against the immutable backing store (§4.1).
func (v PostingListView) Range(offset, length int) PostingListView {
	if v.kind == postingListRewritten {
		panic("rankcore: cannot range a rewritten posting list view")
	}
	if offset+length > v.length {
		panic("rankcore: posting list range out of bounds")
	}
	return PostingListView{
		kind:    postingListOriginal,
		input:   v.input,
		backing: v.backing,
		offset:  v.offset + offset,
		length:  length,
	}
}
