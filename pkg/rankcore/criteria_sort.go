package rankcore

// SortDirection selects ascending or descending order for a
// user-defined attribute-sort criterion.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// AttributeSortCriterion is a user-defined "sort by field" criterion
// (§4.4's "user-defined attribute sort (asc/desc)"), backed by a
// precomputed RankedMap rather than decoded matches. Unlike the
// built-in criteria it carries no per-document scratch: the
// RankedMap is supplied once at construction and read directly.
type AttributeSortCriterion struct {
	field     FieldId
	direction SortDirection
	values    *RankedMap
}

// NewAttributeSortCriterion returns a criterion that orders documents
// by field's value in values, in the given direction. Documents
// missing the field sort last under Ascending and first under
// Descending (§4.7).
func NewAttributeSortCriterion(field FieldId, direction SortDirection, values *RankedMap) *AttributeSortCriterion {
	return &AttributeSortCriterion{field: field, direction: direction, values: values}
}

func (c *AttributeSortCriterion) Name() string { return "sort" }

func (c *AttributeSortCriterion) Prepare(ctx *Context, group []*RawDocument) error {
	return nil
}

// Evaluate swaps its operands under Descending before delegating to
// compareRanked, which always treats its first argument's missing
// value as sorting after its second: swapping the arguments therefore
// also swaps which side "missing" loses to, reproducing "absent sorts
// last under asc, first under desc" without a second code path.
func (c *AttributeSortCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	av := c.values.Get(a.DocumentId, c.field)
	bv := c.values.Get(b.DocumentId, c.field)
	if c.direction == Descending {
		return compareRanked(bv, av)
	}
	return compareRanked(av, bv)
}

func (c *AttributeSortCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.Evaluate(ctx, a, b) == 0
}
