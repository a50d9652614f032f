package rankcore

// AttributeCriterion prefers documents whose best match landed in an
// earlier searchable attribute (e.g. a title match beats a body
// match), independent of how many terms matched or where in the
// attribute.
type AttributeCriterion struct {
	best map[DocumentId]uint16
}

// NewAttributeCriterion returns a ready-to-use attribute criterion.
func NewAttributeCriterion() *AttributeCriterion {
	return &AttributeCriterion{}
}

func (c *AttributeCriterion) Name() string { return "attribute" }

func (c *AttributeCriterion) Prepare(ctx *Context, group []*RawDocument) error {
	c.best = make(map[DocumentId]uint16, len(group))

	for _, rd := range group {
		best := ^uint16(0)
		for _, m := range rd.DecodedMatches(ctx.Arena, ctx.Mapping) {
			if m.Attribute < best {
				best = m.Attribute
			}
		}
		c.best[rd.DocumentId] = best
	}
	return nil
}

func (c *AttributeCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	return int(c.best[a.DocumentId]) - int(c.best[b.DocumentId])
}

func (c *AttributeCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.best[a.DocumentId] == c.best[b.DocumentId]
}
