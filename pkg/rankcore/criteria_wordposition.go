package rankcore

// WordPositionCriterion prefers documents whose best match landed
// earlier within its attribute (e.g. a term matching the first word of
// a title beats one matching the last), refining AttributeCriterion.
type WordPositionCriterion struct {
	best map[DocumentId]uint16
}

// NewWordPositionCriterion returns a ready-to-use word-position
// criterion.
func NewWordPositionCriterion() *WordPositionCriterion {
	return &WordPositionCriterion{}
}

func (c *WordPositionCriterion) Name() string { return "wordPosition" }

func (c *WordPositionCriterion) Prepare(ctx *Context, group []*RawDocument) error {
	c.best = make(map[DocumentId]uint16, len(group))

	for _, rd := range group {
		best := ^uint16(0)
		for _, m := range rd.DecodedMatches(ctx.Arena, ctx.Mapping) {
			if m.WordIndex < best {
				best = m.WordIndex
			}
		}
		c.best[rd.DocumentId] = best
	}
	return nil
}

func (c *WordPositionCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	return int(c.best[a.DocumentId]) - int(c.best[b.DocumentId])
}

func (c *WordPositionCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.best[a.DocumentId] == c.best[b.DocumentId]
}
