package rankcore

// WordsCriterion prefers documents matching more distinct query
// terms over fewer, independent of how well each term matched.
type WordsCriterion struct {
	count map[DocumentId]int
}

// NewWordsCriterion returns a ready-to-use words criterion.
func NewWordsCriterion() *WordsCriterion {
	return &WordsCriterion{}
}

func (c *WordsCriterion) Name() string { return "words" }

func (c *WordsCriterion) Prepare(ctx *Context, group []*RawDocument) error {
	c.count = make(map[DocumentId]int, len(group))
	for _, rd := range group {
		c.count[rd.DocumentId] = len(rd.QueryIndexes())
	}
	return nil
}

// Evaluate ranks the document matching more query terms first, hence
// the reversed subtraction relative to TypoCriterion.
func (c *WordsCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	return c.count[b.DocumentId] - c.count[a.DocumentId]
}

func (c *WordsCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.count[a.DocumentId] == c.count[b.DocumentId]
}
