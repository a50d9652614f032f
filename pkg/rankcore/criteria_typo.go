package rankcore

// TypoCriterion prefers documents with fewer and lower-edit-distance
// word matches: an exact match beats a one-typo match, which beats a
// two-typo match, for the same query term.
type TypoCriterion struct {
	totalDistance map[DocumentId]int
}

// NewTypoCriterion returns a ready-to-use typo criterion.
func NewTypoCriterion() *TypoCriterion {
	return &TypoCriterion{}
}

func (c *TypoCriterion) Name() string { return "typo" }

// Prepare computes, for each document in group, the sum of the best
// (lowest) edit distance seen per distinct query index matched. A
// document matching three query terms with distances {0,1,0} scores 1;
// one matching the same three terms with distances {0,0,0} scores 0
// and ranks first.
func (c *TypoCriterion) Prepare(ctx *Context, group []*RawDocument) error {
	c.totalDistance = make(map[DocumentId]int, len(group))

	for _, rd := range group {
		best := make(map[QueryId]uint8)
		for _, bm := range rd.BareMatch {
			if d, ok := best[bm.QueryIndex]; !ok || bm.Distance < d {
				best[bm.QueryIndex] = bm.Distance
			}
		}
		total := 0
		for _, d := range best {
			total += int(d)
		}
		c.totalDistance[rd.DocumentId] = total
	}
	return nil
}

func (c *TypoCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	return c.totalDistance[a.DocumentId] - c.totalDistance[b.DocumentId]
}

func (c *TypoCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.totalDistance[a.DocumentId] == c.totalDistance[b.DocumentId]
}
