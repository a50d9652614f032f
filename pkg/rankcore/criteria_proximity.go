package rankcore

import "sort"

// maxProximityPerPair caps the contribution of a single consecutive
// query-term pair when no co-occurrence in the same attribute is
// found (or the words are far apart), so one missing pair doesn't
// dominate over several perfectly adjacent ones.
const maxProximityPerPair = 8

// ProximityCriterion prefers documents where consecutive query terms
// occur close together (in word-index distance, within the same
// attribute) over documents where they are scattered.
type ProximityCriterion struct {
	arena   *Arena
	mapping QueryMapping
	score   map[DocumentId]int
}

// NewProximityCriterion returns a ready-to-use proximity criterion.
func NewProximityCriterion() *ProximityCriterion {
	return &ProximityCriterion{}
}

func (c *ProximityCriterion) Name() string { return "proximity" }

func (c *ProximityCriterion) Prepare(ctx *Context, group []*RawDocument) error {
	c.arena = ctx.Arena
	c.mapping = ctx.Mapping
	c.score = make(map[DocumentId]int, len(group))

	for _, rd := range group {
		c.score[rd.DocumentId] = proximityScore(rd.DecodedMatches(ctx.Arena, ctx.Mapping))
	}
	return nil
}

func (c *ProximityCriterion) Evaluate(ctx *Context, a, b *RawDocument) int {
	return c.score[a.DocumentId] - c.score[b.DocumentId]
}

func (c *ProximityCriterion) Eq(ctx *Context, a, b *RawDocument) bool {
	return c.score[a.DocumentId] == c.score[b.DocumentId]
}

// proximityScore sums, for each pair of consecutive query indexes
// present in matches, the smallest same-attribute word-index distance
// between any of their occurrences, capped at maxProximityPerPair when
// no such co-occurrence exists.
func proximityScore(matches []SimpleMatch) int {
	byQuery := make(map[QueryId][]SimpleMatch)
	queryIds := make([]QueryId, 0)
	for _, m := range matches {
		if _, ok := byQuery[m.QueryIndex]; !ok {
			queryIds = append(queryIds, m.QueryIndex)
		}
		byQuery[m.QueryIndex] = append(byQuery[m.QueryIndex], m)
	}
	sort.Slice(queryIds, func(i, j int) bool { return queryIds[i] < queryIds[j] })

	total := 0
	for i := 1; i < len(queryIds); i++ {
		total += bestPairDistance(byQuery[queryIds[i-1]], byQuery[queryIds[i]])
	}
	return total
}

func bestPairDistance(left, right []SimpleMatch) int {
	best := maxProximityPerPair
	for _, l := range left {
		for _, r := range right {
			if l.Attribute != r.Attribute {
				continue
			}
			d := int(r.WordIndex) - int(l.WordIndex)
			if d < 0 {
				d = -d
			}
			if d < best {
				best = d
			}
		}
	}
	return best
}
