package rankcore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FacetValue identifies one distinct value of a facetable attribute
// (e.g. "color=red"); the index hands the ranking core one DocSet per
// facet value, already resolved.
type FacetValue struct {
	Field FieldId
	Value string
}

// FacetCount pairs a facet value with the number of candidate
// documents carrying it.
type FacetCount struct {
	FacetValue
	Count int
}

// CountFacets computes, for each entry in facetDocids, the cardinality
// of its intersection with candidates, without ever materialising the
// intersection (§4.8). Facets are counted concurrently since each is
// an independent bitmap AND-cardinality; errgroup waits for all of
// them. No counting goroutine returns an error, so the error result is
// always nil.
func CountFacets(ctx context.Context, candidates DocSet, facetDocids map[FacetValue]DocSet) ([]FacetCount, error) {
	counts := make([]FacetCount, len(facetDocids))

	g, _ := errgroup.WithContext(ctx)
	i := 0
	for fv, docids := range facetDocids {
		i, fv, docids := i, fv, docids
		g.Go(func() error {
			counts[i] = FacetCount{
				FacetValue: fv,
				Count:      candidates.IntersectionCardinality(docids),
			}
			return nil
		})
		i++
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
