package rankcore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ranklab/rankcore/internal/rankerrors"
)

// QueryTree is an opaque, already-parsed query (§1): the ranking core
// never builds or inspects its internal shape, only hands it to a
// Traverser.
type QueryTree any

// ReadTransaction is the index-side collaborator a caller supplies for
// one Search call: it resolves schema lookups and ranked-attribute
// reads against a single consistent index snapshot. The ranking core
// never opens, commits, or retries one itself (§1, §6).
type ReadTransaction interface {
	// FieldByName resolves a searchable/sortable attribute name to its
	// FieldId, returning rankerrors.SchemaMissing if absent.
	FieldByName(name string) (FieldId, error)
	// RankedValues returns the RankedMap backing sort/placeholder-sort
	// for this transaction's index generation.
	RankedValues() (*RankedMap, error)
}

// Traverser resolves a QueryTree against a ReadTransaction into the
// candidate docid set and the per-term posting lists ExtractBareMatches
// needs (§1, §4.1). Building and walking the query tree itself is
// entirely the caller's concern; the ranking core only consumes the
// result.
type Traverser interface {
	Traverse(ctx context.Context, txn ReadTransaction, query QueryTree) (DocSet, map[PostingsKey]PostingList, error)
}

// FilterFunc reports whether a document passes the caller's filter
// expression (facet filters, deleted-document checks, ACLs). Applied
// after candidate resolution and before criteria see the group (§4.1).
type FilterFunc func(DocumentId) bool

// SearchRequest bundles one Search call's parameters.
type SearchRequest struct {
	Query         QueryTree
	Criteria      []Criterion
	Filter        FilterFunc
	DistinctField FieldId
	HasDistinct   bool
	DistinctSize  int
	Page          Range

	// Placeholder, when true, skips query-tree traversal entirely and
	// runs PlaceholderDocumentSort over Candidates (§4.7): Query,
	// Criteria, and MatchDensityThreshold are ignored.
	Placeholder      bool
	Candidates       DocSet
	PlaceholderRules []PlaceholderSortRule

	MatchDensityThreshold float64

	// HasFacetFilter, when true, intersects the resolved candidate set
	// with FacetFilter before bare-match extraction -- the "intersect
	// with optional facet filter" step ahead of §4.1.
	HasFacetFilter bool
	FacetFilter    DocSet

	// FacetDocids, when non-empty, requests a facet count (§4.8) for
	// each entry against the candidate set, after any FacetFilter
	// intersection. Nil/empty skips facet counting entirely.
	FacetDocids map[FacetValue]DocSet
}

// Search runs one ranking-core call end to end: traverse the query
// tree, extract bare matches, assemble raw documents, cascade through
// criteria (or placeholder-sort if there's no query), and return the
// requested page (§1, §6).
//
// The arena backing every posting-list view created during the call is
// released on every exit path, including errors, so a caller never
// leaks index-borrowed memory past one Search call (§5).
func Search(ctx context.Context, logger *slog.Logger, txn ReadTransaction, traverser Traverser, req SearchRequest) (SortResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	traceID := uuid.NewString()
	logger = logger.With("trace_id", traceID)

	if req.Placeholder {
		values, err := txn.RankedValues()
		if err != nil {
			return SortResult{}, rankerrors.IndexIO("loading ranked attribute values", err)
		}
		logger.Debug("placeholder search", "candidates", req.Candidates.Len())
		return PlaceholderDocumentSort(req.Candidates, req.PlaceholderRules, values, req.Page), nil
	}

	arena := NewArena(64)
	defer arena.Release()

	candidates, queries, err := traverser.Traverse(ctx, txn, req.Query)
	if err != nil {
		return SortResult{}, rankerrors.QueryTreeError("traversing query tree", err)
	}

	if req.HasFacetFilter {
		candidates = candidates.Intersect(req.FacetFilter)
	}

	var facets []FacetCount
	exhaustiveFacets := false
	if len(req.FacetDocids) > 0 {
		facets, err = CountFacets(ctx, candidates, req.FacetDocids)
		if err != nil {
			return SortResult{}, rankerrors.Internal("counting facets", err)
		}
		exhaustiveFacets = true
	}

	bareMatches := ExtractBareMatches(arena, candidates, queries, req.MatchDensityThreshold)

	if req.Filter != nil {
		bareMatches = filterBareMatches(bareMatches, req.Filter)
	}

	documents := BuildRawDocuments(bareMatches, nil)

	mapping := make(QueryMapping, len(queries))
	for key := range queries {
		if key.IsExact {
			if _, ok := mapping[key.Query]; !ok {
				mapping[key.Query] = QueryKindExact
			}
			continue
		}
		mapping[key.Query] = QueryKindTolerant
	}
	sortCtx := &Context{Arena: arena, Mapping: mapping}

	var result SortResult
	if req.HasDistinct {
		values, verr := txn.RankedValues()
		if verr != nil {
			return SortResult{}, rankerrors.IndexIO("loading ranked attribute values", verr)
		}
		keyFunc := func(doc DocumentId) DistinctKey {
			v := values.Get(doc, req.DistinctField)
			if !v.Valid {
				return nil
			}
			return v.Value
		}
		result, err = BucketSortWithDistinct(sortCtx, documents, req.Criteria, keyFunc, req.DistinctSize, req.Page)
	} else {
		result, err = BucketSort(sortCtx, documents, req.Criteria, req.Page)
	}
	if err != nil {
		logger.Error("bucket sort failed", "error", err)
		return SortResult{}, err
	}

	result.NbHits = candidates.Len()
	result.Facets = facets
	result.ExhaustiveFacetsCount = exhaustiveFacets

	if !result.ExhaustiveNbHits {
		logger.Debug("bucket sort terminated early", "nb_hits", result.NbHits, "page_end", req.Page.End)
	}

	return result, nil
}

func filterBareMatches(matches []BareMatch, filter FilterFunc) []BareMatch {
	out := matches[:0]
	for _, m := range matches {
		if filter(m.DocumentId) {
			out = append(out, m)
		}
	}
	return out
}
