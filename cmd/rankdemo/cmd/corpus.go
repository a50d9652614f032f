package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/blevesearch/bleve/v2"

	"github.com/ranklab/rankcore/internal/rankedcache"
	"github.com/ranklab/rankcore/internal/rankerrors"
	"github.com/ranklab/rankcore/pkg/rankcore"
)

// document is one entry of the toy in-memory corpus.
type document struct {
	ID         uint64
	Title      string
	Body       string
	Popularity int64
}

// attribute ids, in searchable-attribute order: title beats body.
const (
	attrTitle = uint16(0)
	attrBody  = uint16(1)
)

const fieldPopularity rankcore.FieldId = 0

var demoCorpus = []document{
	{ID: 1, Title: "Introduction to search ranking", Body: "A ranking core sorts candidate documents by a cascade of criteria such as typo distance and proximity.", Popularity: 42},
	{ID: 2, Title: "Bitmaps for fast set intersection", Body: "Roaring bitmaps make candidate set intersection and cardinality counting cheap at scale.", Popularity: 17},
	{ID: 3, Title: "Typo tolerant search engines", Body: "Typo tolerance lets a search engine match ranking against rank with a small edit distance.", Popularity: 73},
	{ID: 4, Title: "Facet counting without materialisation", Body: "Counting a facet value's documents only needs set cardinality, never the intersected set itself.", Popularity: 9},
	{ID: 5, Title: "Pagination with distinct attributes", Body: "Distinct pagination deduplicates the result page by a key before applying the requested offset and limit.", Popularity: 55},
}

// demoIndex is a minimal ReadTransaction + Traverser pair for the
// rankdemo corpus. Every document is indexed into an in-memory bleve
// index, but Traverse does not query it: both the candidate set and
// the per-term positions (where and how well each query term matched,
// which is what BareMatch extraction and the built-in criteria need)
// come from a hand-built positional posting index.
type demoIndex struct {
	docs     map[uint64]document
	bleve    bleve.Index
	postings map[string]rankcore.PostingList
	vocab    []string
	ranked   *rankcore.RankedMap

	// cache holds RankedValues() behind a generation key, the same way
	// a real index would avoid rebuilding its sortable-attribute lookup
	// on every request against an unchanged snapshot.
	cache      *rankedcache.Cache
	generation string

	// facets maps each popularity tier to the set of documents in it,
	// for --facet-filter and facet counting.
	facets map[rankcore.FacetValue]rankcore.DocSet
}

type bleveDoc struct {
	Content string `json:"content"`
}

func buildDemoIndex() (*demoIndex, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}

	di := &demoIndex{
		docs:       make(map[uint64]document, len(demoCorpus)),
		bleve:      idx,
		postings:   make(map[string]rankcore.PostingList),
		ranked:     rankcore.NewRankedMap(),
		cache:      rankedcache.New(rankedcache.DefaultSize),
		generation: fmt.Sprintf("demo-%d-docs", len(demoCorpus)),
	}

	vocabSeen := make(map[string]struct{})
	facetIds := make(map[string][]rankcore.DocumentId)
	batch := idx.NewBatch()
	for _, doc := range demoCorpus {
		di.docs[doc.ID] = doc
		di.ranked.Insert(rankcore.DocumentId(doc.ID), fieldPopularity, doc.Popularity)

		tier := popularityTier(doc.Popularity)
		facetIds[tier] = append(facetIds[tier], rankcore.DocumentId(doc.ID))

		if err := batch.Index(strconv.FormatUint(doc.ID, 10), bleveDoc{Content: doc.Title + " " + doc.Body}); err != nil {
			return nil, fmt.Errorf("index document %d: %w", doc.ID, err)
		}

		di.indexAttribute(doc.ID, attrTitle, doc.Title, vocabSeen)
		di.indexAttribute(doc.ID, attrBody, doc.Body, vocabSeen)
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("execute index batch: %w", err)
	}

	for term := range vocabSeen {
		di.vocab = append(di.vocab, term)
	}
	sort.Strings(di.vocab)

	for term, list := range di.postings {
		rankcore.SortDocIndexes(list)
		di.postings[term] = list
	}

	di.facets = make(map[rankcore.FacetValue]rankcore.DocSet, len(facetIds))
	for tier, ids := range facetIds {
		di.facets[rankcore.FacetValue{Field: fieldPopularity, Value: tier}] = rankcore.NewDocSet(ids...)
	}

	return di, nil
}

// popularityTier buckets a document's raw popularity score into one of
// three coarse facet values.
func popularityTier(p int64) string {
	switch {
	case p < 34:
		return "low"
	case p < 55:
		return "mid"
	default:
		return "high"
	}
}

func (di *demoIndex) indexAttribute(docID uint64, attr uint16, text string, vocabSeen map[string]struct{}) {
	for wordIndex, word := range tokenize(text) {
		vocabSeen[word] = struct{}{}
		di.postings[word] = append(di.postings[word], rankcore.DocIndex{
			DocumentId: rankcore.DocumentId(docID),
			Attribute:  attr,
			WordIndex:  uint16(wordIndex),
		})
	}
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	return fields
}

// FieldByName implements rankcore.ReadTransaction.
func (di *demoIndex) FieldByName(name string) (rankcore.FieldId, error) {
	if name == "popularity" {
		return fieldPopularity, nil
	}
	return 0, rankerrors.SchemaMissing(fmt.Sprintf("unknown field %q", name), nil)
}

// RankedValues implements rankcore.ReadTransaction, serving the demo's
// (static) RankedMap through the generation-keyed cache rather than
// handing it out directly, the way a real index would avoid rebuilding
// the lookup on every request against an unchanged snapshot.
func (di *demoIndex) RankedValues() (*rankcore.RankedMap, error) {
	return di.cache.GetOrBuild(di.generation, func() (*rankcore.RankedMap, error) {
		return di.ranked, nil
	})
}

// FacetDocids returns the demo's popularity-tier facet index, one
// DocSet per tier, for --facet-filter and facet counting.
func (di *demoIndex) FacetDocids() map[rankcore.FacetValue]rankcore.DocSet {
	return di.facets
}

// facetDocsetForTier resolves a popularity tier name to its DocSet.
func (di *demoIndex) facetDocsetForTier(tier string) (rankcore.DocSet, bool) {
	ds, ok := di.facets[rankcore.FacetValue{Field: fieldPopularity, Value: tier}]
	return ds, ok
}

// maxTypoDistance caps how many edits a query term may be from an
// indexed term before it no longer counts as a match, mirroring the
// spec's typo-tolerant matching (§4.4's "typo" criterion presupposes
// such a cutoff upstream, in the traverser/query builder).
const maxTypoDistance = 2

// Traverse implements rankcore.Traverser by resolving each token of
// the (plain-string) query, as split by tokenize, against the posting index,
// allowing up to maxTypoDistance edits, and returning the union of
// every matched document as the candidate set.
func (di *demoIndex) Traverse(ctx context.Context, txn rankcore.ReadTransaction, query rankcore.QueryTree) (rankcore.DocSet, map[rankcore.PostingsKey]rankcore.PostingList, error) {
	text, ok := query.(string)
	if !ok {
		return rankcore.DocSet{}, nil, rankerrors.QueryTreeError("rankdemo only accepts string queries", nil)
	}

	queries := make(map[rankcore.PostingsKey]rankcore.PostingList)
	var candidateIds []rankcore.DocumentId

	for i, term := range tokenize(text) {
		queryID := rankcore.QueryId(i)

		if list, ok := di.postings[term]; ok {
			queries[rankcore.PostingsKey{Query: queryID, Input: []byte(term), Distance: 0, IsExact: true}] = list
			candidateIds = append(candidateIds, idsOf(list)...)
		}

		for _, candidate := range di.vocab {
			if candidate == term {
				continue
			}
			d := levenshtein.ComputeDistance(term, candidate)
			if d == 0 || d > maxTypoDistance {
				continue
			}
			list := di.postings[candidate]
			queries[rankcore.PostingsKey{Query: queryID, Input: []byte(candidate), Distance: uint8(d), IsExact: false}] = list
			candidateIds = append(candidateIds, idsOf(list)...)
		}
	}

	return rankcore.NewDocSet(candidateIds...), queries, nil
}

func idsOf(list rankcore.PostingList) []rankcore.DocumentId {
	out := make([]rankcore.DocumentId, len(list))
	for i, d := range list {
		out[i] = d.DocumentId
	}
	return out
}
