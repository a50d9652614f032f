package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranklab/rankcore/internal/rankconfig"
	"github.com/ranklab/rankcore/pkg/rankcore"
)

type searchOptions struct {
	limit       int
	configPath  string
	facetFilter string
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank the built-in demo corpus against a query",
		Long: `Runs the query through rankcore.Search against a small
built-in document set, cascading through the ranking rules named in
the config (typo, words, proximity, attribute, word-position, and
exactness by default).

Example:
  rankdemo search "rankng typo"
  rankdemo search --facet-filter high "search ranking"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 5, "Maximum number of results")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a rankconfig YAML file (ranking-rule order, distinct size, match density threshold)")
	cmd.Flags().StringVar(&opts.facetFilter, "facet-filter", "", "Restrict results to a popularity tier (low, mid, high)")
	return cmd
}

// criteriaByName resolves a rankconfig.Config.Criteria entry to its
// constructor, mirroring the built-in ranking rules bucket_sort.rs
// cascades through by name.
var criteriaByName = map[string]func() rankcore.Criterion{
	"typo":         func() rankcore.Criterion { return rankcore.NewTypoCriterion() },
	"words":        func() rankcore.Criterion { return rankcore.NewWordsCriterion() },
	"proximity":    func() rankcore.Criterion { return rankcore.NewProximityCriterion() },
	"attribute":    func() rankcore.Criterion { return rankcore.NewAttributeCriterion() },
	"wordPosition": func() rankcore.Criterion { return rankcore.NewWordPositionCriterion() },
	"exactness":    func() rankcore.Criterion { return rankcore.NewExactnessCriterion() },
}

func buildCriteria(names []string) ([]rankcore.Criterion, error) {
	criteria := make([]rankcore.Criterion, 0, len(names))
	for _, name := range names {
		ctor, ok := criteriaByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown criterion %q", name)
		}
		criteria = append(criteria, ctor())
	}
	return criteria, nil
}

func runSearch(ctx context.Context, cmd *cobra.Command, query string, opts searchOptions) error {
	cfg := rankconfig.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = rankconfig.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	idx, err := buildDemoIndex()
	if err != nil {
		return fmt.Errorf("build demo index: %w", err)
	}

	criteria, err := buildCriteria(cfg.Criteria)
	if err != nil {
		return fmt.Errorf("build criteria: %w", err)
	}

	req := rankcore.SearchRequest{
		Query:                 query,
		Criteria:              criteria,
		Page:                  rankcore.Range{Start: 0, End: opts.limit},
		MatchDensityThreshold: cfg.MatchDensityThreshold,
	}

	if cfg.FacetsExhaustive {
		req.FacetDocids = idx.FacetDocids()
	}

	if opts.facetFilter != "" {
		ids, ok := idx.facetDocsetForTier(opts.facetFilter)
		if !ok {
			return fmt.Errorf("unknown popularity tier %q (want low, mid, or high)", opts.facetFilter)
		}
		req.HasFacetFilter = true
		req.FacetFilter = ids
	}

	result, err := rankcore.Search(ctx, slog.Default(), idx, idx, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "query: %q -- %d hits (exhaustive=%v)\n", query, result.NbHits, result.ExhaustiveNbHits)
	for rank, doc := range result.Documents {
		title := idx.docs[uint64(doc.DocumentId)].Title
		fmt.Fprintf(out, "%d. [doc %d] %s\n", rank+1, doc.DocumentId, title)
	}
	for _, fc := range result.Facets {
		fmt.Fprintf(out, "facet popularity=%s: %d\n", fc.Value, fc.Count)
	}
	return nil
}
