package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/pageask"
)

// Ensure Searcher implements pageask.Searcher at compile time.
var _ pageask.Searcher = (*Searcher)(nil)

// Searcher runs a single relevance-scored search over the documentation
// index: ensure freshness, score every entry, shortlist entries clearing
// the citation threshold, and fetch their content.
type Searcher struct {
	Indexer   *Indexer
	Fetcher   pageask.PageFetcher
	Extractor pageask.ContentExtractor
	Logger    *slog.Logger
}

func (s *Searcher) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Search implements pageask.Searcher. Degraded conditions yield a
// not-found result rather than an error; only context cancellation
// propagates. MaxScore always reports the top score across all scored
// entries, even when nothing cleared the citation threshold.
func (s *Searcher) Search(ctx context.Context, query string, element *pageask.SelectedElement, page *pageask.PageContext) (*pageask.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index, err := s.Indexer.EnsureFresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger().Warn("search index unavailable, continuing in context-only mode", "err", err)
		return &pageask.SearchResult{Results: []pageask.Result{}}, nil
	}

	queryKeywords := pageask.ExtractKeywords(query)
	if len(queryKeywords) == 0 {
		return &pageask.SearchResult{Results: []pageask.Result{}}, nil
	}

	confidence := pageask.EstimateConfidence(queryKeywords, element, page)

	scored := make([]pageask.ScoredEntry, 0, len(index.Entries))
	for _, entry := range index.Entries {
		scored = append(scored, pageask.ScoredEntry{
			IndexEntry: entry,
			Score:      pageask.Relevance(queryKeywords, entry.Keywords, &confidence),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	maxScore := 0
	if len(scored) > 0 {
		maxScore = scored[0].Score
	}

	var shortlist []pageask.ScoredEntry
	for _, entry := range scored {
		if entry.Score < pageask.CitationThreshold {
			break
		}
		shortlist = append(shortlist, entry)
		if len(shortlist) == pageask.MaxResults {
			break
		}
	}

	results := s.fetchResults(ctx, shortlist)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	s.logger().Debug("search complete",
		"query", query,
		"confidence", confidence,
		"max_score", maxScore,
		"results", len(results),
	)

	return &pageask.SearchResult{
		Found:    len(results) > 0,
		Results:  results,
		MaxScore: maxScore,
	}, nil
}

// fetchResults fetches and extracts each shortlisted page. Fetches are
// independent: one failure omits that result without aborting the batch,
// and output order follows the sorted score order. Pages with identical
// content are deduplicated.
func (s *Searcher) fetchResults(ctx context.Context, shortlist []pageask.ScoredEntry) []pageask.Result {
	fetched := make([]*pageask.Result, len(shortlist))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pageask.MaxResults)
	for i, entry := range shortlist {
		g.Go(func() error {
			html, err := s.Fetcher.Fetch(gctx, entry.URL)
			if err != nil {
				s.logger().Warn("failed to fetch result page", "url", entry.URL, "err", err)
				return nil
			}
			content, err := s.Extractor.Extract(html)
			if err != nil {
				s.logger().Warn("failed to extract result page", "url", entry.URL, "err", err)
				return nil
			}
			fetched[i] = &pageask.Result{
				URL:     entry.URL,
				Title:   content.Title,
				Content: content.Text,
			}
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[uint64]bool, len(shortlist))
	results := make([]pageask.Result, 0, len(shortlist))
	for _, r := range fetched {
		if r == nil {
			continue
		}
		if r.Content != "" {
			h := xxhash.Sum64String(r.Content)
			if seen[h] {
				continue
			}
			seen[h] = true
		}
		results = append(results, *r)
	}
	return results
}
