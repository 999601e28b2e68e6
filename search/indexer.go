// Package search implements the documentation index lifecycle and the
// relevance-scored, tiered retrieval pipeline.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageask"
	"github.com/fwojciec/pageask/bloom"
)

// DefaultMaxAge is the staleness threshold for the persisted index.
// There is no partial refresh: a stale index is rebuilt wholesale.
const DefaultMaxAge = 24 * time.Hour

// Indexer builds and refreshes the lexical search index from the remote
// sitemap.
type Indexer struct {
	Sitemap pageask.SitemapSource
	Store   pageask.IndexStore

	// MaxAge overrides DefaultMaxAge when non-zero.
	MaxAge time.Duration

	// Now overrides time.Now for tests.
	Now func() time.Time

	Logger *slog.Logger
}

func (ix *Indexer) now() time.Time {
	if ix.Now != nil {
		return ix.Now()
	}
	return time.Now()
}

func (ix *Indexer) maxAge() time.Duration {
	if ix.MaxAge > 0 {
		return ix.MaxAge
	}
	return DefaultMaxAge
}

func (ix *Indexer) logger() *slog.Logger {
	if ix.Logger != nil {
		return ix.Logger
	}
	return slog.Default()
}

// Build fetches the sitemap, derives a keyword set per URL, and persists
// the result with the current time as a single atomic write, replacing
// any prior index. Duplicate URLs across sitemap files are dropped.
//
// Build returns EUNAVAILABLE when the sitemap cannot be fetched or parsed;
// the caller decides whether to proceed in context-only mode.
func (ix *Indexer) Build(ctx context.Context) (*pageask.SearchIndex, error) {
	urls, err := ix.Sitemap.FetchURLs(ctx)
	if err != nil {
		return nil, err
	}

	seen := bloom.NewFilter(uint(len(urls)), bloom.DefaultFalsePositiveRate)
	entries := make([]pageask.IndexEntry, 0, len(urls))
	for _, url := range urls {
		if seen.TestAndAdd(url) {
			continue
		}
		entries = append(entries, pageask.IndexEntry{
			URL:      url,
			Keywords: pageask.ExtractKeywords(url),
		})
	}

	index := &pageask.SearchIndex{Entries: entries, LastUpdated: ix.now()}
	if err := ix.Store.SaveIndex(ctx, index); err != nil {
		return nil, err
	}

	ix.logger().Info("search index built", "entries", len(entries))
	return index, nil
}

// EnsureFresh returns a usable index, rebuilding when the persisted one is
// absent or older than the staleness threshold. The freshness check and
// rebuild are sequenced: a rebuild fully completes before the index is
// read.
//
// When a rebuild fails but a stale index exists, the stale index is
// returned; stale documentation beats none. With no index at all the
// build error is returned for the caller to absorb.
func (ix *Indexer) EnsureFresh(ctx context.Context) (*pageask.SearchIndex, error) {
	index, err := ix.Store.LoadIndex(ctx)
	if err != nil && pageask.ErrorCode(err) != pageask.ENOTFOUND {
		return nil, err
	}

	if index != nil && ix.now().Sub(index.LastUpdated) <= ix.maxAge() {
		return index, nil
	}

	built, err := ix.Build(ctx)
	if err != nil {
		if index != nil {
			ix.logger().Warn("index rebuild failed, using stale index",
				"age", ix.now().Sub(index.LastUpdated),
				"err", err,
			)
			return index, nil
		}
		return nil, err
	}
	return built, nil
}
