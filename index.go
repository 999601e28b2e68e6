package pageask

import (
	"context"
	"time"
)

// IndexEntry pairs a documentation page URL with the keyword set derived
// from it. Entries are immutable once built.
type IndexEntry struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// SearchIndex is the full lexical index built from the documentation
// site's sitemap. It is always replaced wholesale on rebuild, never
// patched incrementally.
type SearchIndex struct {
	Entries     []IndexEntry `json:"entries"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// ScoredEntry is an index entry scored against a query. Transient;
// recomputed per query and never persisted.
type ScoredEntry struct {
	IndexEntry
	Score int
}

// SitemapSource lists documentation page URLs from a remote sitemap.
type SitemapSource interface {
	// FetchURLs returns all page URLs listed in the sitemap, in document
	// order. Returns EUNAVAILABLE when the sitemap cannot be fetched or
	// contains no URL entries.
	FetchURLs(ctx context.Context) ([]string, error)
}

// IndexStore persists the search index in keyed storage. The index and its
// freshness timestamp are read and written as a single atomic unit.
type IndexStore interface {
	// SaveIndex replaces any previously stored index.
	SaveIndex(ctx context.Context, index *SearchIndex) error

	// LoadIndex returns the stored index.
	// Returns ENOTFOUND if no index has been saved.
	LoadIndex(ctx context.Context) (*SearchIndex, error)
}
