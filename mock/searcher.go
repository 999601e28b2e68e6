package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of pageask.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, element *pageask.SelectedElement, page *pageask.PageContext) (*pageask.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, element *pageask.SelectedElement, page *pageask.PageContext) (*pageask.SearchResult, error) {
	return s.SearchFn(ctx, query, element, page)
}
