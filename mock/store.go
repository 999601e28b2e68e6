package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of pageask.IndexStore.
type IndexStore struct {
	SaveIndexFn func(ctx context.Context, index *pageask.SearchIndex) error
	LoadIndexFn func(ctx context.Context) (*pageask.SearchIndex, error)
}

func (s *IndexStore) SaveIndex(ctx context.Context, index *pageask.SearchIndex) error {
	return s.SaveIndexFn(ctx, index)
}

func (s *IndexStore) LoadIndex(ctx context.Context) (*pageask.SearchIndex, error) {
	return s.LoadIndexFn(ctx)
}
