package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of pageask.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
