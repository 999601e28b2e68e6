package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of pageask.SitemapSource.
type SitemapSource struct {
	FetchURLsFn func(ctx context.Context) ([]string, error)
}

func (s *SitemapSource) FetchURLs(ctx context.Context) ([]string, error) {
	return s.FetchURLsFn(ctx)
}
