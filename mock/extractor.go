package mock

import "github.com/fwojciec/pageask"

var _ pageask.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of pageask.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*pageask.PageContent, error)
}

func (e *ContentExtractor) Extract(html string) (*pageask.PageContent, error) {
	return e.ExtractFn(html)
}
