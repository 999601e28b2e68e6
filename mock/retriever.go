package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of pageask.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, userQuery, pageQuery string, element *pageask.SelectedElement, page *pageask.PageContext) (*pageask.RetrievalOutcome, error)
}

func (r *Retriever) Retrieve(ctx context.Context, userQuery, pageQuery string, element *pageask.SelectedElement, page *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
	return r.RetrieveFn(ctx, userQuery, pageQuery, element, page)
}
