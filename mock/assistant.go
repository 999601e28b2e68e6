package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.Assistant = (*Assistant)(nil)

// Assistant is a mock implementation of pageask.Assistant.
type Assistant struct {
	AnswerFn func(ctx context.Context, message string, page *pageask.PageContext, element *pageask.SelectedElement) (string, error)
}

func (a *Assistant) Answer(ctx context.Context, message string, page *pageask.PageContext, element *pageask.SelectedElement) (string, error) {
	return a.AnswerFn(ctx, message, page, element)
}
