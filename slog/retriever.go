package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageask"
)

// Ensure LoggingRetriever implements pageask.Retriever.
var _ pageask.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with logging.
type LoggingRetriever struct {
	next   pageask.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next pageask.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever and logs which tier won.
func (r *LoggingRetriever) Retrieve(ctx context.Context, userQuery, pageQuery string, element *pageask.SelectedElement, page *pageask.PageContext) (outcome *pageask.RetrievalOutcome, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"duration", time.Since(begin),
			"err", err,
		}
		if outcome != nil {
			attrs = append(attrs,
				"tier", outcome.Tier,
				"max_score", outcome.MaxScore,
				"results", len(outcome.Results),
			)
		}
		r.logger.Info("tiered retrieval", attrs...)
	}(time.Now())
	return r.next.Retrieve(ctx, userQuery, pageQuery, element, page)
}
