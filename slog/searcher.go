package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageask"
)

// Ensure LoggingSearcher implements pageask.Searcher.
var _ pageask.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   pageask.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next pageask.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, element *pageask.SelectedElement, page *pageask.PageContext) (result *pageask.SearchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"found", result.Found,
				"max_score", result.MaxScore,
				"results", len(result.Results),
			)
		}
		s.logger.Info("documentation search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, query, element, page)
}
