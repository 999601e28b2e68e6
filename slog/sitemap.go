// Package slog provides logging decorators for pageask services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageask"
)

// Ensure LoggingSitemapSource implements pageask.SitemapSource.
var _ pageask.SitemapSource = (*LoggingSitemapSource)(nil)

// LoggingSitemapSource wraps a SitemapSource with logging.
type LoggingSitemapSource struct {
	next   pageask.SitemapSource
	logger *slog.Logger
}

// NewLoggingSitemapSource creates a new LoggingSitemapSource.
func NewLoggingSitemapSource(next pageask.SitemapSource, logger *slog.Logger) *LoggingSitemapSource {
	return &LoggingSitemapSource{next: next, logger: logger}
}

// FetchURLs delegates to the wrapped source and logs the operation.
func (s *LoggingSitemapSource) FetchURLs(ctx context.Context) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap fetch",
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchURLs(ctx)
}
