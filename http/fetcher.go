package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pageask"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// DefaultFetchRate limits documentation page fetches to be polite to the
// docs host.
const DefaultFetchRate = rate.Limit(5)

// Ensure Fetcher implements pageask.PageFetcher at compile time.
var _ pageask.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML from documentation URLs over plain HTTP.
// The documentation site is server-rendered; no JavaScript execution is
// needed.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit sets the maximum fetch rate in requests per second.
func WithRateLimit(r rate.Limit) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(r, 1)
	}
}

// NewFetcher creates a new HTTP page fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		limiter: rate.NewLimiter(DefaultFetchRate, 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch retrieves the HTML content from the given URL. Non-2xx responses
// and transport failures map to EUNAVAILABLE; a failed fetch for one
// result page never aborts the others.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", pageask.Errorf(pageask.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pageask.Errorf(pageask.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pageask.Errorf(pageask.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}
