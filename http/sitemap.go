// Package http provides HTTP-based implementations of pageask's sitemap
// and page-fetching interfaces for the hosted documentation site.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pageask"
)

// Ensure SitemapSource implements pageask.SitemapSource.
var _ pageask.SitemapSource = (*SitemapSource)(nil)

// SitemapSource lists documentation page URLs from a remote sitemap.xml.
type SitemapSource struct {
	client     *http.Client
	sitemapURL string
}

// NewSitemapSource creates a SitemapSource for the given sitemap URL.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client, sitemapURL string) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client, sitemapURL: sitemapURL}
}

// FetchURLs returns all page URLs listed in the sitemap, in document order.
// Sitemap indexes are resolved recursively. Fetch failures, non-2xx
// statuses, unparseable XML, and sitemaps with no <loc> entries all map to
// EUNAVAILABLE so callers can degrade to context-only mode.
func (s *SitemapSource) FetchURLs(ctx context.Context) ([]string, error) {
	urls, err := s.processSitemap(ctx, s.sitemapURL, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, pageask.Errorf(pageask.EUNAVAILABLE, "no URLs found in sitemap %s", s.sitemapURL)
	}
	return urls, nil
}

// processSitemap fetches and parses one sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapSource) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, pageask.Errorf(pageask.EUNAVAILABLE, "parsing sitemap XML from %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, pageask.Errorf(pageask.EUNAVAILABLE, "empty sitemap XML from %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, child := range locValues(root, "sitemap") {
			urls, err := s.processSitemap(ctx, child, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	return locValues(root, "url"), nil
}

// locValues extracts trimmed <loc> contents from the root's child elements
// with the given tag.
func locValues(root *etree.Element, tag string) []string {
	var values []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (s *SitemapSource) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, pageask.Errorf(pageask.EUNAVAILABLE, "fetching sitemap %s: %v", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, pageask.Errorf(pageask.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
