// Package bloom provides URL deduplication for sitemap-driven index
// builds using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate keeps the odds of wrongly skipping a
// documentation URL negligible at sitemap scale.
const DefaultFalsePositiveRate = 0.0001

// Filter wraps a Bloom filter for URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd tests the URL and adds it in one pass. Returns true if the
// URL might already have been present.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
