package pageask

import "context"

// Retrieval thresholds. A document must score at least CitationThreshold
// to be shown to the user as a cited source; scores in the
// [RelatedThreshold, CitationThreshold) band are related but not
// authoritative.
const (
	CitationThreshold = 15
	RelatedThreshold  = 5

	// MaxResults caps how many cited sources a single query can return.
	MaxResults = 3
)

// Tier identifies which stage of the retrieval fallback sequence produced
// an outcome.
type Tier string

// Retrieval tiers, in attempt order.
const (
	TierElement1 Tier = "element-tier1"
	TierElement2 Tier = "element-tier2"
	TierPage     Tier = "page-level"
	TierNone     Tier = "no-docs"
)

// Result is a shortlisted documentation page with fetched content.
type Result struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SearchResult is the outcome of a single search attempt. MaxScore is the
// top score across all scored index entries, even when no entry cleared
// the citation threshold.
type SearchResult struct {
	Found    bool     `json:"found"`
	Results  []Result `json:"results"`
	MaxScore int      `json:"maxScore"`
}

// RetrievalOutcome is a SearchResult annotated with the tier that produced
// it. Produced once per user query, immutable, and consumed exactly once
// by the prompt builder.
type RetrievalOutcome struct {
	Found    bool     `json:"found"`
	Results  []Result `json:"results"`
	MaxScore int      `json:"maxScore"`
	Tier     Tier     `json:"tier"`
}

// Searcher runs a single relevance-scored search over the documentation
// index.
type Searcher interface {
	// Search ensures index freshness, scores every index entry against
	// the query, and fetches content for entries clearing the citation
	// threshold. Degraded conditions (unreachable sitemap, missing
	// index, empty keyword set) yield a not-found result, not an error;
	// only context cancellation is returned as an error.
	Search(ctx context.Context, query string, element *SelectedElement, page *PageContext) (*SearchResult, error)
}

// Retriever orchestrates the tiered fallback search strategy.
type Retriever interface {
	// Retrieve attempts element-tier1, element-tier2, and page-level
	// searches in order, short-circuiting on the first tier whose
	// MaxScore clears the citation threshold.
	Retrieve(ctx context.Context, userQuery, pageQuery string, element *SelectedElement, page *PageContext) (*RetrievalOutcome, error)
}

// PageFetcher retrieves raw HTML from documentation URLs.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// PageContent is the extracted text content of a fetched page.
type PageContent struct {
	Title string
	Text  string
}

// ContentExtractor strips markup from fetched HTML and extracts the page
// title.
type ContentExtractor interface {
	Extract(html string) (*PageContent, error)
}

// Generator produces an answer from a system instruction payload and a
// user message. Implementations wrap an external LLM provider.
type Generator interface {
	// Generate returns generated text, or fails with ECONFIG (missing
	// credential), ETIMEOUT (call exceeded its deadline), or EINTERNAL
	// (malformed provider response).
	Generate(ctx context.Context, system, message string) (string, error)
}

// Assistant is the single entry point exposed to the UI collaborator.
type Assistant interface {
	// Answer performs keyword extraction, confidence estimation, tiered
	// retrieval, grounding-policy construction, and the generator call.
	// Degraded retrieval never fails the request; generator and
	// configuration failures do.
	Answer(ctx context.Context, message string, page *PageContext, element *SelectedElement) (string, error)
}
