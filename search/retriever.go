package search

import (
	"context"

	"github.com/fwojciec/pageask"
)

// Ensure TieredRetriever implements pageask.Retriever at compile time.
var _ pageask.Retriever = (*TieredRetriever)(nil)

// tier2KeywordCap bounds how many medium-weight descriptors feed the
// second element-tier query.
const tier2KeywordCap = 5

// TieredRetriever orchestrates the fallback search sequence: an
// element-specific query from the highest-weight descriptors, a broader
// element query from medium-weight descriptors, then the page-derived
// query. The first tier whose top score clears the citation threshold
// wins; later tiers are never attempted.
type TieredRetriever struct {
	Searcher pageask.Searcher
}

// Retrieve implements pageask.Retriever.
func (r *TieredRetriever) Retrieve(ctx context.Context, userQuery, pageQuery string, element *pageask.SelectedElement, page *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
	if element != nil {
		descriptors := pageask.ElementKeywords(element)

		if query := pageask.DescriptorQuery(descriptors, pageask.WeightSemantic, 0); query != "" {
			result, err := r.Searcher.Search(ctx, query, element, page)
			if err != nil {
				return nil, err
			}
			if result.MaxScore >= pageask.CitationThreshold {
				return outcome(result, pageask.TierElement1), nil
			}
		}

		if query := pageask.DescriptorQuery(descriptors, pageask.WeightVisible, tier2KeywordCap); query != "" {
			result, err := r.Searcher.Search(ctx, query, element, page)
			if err != nil {
				return nil, err
			}
			if result.MaxScore >= pageask.CitationThreshold {
				return outcome(result, pageask.TierElement2), nil
			}
		}
	}

	result, err := r.Searcher.Search(ctx, pageQuery, element, page)
	if err != nil {
		return nil, err
	}
	if result.MaxScore >= pageask.CitationThreshold {
		return outcome(result, pageask.TierPage), nil
	}
	return outcome(result, pageask.TierNone), nil
}

func outcome(result *pageask.SearchResult, tier pageask.Tier) *pageask.RetrievalOutcome {
	return &pageask.RetrievalOutcome{
		Found:    result.Found,
		Results:  result.Results,
		MaxScore: result.MaxScore,
		Tier:     tier,
	}
}
