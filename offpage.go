package pageask

// minOnPageOverlap is the keyword overlap between page and retrieved docs
// below which the query is considered off-page.
const minOnPageOverlap = 2

// IsOffPageQuery reports whether the retrieved documentation is about a
// different topic than the page the user is on. A low keyword overlap
// between the page's identifying signals and the retrieved documents means
// the user asked about another feature, and the answer should acknowledge
// the difference instead of force-fitting the docs to the current page.
//
// Only meaningful when documentation was actually found; otherwise false.
func IsOffPageQuery(page *PageContext, outcome *RetrievalOutcome) bool {
	if page == nil || outcome == nil || !outcome.Found || len(outcome.Results) == 0 {
		return false
	}

	pageKeywords := ExtractKeywords(page.FirstHeading() + " " + page.Title + " " + page.ActiveNavItem)

	docSet := make(map[string]bool)
	for _, result := range outcome.Results {
		for _, kw := range ExtractKeywords(result.Title + " " + result.URL) {
			docSet[kw] = true
		}
	}

	overlap := 0
	for _, pk := range uniqueKeywords(pageKeywords) {
		if docSet[pk] {
			overlap++
		}
	}
	return overlap < minOnPageOverlap
}
