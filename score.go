package pageask

import "strings"

// Relevance scoring weights. The citation threshold in retrieval depends on
// these exact values; change them together or not at all.
const (
	exactMatchScore   = 10
	partialMatchScore = 5
	docsSectionBoost  = 2
	genericDocBoost   = 5
	depthPenalty      = 2
	mismatchPenalty   = 10

	// maxDocDepth is the keyword count above which a document is
	// considered too deep/specific relative to overview pages.
	maxDocDepth = 6
)

// genericDocKeywords mark overview-style documentation pages.
var genericDocKeywords = map[string]bool{
	"overview":        true,
	"setup":           true,
	"getting-started": true,
	"introduction":    true,
	"guide":           true,
}

// Relevance scores a candidate document's keyword set against the query
// keywords. The score is an unbounded signed integer; negative results are
// possible and meaningful (they never clear the citation threshold).
//
// Each query keyword contributes at most once: an exact match (+10)
// suppresses the partial match (+5) for the same keyword, and repeated
// query keywords count as one.
//
// confidence, when non-nil, is a context-confidence estimate (see
// EstimateConfidence). A generic context (confidence <= 2) penalizes
// documents about a specific named system.
func Relevance(queryKeywords, docKeywords []string, confidence *int) int {
	score := 0

	docSet := make(map[string]bool, len(docKeywords))
	for _, dk := range docKeywords {
		docSet[dk] = true
	}

	for _, qk := range uniqueKeywords(queryKeywords) {
		if docSet[qk] {
			score += exactMatchScore
			continue
		}
		for _, dk := range docKeywords {
			if strings.Contains(dk, qk) || strings.Contains(qk, dk) {
				score += partialMatchScore
				break
			}
		}
	}

	if docSet["docs"] {
		score += docsSectionBoost
	}

	for _, dk := range docKeywords {
		if genericDocKeywords[dk] {
			score += genericDocBoost
			break
		}
	}

	if len(docKeywords) > maxDocDepth {
		score -= depthPenalty
	}

	if confidence != nil && *confidence <= GenericConfidence {
		for _, dk := range docKeywords {
			if containsAnyExact(dk, systemNames) {
				score -= mismatchPenalty
				break
			}
		}
	}

	return score
}

// containsAnyExact reports whether token equals any of the names.
func containsAnyExact(token string, names []string) bool {
	for _, name := range names {
		if token == name {
			return true
		}
	}
	return false
}
