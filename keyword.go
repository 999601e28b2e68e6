package pageask

import (
	"strings"
	"unicode"
)

// stopWords are common words dropped during keyword extraction. URL scheme
// tokens are included so that documentation URLs index cleanly.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"how": true, "com": true, "www": true, "http": true, "https": true,
}

// genericQuestionWords are question-phrasing words that carry no signal
// about what the user is actually asking about.
var genericQuestionWords = map[string]bool{
	"what": true, "page": true, "about": true, "this": true, "that": true,
	"here": true, "there": true, "where": true, "when": true, "who": true,
	"which": true, "does": true, "mean": true, "work": true, "doing": true,
	"used": true, "see": true,
}

// systemNames are third-party systems the documentation corpus covers.
// Used to distinguish system-specific questions from generic ones.
var systemNames = []string{
	"slack", "google", "sharepoint", "confluence", "jira", "servicenow",
	"zendesk", "salesforce", "microsoft", "teams", "onedrive", "drive",
	"dropbox", "box", "notion", "asana", "monday", "workday",
}

// isKeywordSeparator reports whether r separates keyword tokens.
func isKeywordSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '_' || r == '/'
}

// isTokenTrim reports whether r should be trimmed from token edges.
// Trimming turns "routing?" into "routing" and "https:" into the bare
// scheme stop word, while keeping dots inside hostnames intact.
func isTokenTrim(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ExtractKeywords normalizes free text into a filtered keyword list.
// Text is lowercased and split on whitespace, hyphens, underscores, and
// slashes; leading/trailing punctuation is trimmed from each token, and
// tokens of length <= 2, stop words, and generic question words are
// dropped. Duplicates are preserved in encounter order; scoring treats
// repeated keywords as one.
//
// ExtractKeywords is deterministic and has no side effects.
func ExtractKeywords(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), isKeywordSeparator)

	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimFunc(w, isTokenTrim)
		if len(w) <= 2 || stopWords[w] || genericQuestionWords[w] {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// uniqueKeywords returns keywords deduplicated in encounter order.
func uniqueKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	unique := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		unique = append(unique, kw)
	}
	return unique
}

// containsSystemName reports whether the lowercased text contains any
// known system name as a substring.
func containsSystemName(text string) bool {
	for _, name := range systemNames {
		if strings.Contains(text, name) {
			return true
		}
	}
	return false
}

// countDistinctSystemNames returns how many distinct system names appear
// in the lowercased text.
func countDistinctSystemNames(text string) int {
	count := 0
	for _, name := range systemNames {
		if strings.Contains(text, name) {
			count++
		}
	}
	return count
}
