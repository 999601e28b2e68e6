package pageask

import "strings"

// minSpecificKeywords is the number of meaningful query keywords at which
// the user's own words outrank page-derived signals.
const minSpecificKeywords = 2

// BuildSearchQuery builds the page-level search query for a user message.
//
// When the message carries enough meaningful keywords the query is built
// from them directly, which handles off-page questions like "What is
// ticket routing?". Generic questions ("What is this page?") fall back to
// the page's own signals. With no page context the raw message is used.
func BuildSearchQuery(message string, page *PageContext) string {
	keywords := ExtractKeywords(message)
	if len(keywords) >= minSpecificKeywords {
		return strings.Join(keywords, " ")
	}

	if page != nil {
		query := strings.TrimSpace(strings.Join([]string{
			page.FirstHeading(),
			page.Title,
			page.ActiveNavItem,
			page.CurrentStep,
		}, " "))
		if query != "" {
			return query
		}
	}

	return message
}
