package pageask

import "strings"

// GenericConfidence is the context-confidence value at or below which the
// user's situation is treated as generic rather than system-specific.
const GenericConfidence = 2

// minGenericSystemMentions is the number of distinct system names in a
// page context that marks it as a generic multi-integration page.
const minGenericSystemMentions = 3

// EstimateConfidence decides whether the user's situation is about a
// specific named system or a generic multi-system context. The result is a
// purely additive score with no persisted state: values <= GenericConfidence
// mean "generic", higher values mean "system-specific".
//
// Both element and page may be nil; absent signals simply contribute
// nothing.
func EstimateConfidence(queryKeywords []string, element *SelectedElement, page *PageContext) int {
	score := 0

	for _, qk := range queryKeywords {
		if containsAnyExact(qk, systemNames) {
			score += 3
			break
		}
	}

	if element != nil {
		own := strings.ToLower(element.Text + " " + element.Label + " " + element.Placeholder)
		if containsSystemName(own) {
			score += 3
		}

		nearby := strings.ToLower(strings.Join([]string{
			element.Heading,
			element.ParentText,
			element.NextSiblingText,
			element.PrevSiblingText,
		}, " "))
		if containsSystemName(nearby) {
			score += 2
		}
	}

	if page != nil {
		if countDistinctSystemNames(strings.ToLower(page.Text())) >= minGenericSystemMentions {
			score -= 2
		}
	}

	return score
}
