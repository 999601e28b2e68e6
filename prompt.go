package pageask

import (
	"fmt"
	"strings"
)

// GroundingPolicy constrains how the answer generator may use (or must
// refuse to use) retrieved documentation.
type GroundingPolicy string

// Grounding policies, selected from the retrieval outcome.
const (
	PolicyHighConfidence GroundingPolicy = "high-confidence"
	PolicyLowConfidence  GroundingPolicy = "low-confidence"
	PolicyNoConfidence   GroundingPolicy = "no-confidence"
)

// SelectPolicy picks exactly one grounding policy from a retrieval
// outcome. High confidence requires both a score clearing the citation
// threshold and at least one fetched result; a cleared score whose page
// fetches all failed degrades to no confidence.
func SelectPolicy(outcome *RetrievalOutcome) GroundingPolicy {
	switch {
	case outcome.MaxScore >= CitationThreshold && len(outcome.Results) > 0:
		return PolicyHighConfidence
	case outcome.MaxScore >= RelatedThreshold && outcome.MaxScore < CitationThreshold:
		return PolicyLowConfidence
	default:
		return PolicyNoConfidence
	}
}

// PromptBuilder composes the system instruction payload for the answer
// generator. Sections are built independently and concatenated only at
// the boundary to the external generator.
type PromptBuilder struct {
	Outcome *RetrievalOutcome
	Page    *PageContext
	Element *SelectedElement
}

// Policy returns the grounding policy the built prompt encodes.
func (b *PromptBuilder) Policy() GroundingPolicy {
	return SelectPolicy(b.Outcome)
}

// Sections returns the ordered, non-empty prompt sections.
func (b *PromptBuilder) Sections() []string {
	sections := []string{RoleSection()}

	if s := PageSection(b.Page); s != "" {
		sections = append(sections, s)
	}
	if s := ElementSection(b.Element); s != "" {
		sections = append(sections, s)
	}
	if IsOffPageQuery(b.Page, b.Outcome) {
		sections = append(sections, OffPageSection())
	}
	sections = append(sections, PolicySection(b.Policy(), b.Element))
	if s := SourcesSection(b.Outcome.Results); s != "" {
		sections = append(sections, s)
	}

	return sections
}

// Build concatenates the sections into the final instruction payload.
func (b *PromptBuilder) Build() string {
	return strings.Join(b.Sections(), "\n\n")
}

// RoleSection states the assistant's role and primary job.
func RoleSection() string {
	return strings.TrimSpace(`
You are an in-page setup assistant. The user is currently on a specific
page of the product's admin console, and your primary job is to help them
with THIS page and THIS step of their setup.`)
}

// PageSection renders the page context block, or "" when no context is
// available.
func PageSection(page *PageContext) string {
	if page == nil {
		return "(Page context not available - provide general setup guidance.)"
	}

	var sb strings.Builder
	sb.WriteString("CURRENT PAGE CONTEXT (this is where the user is right now):\n")

	fmt.Fprintf(&sb, "- Navigation Path: %s\n", orUnknown(strings.Join(page.NavigationPath, " > ")))
	fmt.Fprintf(&sb, "- Current Section: %s\n", orUnknown(page.ActiveNavItem))
	fmt.Fprintf(&sb, "- Page URL: %s\n", page.URL)
	fmt.Fprintf(&sb, "- Page Title: %s\n", page.Title)
	if page.PageType != "" {
		fmt.Fprintf(&sb, "- Page Type: %s\n", page.PageType)
	}
	if page.CurrentStep != "" {
		fmt.Fprintf(&sb, "- Current Step: %s\n", page.CurrentStep)
	}
	if len(page.ActiveTabs) > 0 {
		fmt.Fprintf(&sb, "- Active Tab: %s\n", strings.Join(page.ActiveTabs, ", "))
	}
	if len(page.AvailableTabs) > 0 {
		fmt.Fprintf(&sb, "- Available Tabs: %s\n", strings.Join(page.AvailableTabs, ", "))
	}
	if h := page.FirstHeading(); h != "" {
		fmt.Fprintf(&sb, "- Primary Heading: %s\n", h)
	}
	if len(page.Sections) > 0 {
		fmt.Fprintf(&sb, "- Sections: %s\n", strings.Join(page.Sections, ", "))
	}
	if len(page.FormFields) > 0 {
		fmt.Fprintf(&sb, "- Form Fields: %s\n", strings.Join(page.FormFields, ", "))
	}
	for _, w := range page.Widgets {
		switch w.Type {
		case "table":
			fmt.Fprintf(&sb, "- Table with columns: %s\n", strings.Join(w.Columns, ", "))
		case "card":
			fmt.Fprintf(&sb, "- Card: %s %s\n", w.Title, w.Value)
		default:
			fmt.Fprintf(&sb, "- Widget: %s\n", w.Type)
		}
	}
	if page.ContentText != "" {
		fmt.Fprintf(&sb, "\nCONTENT PREVIEW:\n%s\n", truncate(page.ContentText, 500))
	}

	sb.WriteString("\nInterpret the user's question in the context of this specific page, section, and tab. Reference headings, sections, form fields, or table columns that are visible to them.")
	return sb.String()
}

// ElementSection renders the selected-element block, or "" when no element
// was selected.
func ElementSection(element *SelectedElement) string {
	if element == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("SELECTED ELEMENT (Point & Ask):\n")
	sb.WriteString("The user has pointed at a specific element on the page. Their question is about this element; focus your answer on it.\n")

	fmt.Fprintf(&sb, "- Tag: <%s>\n", element.Tag)
	if element.ID != "" {
		fmt.Fprintf(&sb, "- ID: %s\n", element.ID)
	}
	if len(element.Classes) > 0 {
		fmt.Fprintf(&sb, "- Classes: %s\n", strings.Join(element.Classes, " "))
	}
	if element.Role != "" {
		fmt.Fprintf(&sb, "- Role: %s\n", element.Role)
	}
	if element.Text != "" {
		fmt.Fprintf(&sb, "- Visible Text: %q\n", truncate(element.Text, 200))
	}
	if element.Label != "" {
		fmt.Fprintf(&sb, "- Label: %s\n", element.Label)
	}
	if element.Placeholder != "" {
		fmt.Fprintf(&sb, "- Placeholder: %s\n", element.Placeholder)
	}
	if element.Attributes.Type != "" {
		fmt.Fprintf(&sb, "- Type: %s\n", element.Attributes.Type)
	}
	if element.Attributes.Name != "" {
		fmt.Fprintf(&sb, "- Field Name: %s\n", element.Attributes.Name)
	}
	if element.Attributes.Href != "" {
		fmt.Fprintf(&sb, "- Link Target: %s\n", element.Attributes.Href)
	}
	if element.ParentTag != "" {
		fmt.Fprintf(&sb, "- Parent Element: <%s>\n", element.ParentTag)
	}

	sb.WriteString("\nIf the element is a form field, explain what input is expected. If it is a button, explain what action it performs. If it is a link, explain where it leads. Reference the element explicitly in your response.")
	return sb.String()
}

// OffPageSection instructs the generator to acknowledge that the retrieved
// documentation covers a different topic than the current page.
func OffPageSection() string {
	return strings.TrimSpace(`
OFF-PAGE QUERY DETECTED:
The user's question appears to be about a DIFFERENT topic than their
current page. The documentation below is about another feature or section.
1. Acknowledge the difference first: note that the topic is a different feature from the page they are currently on.
2. Answer their question using the documentation below, citing sources normally.
3. If you can infer where the feature lives in the navigation, mention it.
Do NOT force-fit the documentation into the context of their current page.`)
}

// PolicySection renders the grounding rules for the selected policy.
// The element is consulted only by the no-confidence policy, which may
// quote on-page help text verbatim.
func PolicySection(policy GroundingPolicy, element *SelectedElement) string {
	switch policy {
	case PolicyHighConfidence:
		return strings.TrimSpace(`
DOCUMENTATION RULES (authoritative sources available):
1. Every factual sentence in your answer MUST carry an inline citation to one of the numbered sources, like [1] or [2].
2. Do not hedge. No "I think", "probably", or "it may be that" - the documentation is authoritative.
3. End your response with a "Sources:" section listing each cited URL on its own line.
4. If the documentation content does not answer the question, say explicitly "The documentation does not cover X" instead of improvising an answer.`)

	case PolicyLowConfidence:
		return strings.TrimSpace(`
DOCUMENTATION RULES (related material only):
1. The sources below are RELATED to the question but not authoritative for it. Present them as "related documentation", never as a direct answer.
2. Do not answer the question from these sources alone.
3. Direct the user to contact a human administrator for the specific question, and point to the related pages as background reading.`)

	default:
		var sb strings.Builder
		sb.WriteString("DOCUMENTATION RULES (no relevant documentation):\n")
		sb.WriteString("1. No relevant documentation was found. Do NOT answer from the page context or from general knowledge.\n")
		if element != nil && strings.TrimSpace(element.HelpText) != "" {
			fmt.Fprintf(&sb, "2. The page shows this help text near the selected element: %q. You may quote it verbatim, with an explicit disclaimer that it is on-page help text and not official documentation.\n", element.HelpText)
			sb.WriteString("3. Beyond quoting that text, defer: tell the user you cannot answer this from the available documentation and that they should contact their administrator.")
		} else {
			sb.WriteString("2. Respond with a full deferral: tell the user you cannot answer this from the available documentation and that they should contact their administrator. Do not attempt an answer.")
		}
		return sb.String()
	}
}

// SourcesSection renders the numbered documentation sources, or "" when
// there are none.
func SourcesSection(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "DOCUMENTATION SOURCES (%d):\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&sb, "\n[%d] %s\nTitle: %s\nContent: %s\n", i+1, r.URL, r.Title, r.Content)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
