package pageask

import "strings"

// Heading is a heading found in the page's main content area.
type Heading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Widget describes a detected UI widget (table, card, ...) on the page.
type Widget struct {
	Type    string   `json:"type"`
	Title   string   `json:"title,omitempty"`
	Value   string   `json:"value,omitempty"`
	Columns []string `json:"columns,omitempty"`
}

// PageContext is a snapshot of the current page's structural signals,
// produced by the UI collaborator. The core only reads it; it is never
// constructed or mutated here.
type PageContext struct {
	URL   string `json:"url"`
	Title string `json:"title"`

	NavigationPath []string `json:"navigationPath"`
	ActiveNavItem  string   `json:"activeNavItem"`
	ActiveSection  string   `json:"activeSection"`

	ActiveTabs    []string `json:"activeTabs"`
	AvailableTabs []string `json:"availableTabs"`

	Headings []Heading `json:"headings"`
	Sections []string  `json:"sections"`

	FormFields []string `json:"formFields"`
	PageType   string   `json:"pageType"`
	Widgets    []Widget `json:"widgets"`

	ContentText string `json:"contentText"`
	CurrentStep string `json:"currentStep"`
}

// FirstHeading returns the text of the primary heading, or "".
func (c *PageContext) FirstHeading() string {
	if len(c.Headings) == 0 {
		return ""
	}
	return c.Headings[0].Text
}

// Text serializes the context's textual signals into a single string for
// keyword-level analysis.
func (c *PageContext) Text() string {
	parts := []string{c.Title, c.ActiveNavItem, c.ActiveSection, c.CurrentStep}
	parts = append(parts, c.NavigationPath...)
	parts = append(parts, c.ActiveTabs...)
	parts = append(parts, c.AvailableTabs...)
	for _, h := range c.Headings {
		parts = append(parts, h.Text)
	}
	parts = append(parts, c.Sections...)
	parts = append(parts, c.FormFields...)
	parts = append(parts, c.ContentText)
	return strings.Join(parts, " ")
}

// ElementAttributes are the semantic HTML attributes of a selected element.
type ElementAttributes struct {
	Type  string `json:"type,omitempty"`
	Name  string `json:"name,omitempty"`
	Href  string `json:"href,omitempty"`
	Title string `json:"title,omitempty"`
}

// SelectedElement describes a DOM node the user pointed at. Optional in
// every operation that accepts it; nil means "no element-level signal".
// Like PageContext it is produced by the UI collaborator and read-only.
type SelectedElement struct {
	Tag     string   `json:"tag"`
	ID      string   `json:"id,omitempty"`
	Classes []string `json:"classes,omitempty"`
	Role    string   `json:"role,omitempty"`

	Text        string `json:"text,omitempty"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`

	AriaLabel       string `json:"ariaLabel,omitempty"`
	AriaDescription string `json:"ariaDescription,omitempty"`
	HelpText        string `json:"helpText,omitempty"`
	Heading         string `json:"heading,omitempty"`

	ParentTag       string   `json:"parentTag,omitempty"`
	ParentClasses   []string `json:"parentClasses,omitempty"`
	ParentText      string   `json:"parentText,omitempty"`
	PrevSiblingText string   `json:"prevSiblingText,omitempty"`
	NextSiblingText string   `json:"nextSiblingText,omitempty"`

	Attributes ElementAttributes `json:"attributes,omitempty"`

	HTMLSnippet string `json:"htmlSnippet,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}
