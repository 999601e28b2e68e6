// Package goquery provides HTML content extraction for fetched
// documentation pages using the goquery DOM library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageask"
)

// MaxContentLength caps extracted page text. Keeps the generator prompt
// small while preserving enough of the page to answer from.
const MaxContentLength = 1500

// Ensure Extractor implements pageask.ContentExtractor at compile time.
var _ pageask.ContentExtractor = (*Extractor)(nil)

// Extractor strips markup from raw HTML and extracts the page title.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract removes script and style content, strips all markup, collapses
// whitespace, and truncates the text to MaxContentLength characters. The
// title is the text of the first <title> element, or "" if absent.
func (e *Extractor) Extract(html string) (*pageask.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pageask.Errorf(pageask.EINVALID, "parsing HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")
	if runes := []rune(text); len(runes) > MaxContentLength {
		text = string(runes[:MaxContentLength])
	}

	return &pageask.PageContent{Title: title, Text: text}, nil
}
