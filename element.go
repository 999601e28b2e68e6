package pageask

import (
	"regexp"
	"sort"
	"strings"
)

// Descriptor weights for element keyword derivation. Human-authored
// semantic text outranks visible text, which outranks technical
// identifiers.
const (
	WeightSemantic  = 3
	WeightVisible   = 2
	WeightTechnical = 1
)

// WeightedKeyword is a descriptor candidate derived from a selected
// element, weighted by how likely it is to name the thing the user is
// asking about.
type WeightedKeyword struct {
	Text   string
	Weight int
}

// autoGeneratedID matches ids and field names that carry no semantic
// signal: purely numeric, uuid-prefixed, or field-index-shaped.
var autoGeneratedID = regexp.MustCompile(`^(?:\d+|uuid-.*|field-?\d+)$`)

// ElementKeywords derives weighted descriptor candidates from a selected
// element. Candidates are sorted descending by weight; ties keep encounter
// order. Empty and <= 2-character candidates are dropped.
func ElementKeywords(element *SelectedElement) []WeightedKeyword {
	if element == nil {
		return nil
	}

	var candidates []WeightedKeyword
	add := func(text string, weight int) {
		text = strings.TrimSpace(text)
		if len(text) <= 2 {
			return
		}
		candidates = append(candidates, WeightedKeyword{Text: text, Weight: weight})
	}

	add(element.AriaLabel, WeightSemantic)
	add(element.AriaDescription, WeightSemantic)
	add(element.Label, WeightSemantic)
	add(element.Placeholder, WeightSemantic)
	add(element.HelpText, WeightSemantic)
	add(element.Heading, WeightSemantic)

	add(element.Text, WeightVisible)
	if name := element.Attributes.Name; !autoGeneratedID.MatchString(strings.ToLower(name)) {
		add(name, WeightVisible)
	}
	add(element.Attributes.Title, WeightVisible)
	for _, class := range element.ParentClasses {
		add(class, WeightVisible)
	}

	if id := element.ID; !autoGeneratedID.MatchString(strings.ToLower(id)) {
		add(id, WeightTechnical)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight > candidates[j].Weight
	})
	return candidates
}

// DescriptorQuery joins the text of descriptors with weight >= minWeight
// into a search query, keeping at most limit descriptors. A limit of 0
// means no cap.
func DescriptorQuery(descriptors []WeightedKeyword, minWeight, limit int) string {
	var parts []string
	for _, d := range descriptors {
		if d.Weight < minWeight {
			continue
		}
		parts = append(parts, d.Text)
		if limit > 0 && len(parts) >= limit {
			break
		}
	}
	return strings.Join(parts, " ")
}
