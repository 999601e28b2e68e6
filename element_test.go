package pageask_test

import (
	"testing"

	"github.com/fwojciec/pageask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementKeywords_NilElement(t *testing.T) {
	t.Parallel()

	assert.Nil(t, pageask.ElementKeywords(nil))
}

func TestElementKeywords_WeightsAndOrder(t *testing.T) {
	t.Parallel()

	element := &pageask.SelectedElement{
		Tag:           "input",
		ID:            "routing-rule-name",
		Text:          "Routing Rules",
		Label:         "Rule name",
		Placeholder:   "Enter a rule name",
		ParentClasses: []string{"form-group"},
	}

	keywords := pageask.ElementKeywords(element)

	require.Len(t, keywords, 5)
	assert.Equal(t, pageask.WeightedKeyword{Text: "Rule name", Weight: 3}, keywords[0])
	assert.Equal(t, pageask.WeightedKeyword{Text: "Enter a rule name", Weight: 3}, keywords[1])
	assert.Equal(t, pageask.WeightedKeyword{Text: "Routing Rules", Weight: 2}, keywords[2])
	assert.Equal(t, pageask.WeightedKeyword{Text: "form-group", Weight: 2}, keywords[3])
	assert.Equal(t, pageask.WeightedKeyword{Text: "routing-rule-name", Weight: 1}, keywords[4])
}

func TestElementKeywords_SkipsAutoGeneratedIDs(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"12345", "uuid-a1b2c3", "field-7", "field7"} {
		element := &pageask.SelectedElement{Tag: "input", ID: id}
		assert.Empty(t, pageask.ElementKeywords(element), "id %q", id)
	}
}

func TestElementKeywords_SkipsFieldIndexShapedNames(t *testing.T) {
	t.Parallel()

	element := &pageask.SelectedElement{
		Tag:        "input",
		Attributes: pageask.ElementAttributes{Name: "field-3"},
	}

	assert.Empty(t, pageask.ElementKeywords(element))
}

func TestElementKeywords_KeepsSemanticNames(t *testing.T) {
	t.Parallel()

	element := &pageask.SelectedElement{
		Tag:        "input",
		Attributes: pageask.ElementAttributes{Name: "webhook_url"},
	}

	keywords := pageask.ElementKeywords(element)

	require.Len(t, keywords, 1)
	assert.Equal(t, pageask.WeightedKeyword{Text: "webhook_url", Weight: 2}, keywords[0])
}

func TestElementKeywords_FiltersShortCandidates(t *testing.T) {
	t.Parallel()

	element := &pageask.SelectedElement{
		Tag:   "button",
		Text:  "OK",
		Label: "  ",
	}

	assert.Empty(t, pageask.ElementKeywords(element))
}

func TestDescriptorQuery_MinWeight(t *testing.T) {
	t.Parallel()

	descriptors := []pageask.WeightedKeyword{
		{Text: "Rule name", Weight: 3},
		{Text: "Routing Rules", Weight: 2},
		{Text: "rule-id", Weight: 1},
	}

	assert.Equal(t, "Rule name", pageask.DescriptorQuery(descriptors, 3, 0))
	assert.Equal(t, "Rule name Routing Rules", pageask.DescriptorQuery(descriptors, 2, 0))
}

func TestDescriptorQuery_Limit(t *testing.T) {
	t.Parallel()

	descriptors := []pageask.WeightedKeyword{
		{Text: "one1", Weight: 2},
		{Text: "two2", Weight: 2},
		{Text: "three3", Weight: 2},
	}

	assert.Equal(t, "one1 two2", pageask.DescriptorQuery(descriptors, 2, 2))
}
