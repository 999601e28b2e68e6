package pageask_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pageask"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_LowercasesAndSplits(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("Ticket-Routing/Setup rules")

	assert.Equal(t, []string{"ticket", "routing", "setup", "rules"}, keywords)
}

func TestExtractKeywords_DropsShortTokens(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("go to my app")

	assert.Equal(t, []string{"app"}, keywords)
}

func TestExtractKeywords_DropsStopWords(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("how are the tickets routed from the queue")

	assert.Equal(t, []string{"tickets", "routed", "queue"}, keywords)
}

func TestExtractKeywords_DropsGenericQuestionWords(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("what does this page mean about routing")

	assert.Equal(t, []string{"routing"}, keywords)
}

func TestExtractKeywords_TrimsPunctuation(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("What is ticket routing?")

	assert.Equal(t, []string{"ticket", "routing"}, keywords)
}

func TestExtractKeywords_URL(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("https://help.example.com/docs/ticket-routing-setup")

	// The scheme token is dropped as a stop word; the host survives as a
	// single token because dots are not separators.
	assert.Equal(t, []string{"help.example.com", "docs", "ticket", "routing", "setup"}, keywords)
}

func TestExtractKeywords_PreservesDuplicates(t *testing.T) {
	t.Parallel()

	keywords := pageask.ExtractKeywords("routing routing rules")

	assert.Equal(t, []string{"routing", "routing", "rules"}, keywords)
}

func TestExtractKeywords_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pageask.ExtractKeywords(""))
	assert.Empty(t, pageask.ExtractKeywords("   \t\n"))
}

func TestExtractKeywords_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"What is ticket routing?",
		"https://help.example.com/docs/ticket-routing-setup",
		"How does the Salesforce integration work on this page",
		"configure sharepoint-sync_settings/advanced",
	}

	for _, input := range inputs {
		once := pageask.ExtractKeywords(input)
		twice := pageask.ExtractKeywords(strings.Join(once, " "))
		assert.Equal(t, once, twice, "input %q", input)
	}
}
