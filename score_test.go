package pageask_test

import (
	"testing"

	"github.com/fwojciec/pageask"
	"github.com/stretchr/testify/assert"
)

func TestRelevance_ExactMatches(t *testing.T) {
	t.Parallel()

	score := pageask.Relevance(
		[]string{"ticket", "routing"},
		[]string{"ticket", "routing", "rules"},
		nil,
	)

	assert.Equal(t, 20, score)
}

func TestRelevance_PartialMatch(t *testing.T) {
	t.Parallel()

	// "route" is a substring of "routing"; no exact match.
	score := pageask.Relevance([]string{"route"}, []string{"routing"}, nil)

	assert.Equal(t, 5, score)
}

func TestRelevance_ExactSuppressesPartial(t *testing.T) {
	t.Parallel()

	// "sync" exact-matches the first doc keyword; the substring match
	// against "syncing" must not add another 5 for the same keyword.
	score := pageask.Relevance([]string{"sync"}, []string{"sync", "syncing"}, nil)

	assert.Equal(t, 10, score)
}

func TestRelevance_RepeatedQueryKeywordCountsOnce(t *testing.T) {
	t.Parallel()

	score := pageask.Relevance([]string{"sync", "sync"}, []string{"sync"}, nil)

	assert.Equal(t, 10, score)
}

func TestRelevance_PartialCountsOncePerQueryKeyword(t *testing.T) {
	t.Parallel()

	// "rout" is a substring of both doc keywords but contributes once.
	score := pageask.Relevance([]string{"rout"}, []string{"routing", "routes"}, nil)

	assert.Equal(t, 5, score)
}

func TestRelevance_DocsSectionBoost(t *testing.T) {
	t.Parallel()

	score := pageask.Relevance([]string{"ticket"}, []string{"docs", "ticket"}, nil)

	assert.Equal(t, 12, score)
}

func TestRelevance_GenericDocBoost(t *testing.T) {
	t.Parallel()

	score := pageask.Relevance([]string{"ticket"}, []string{"ticket", "overview"}, nil)

	assert.Equal(t, 15, score)
}

func TestRelevance_DepthPenalty(t *testing.T) {
	t.Parallel()

	deep := []string{"one", "two", "three", "four", "five", "six", "seven"}
	score := pageask.Relevance([]string{"nomatch"}, deep, nil)

	assert.Equal(t, -2, score)
}

func TestRelevance_NoDepthPenaltyAtSixKeywords(t *testing.T) {
	t.Parallel()

	six := []string{"one", "two", "three", "four", "five", "six"}
	score := pageask.Relevance([]string{"nomatch"}, six, nil)

	assert.Equal(t, 0, score)
}

func TestRelevance_ContextMismatchPenalty(t *testing.T) {
	t.Parallel()

	generic := 2
	score := pageask.Relevance([]string{"sync"}, []string{"salesforce", "sync"}, &generic)

	// 10 exact - 10 mismatch.
	assert.Equal(t, 0, score)
}

func TestRelevance_NoMismatchPenaltyWhenSystemSpecific(t *testing.T) {
	t.Parallel()

	specific := 3
	score := pageask.Relevance([]string{"sync"}, []string{"salesforce", "sync"}, &specific)

	assert.Equal(t, 10, score)
}

func TestRelevance_NoMismatchPenaltyWithoutConfidence(t *testing.T) {
	t.Parallel()

	score := pageask.Relevance([]string{"sync"}, []string{"salesforce", "sync"}, nil)

	assert.Equal(t, 10, score)
}

func TestRelevance_CanGoNegative(t *testing.T) {
	t.Parallel()

	generic := 0
	deep := []string{"salesforce", "admin", "advanced", "routing", "config", "legacy", "archive"}
	score := pageask.Relevance([]string{"unrelated"}, deep, &generic)

	// -2 depth - 10 mismatch.
	assert.Equal(t, -12, score)
}

func TestRelevance_SitemapExampleScenario(t *testing.T) {
	t.Parallel()

	docKeywords := pageask.ExtractKeywords("https://help.example.com/docs/ticket-routing-setup")
	queryKeywords := pageask.ExtractKeywords("What is ticket routing?")

	score := pageask.Relevance(queryKeywords, docKeywords, nil)

	// ticket +10, routing +10, docs +2, setup (generic doc) +5.
	assert.Equal(t, 27, score)
	assert.GreaterOrEqual(t, score, pageask.CitationThreshold)
}
