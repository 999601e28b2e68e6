package assist_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/pageask"
	"github.com/fwojciec/pageask/assist"
	"github.com/fwojciec/pageask/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAssistant_Answer_RequiresMessage(t *testing.T) {
	t.Parallel()

	a := &assist.Assistant{Logger: discardLogger()}

	_, err := a.Answer(context.Background(), "", nil, nil)

	require.Error(t, err)
	assert.Equal(t, pageask.EINVALID, pageask.ErrorCode(err))
}

func TestAssistant_Answer_GroundsPromptInRetrievedSources(t *testing.T) {
	t.Parallel()

	outcome := &pageask.RetrievalOutcome{
		Found: true,
		Results: []pageask.Result{{
			URL:     "https://help.example.com/docs/ticket-routing",
			Title:   "Ticket Routing",
			Content: "Routing rules assign tickets to queues.",
		}},
		MaxScore: 22,
		Tier:     pageask.TierPage,
	}

	var gotSystem, gotMessage string
	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(_ context.Context, _, _ string, _ *pageask.SelectedElement, _ *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			return outcome, nil
		}},
		Generator: &mock.Generator{GenerateFn: func(_ context.Context, system, message string) (string, error) {
			gotSystem, gotMessage = system, message
			return "Routing rules assign tickets to queues. [1]", nil
		}},
		Logger: discardLogger(),
	}

	answer, err := a.Answer(context.Background(), "How does ticket routing work?", nil, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, answer)
	assert.Equal(t, "How does ticket routing work?", gotMessage)
	assert.Contains(t, gotSystem, "https://help.example.com/docs/ticket-routing")
	assert.Contains(t, gotSystem, "authoritative sources available")
}

func TestAssistant_Answer_BuildsPageQueryFromMessageKeywords(t *testing.T) {
	t.Parallel()

	var gotUserQuery, gotPageQuery string
	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(_ context.Context, userQuery, pageQuery string, _ *pageask.SelectedElement, _ *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			gotUserQuery, gotPageQuery = userQuery, pageQuery
			return &pageask.RetrievalOutcome{Tier: pageask.TierNone}, nil
		}},
		Generator: &mock.Generator{GenerateFn: func(context.Context, string, string) (string, error) {
			return "answer", nil
		}},
		Logger: discardLogger(),
	}

	_, err := a.Answer(context.Background(), "What is ticket routing?", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "What is ticket routing?", gotUserQuery)
	assert.Equal(t, "ticket routing", gotPageQuery)
}

func TestAssistant_Answer_FallsBackToPageSignalsForGenericQuestion(t *testing.T) {
	t.Parallel()

	page := &pageask.PageContext{
		URL:           "https://app.example.com/admin/routing",
		Title:         "Routing Rules",
		ActiveNavItem: "Routing",
		Headings:      []pageask.Heading{{Level: "h1", Text: "Routing Rules"}},
	}

	var gotPageQuery string
	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(_ context.Context, _, pageQuery string, _ *pageask.SelectedElement, _ *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			gotPageQuery = pageQuery
			return &pageask.RetrievalOutcome{Tier: pageask.TierNone}, nil
		}},
		Generator: &mock.Generator{GenerateFn: func(context.Context, string, string) (string, error) {
			return "answer", nil
		}},
		Logger: discardLogger(),
	}

	_, err := a.Answer(context.Background(), "What is this?", page, nil)
	require.NoError(t, err)

	// The generic question carries no usable keywords; page signals
	// build the query instead.
	assert.True(t, strings.HasPrefix(gotPageQuery, "Routing Rules"), "got %q", gotPageQuery)
}

func TestAssistant_Answer_DegradesWhenRetrievalFails(t *testing.T) {
	t.Parallel()

	var gotSystem string
	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(context.Context, string, string, *pageask.SelectedElement, *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			return nil, pageask.Errorf(pageask.EUNAVAILABLE, "sitemap unreachable")
		}},
		Generator: &mock.Generator{GenerateFn: func(_ context.Context, system, _ string) (string, error) {
			gotSystem = system
			return "deferral", nil
		}},
		Logger: discardLogger(),
	}

	answer, err := a.Answer(context.Background(), "How does ticket routing work?", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "deferral", answer)
	assert.Contains(t, gotSystem, "no relevant documentation")
}

func TestAssistant_Answer_PropagatesContextCancellation(t *testing.T) {
	t.Parallel()

	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(ctx context.Context, _, _ string, _ *pageask.SelectedElement, _ *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			return nil, ctx.Err()
		}},
		Generator: &mock.Generator{GenerateFn: func(context.Context, string, string) (string, error) {
			t.Fatal("generator must not run after cancellation")
			return "", nil
		}},
		Logger: discardLogger(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Answer(ctx, "How does ticket routing work?", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssistant_Answer_PropagatesGeneratorError(t *testing.T) {
	t.Parallel()

	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(context.Context, string, string, *pageask.SelectedElement, *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			return &pageask.RetrievalOutcome{Tier: pageask.TierNone}, nil
		}},
		Generator: &mock.Generator{GenerateFn: func(context.Context, string, string) (string, error) {
			return "", pageask.Errorf(pageask.ETIMEOUT, "generation timed out")
		}},
		Logger: discardLogger(),
	}

	_, err := a.Answer(context.Background(), "How does ticket routing work?", nil, nil)

	require.Error(t, err)
	assert.Equal(t, pageask.ETIMEOUT, pageask.ErrorCode(err))
}

func TestAssistant_Answer_CachesPageContext(t *testing.T) {
	t.Parallel()

	cache := pageask.NewContextCache()
	page := &pageask.PageContext{URL: "https://app.example.com/admin/routing", Title: "Routing Rules"}

	a := &assist.Assistant{
		Retriever: &mock.Retriever{RetrieveFn: func(context.Context, string, string, *pageask.SelectedElement, *pageask.PageContext) (*pageask.RetrievalOutcome, error) {
			return &pageask.RetrievalOutcome{Tier: pageask.TierNone}, nil
		}},
		Generator: &mock.Generator{GenerateFn: func(context.Context, string, string) (string, error) {
			return "answer", nil
		}},
		Cache:  cache,
		Logger: discardLogger(),
	}

	_, err := a.Answer(context.Background(), "How does ticket routing work?", page, nil)
	require.NoError(t, err)

	cached, ok := cache.Get(page.URL)
	require.True(t, ok)
	assert.Same(t, page, cached)
}
