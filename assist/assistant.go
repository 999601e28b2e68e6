// Package assist composes retrieval, grounding, and generation into the
// single Answer entry point the UI talks to.
package assist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fwojciec/pageask"
)

// Ensure Assistant implements pageask.Assistant at compile time.
var _ pageask.Assistant = (*Assistant)(nil)

// Assistant answers user questions about the current page, grounded in
// documentation retrieved through the tiered search pipeline.
type Assistant struct {
	Retriever pageask.Retriever
	Generator pageask.Generator

	// Cache, when set, records the page context snapshot per URL.
	Cache *pageask.ContextCache

	Logger *slog.Logger
}

func (a *Assistant) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// Answer implements pageask.Assistant. Retrieval failures degrade to an
// ungrounded answer under the no-confidence policy; generator failures
// propagate to the caller.
func (a *Assistant) Answer(ctx context.Context, message string, page *pageask.PageContext, element *pageask.SelectedElement) (string, error) {
	if message == "" {
		return "", pageask.Errorf(pageask.EINVALID, "message required")
	}

	logger := a.logger().With("request_id", uuid.NewString())

	if a.Cache != nil && page != nil && page.URL != "" {
		a.Cache.Put(page.URL, page)
	}

	pageQuery := pageask.BuildSearchQuery(message, page)

	outcome, err := a.Retriever.Retrieve(ctx, message, pageQuery, element, page)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		logger.Warn("retrieval failed, answering without documentation", "err", err)
		outcome = &pageask.RetrievalOutcome{Tier: pageask.TierNone}
	}

	builder := &pageask.PromptBuilder{Outcome: outcome, Page: page, Element: element}

	logger.Debug("answering",
		"tier", outcome.Tier,
		"policy", builder.Policy(),
		"max_score", outcome.MaxScore,
		"sources", len(outcome.Results),
	)

	return a.Generator.Generate(ctx, builder.Build(), message)
}
