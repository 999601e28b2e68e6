// Package gemini implements answer generation using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genai"

	"github.com/fwojciec/pageask"
)

const model = "gemini-2.5-flash"

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 30 * time.Second

// Ensure Generator implements pageask.Generator at compile time.
var _ pageask.Generator = (*Generator)(nil)

// Generator implements pageask.Generator using Google Gemini.
type Generator struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{client: client, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout overrides the default per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// Generate produces an answer for the user message under the given system
// instruction.
func (g *Generator) Generate(ctx context.Context, system, message string) (string, error) {
	if message == "" {
		return "", pageask.Errorf(pageask.EINVALID, "message required")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: message}},
		}},
		buildConfig(system),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", pageask.Errorf(pageask.ETIMEOUT, "generation timed out after %s", g.timeout)
		}
		return "", err
	}
	if result == nil || result.Text() == "" {
		return "", pageask.Errorf(pageask.EINTERNAL, "unexpected response format")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls. The
// system instruction carries the grounding policy and page context; the
// low temperature keeps answers anchored to the cited documentation.
func buildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
