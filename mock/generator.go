package mock

import (
	"context"

	"github.com/fwojciec/pageask"
)

var _ pageask.Generator = (*Generator)(nil)

// Generator is a mock implementation of pageask.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, system, message string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, system, message string) (string, error) {
	return g.GenerateFn(ctx, system, message)
}
