package main

import (
	"fmt"

	"github.com/fwojciec/pageask"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	index, err := buildOrEnsure(deps, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageask.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d pages (last updated %s)\n",
		len(index.Entries), index.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	return nil
}

func buildOrEnsure(deps *Dependencies, force bool) (*pageask.SearchIndex, error) {
	if force {
		return deps.Indexer.Build(deps.Ctx)
	}
	return deps.Indexer.EnsureFresh(deps.Ctx)
}
