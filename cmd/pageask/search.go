package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pageask"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result, err := deps.Searcher.Search(deps.Ctx, c.Query, nil, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageask.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if !result.Found {
		fmt.Fprintf(deps.Stdout, "No documentation found (best score %d, threshold %d).\n",
			result.MaxScore, pageask.CitationThreshold)
		return nil
	}

	for i, r := range result.Results {
		fmt.Fprintf(deps.Stdout, "[%d] %s\n    %s\n", i+1, r.Title, r.URL)
	}
	return nil
}
