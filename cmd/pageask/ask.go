package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/pageask"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	var page *pageask.PageContext
	if c.Context != "" {
		page = &pageask.PageContext{}
		if err := readJSONFile(c.Context, page); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pageask.ErrorMessage(err))
			return err
		}
	}

	var element *pageask.SelectedElement
	if c.Element != "" {
		element = &pageask.SelectedElement{}
		if err := readJSONFile(c.Element, element); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pageask.ErrorMessage(err))
			return err
		}
	}

	answer, err := deps.Assistant.Answer(deps.Ctx, c.Question, page, element)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageask.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return pageask.Errorf(pageask.EINVALID, "cannot read %q: %s", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return pageask.Errorf(pageask.EINVALID, "cannot parse %q: %s", path, err)
	}
	return nil
}
