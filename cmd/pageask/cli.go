package main

import (
	"context"
	"io"

	"github.com/fwojciec/pageask"
	"github.com/fwojciec/pageask/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Indexer   *search.Indexer
	Searcher  pageask.Searcher
	Assistant pageask.Assistant
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sitemap string `env:"PAGEASK_SITEMAP" help:"Documentation sitemap URL"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Index  IndexCmd  `cmd:"" help:"Build or refresh the documentation search index"`
	Search SearchCmd `cmd:"" help:"Search the documentation index"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about the current page"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Force bool `short:"f" help:"Rebuild even when the index is fresh"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	JSON  bool   `help:"Print results as JSON"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask"`
	Context  string `short:"c" help:"Path to a page context JSON file"`
	Element  string `short:"e" help:"Path to a selected element JSON file"`
}
