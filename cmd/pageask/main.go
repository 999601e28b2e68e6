package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/pageask"
	"github.com/fwojciec/pageask/assist"
	"github.com/fwojciec/pageask/gemini"
	"github.com/fwojciec/pageask/goquery"
	pagehttp "github.com/fwojciec/pageask/http"
	"github.com/fwojciec/pageask/search"
	pageslog "github.com/fwojciec/pageask/slog"
	"github.com/fwojciec/pageask/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the search index store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageask"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pageask --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Sitemap == "" {
		fmt.Fprintln(stderr, "Hint: Set PAGEASK_SITEMAP or pass --sitemap with the documentation sitemap URL")
		return fmt.Errorf("sitemap URL not set")
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEASK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	indexer := &search.Indexer{
		Sitemap: pageslog.NewLoggingSitemapSource(
			pagehttp.NewSitemapSource(nil, cli.Sitemap), logger),
		Store:  sqlite.NewIndexStore(m.DB),
		Logger: logger,
	}
	searcher := &search.Searcher{
		Indexer:   indexer,
		Fetcher:   pagehttp.NewFetcher(),
		Extractor: goquery.NewExtractor(),
		Logger:    logger,
	}

	deps.Indexer = indexer
	deps.Searcher = searcher

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return pageask.Errorf(pageask.ECONFIG, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Assistant = &assist.Assistant{
			Retriever: pageslog.NewLoggingRetriever(
				&search.TieredRetriever{Searcher: searcher}, logger),
			Generator: gemini.NewGenerator(client),
			Cache:     pageask.NewContextCache(),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEASK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pageask.db"
	}
	dir := filepath.Join(home, ".pageask")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pageask.db")
}
