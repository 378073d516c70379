package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsift"
	"github.com/fwojciec/docsift/gemini"
	"github.com/fwojciec/docsift/goquery"
	dochttp "github.com/fwojciec/docsift/http"
	"github.com/fwojciec/docsift/rod"
	"github.com/fwojciec/docsift/scrape"
	docslog "github.com/fwojciec/docsift/slog"
	"github.com/fwojciec/docsift/sqlite"
	"google.golang.org/genai"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service exposed for end-to-end testing.
	ArticleService docsift.ArticleService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSIFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	// Wire command-specific dependencies based on command
	if cmd == "discover" || cmd == "scrape" {
		static := cli.Discover.Static
		if cmd == "scrape" {
			static = cli.Scrape.Static
		}

		var fetcher docsift.Fetcher
		if static {
			fetcher = dochttp.NewFetcher()
		} else {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		}
		defer fetcher.Close()

		var segmenter docsift.Segmenter = goquery.NewSegmenter()

		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = docslog.NewLoggingFetcher(fetcher, logger)
			segmenter = docslog.NewLoggingSegmenter(segmenter, logger)
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:   fetcher,
			Links:     goquery.NewLinkExtractor(),
			Segmenter: segmenter,
			Articles:  m.ArticleService,
		}

		if cmd == "scrape" {
			deps.Scraper.Limiter = scrape.NewDomainLimiter(cli.Scrape.RPS)
			deps.Scraper.Prefixes = cli.Scrape.Prefix
			deps.Scraper.Concurrency = cli.Scrape.Concurrency
			if cli.Scrape.Retry {
				deps.Scraper.RetryDelays = scrape.DefaultRetryDelays()
			}
		} else {
			deps.Scraper.Prefixes = cli.Discover.Prefix
		}
	}

	if cmd == "analyze" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Analyzer = gemini.NewAnalyzer(client)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsift.db"
	}
	dir := filepath.Join(home, ".docsift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsift.db")
}
