package main

import (
	"context"
	"io"

	"github.com/fwojciec/docsift"
	"github.com/fwojciec/docsift/scrape"
	"github.com/fwojciec/docsift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles docsift.ArticleService
	Scraper  *scrape.Scraper
	Analyzer docsift.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and segmentation activity to stderr"`

	Discover DiscoverCmd `cmd:"" help:"Discover article URLs on a help-center entry page"`
	Scrape   ScrapeCmd   `cmd:"" help:"Discover, fetch, and segment articles into the database"`
	Articles ArticlesCmd `cmd:"" help:"List stored articles"`
	Export   ExportCmd   `cmd:"" help:"Export stored articles as JSON files"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Generate a readability report for a stored article"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL    string   `arg:"" help:"Help-center entry page URL"`
	Output string   `short:"o" help:"Write URLs as CSV to this file instead of stdout"`
	Prefix []string `short:"P" help:"Article URL prefix allowlist (repeatable)"`
	Static bool     `help:"Fetch with plain HTTP instead of a headless browser"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string   `arg:"" help:"Help-center entry page URL"`
	Limit       int      `short:"n" help:"Scrape at most this many articles"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per domain"`
	Retry       bool     `help:"Retry failed fetches with backoff"`
	Prefix      []string `short:"P" help:"Article URL prefix allowlist (repeatable)"`
	Static      bool     `help:"Fetch with plain HTTP instead of a headless browser"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	URL  string `help:"Show only the article with this URL"`
	Full bool   `help:"Show section headings for each article"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Directory to write JSON files to"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	ID string `arg:"" help:"Article ID"`
}
