package main

import (
	"fmt"

	"github.com/fwojciec/docsift"
	"github.com/fwojciec/docsift/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls, err := deps.Scraper.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No article URLs found.")
		return nil
	}

	if c.Limit > 0 && c.Limit < len(urls) {
		urls = urls[:c.Limit]
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, 60))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Scraper.ScrapeAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d articles (%d sections, %d images), %d failed\n",
		result.Saved, result.Sections, result.Images, result.Failed)

	return nil
}
