package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docsift"
	"github.com/fwojciec/docsift/fs"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	urls, err := deps.Scraper.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()

		if err := fs.WriteURLList(f, urls); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}

		fmt.Fprintf(deps.Stdout, "Wrote %d URLs to %s\n", len(urls), c.Output)
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}
