package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docsift"
)

// fetchedAtFormat is used when listing stored articles.
const fetchedAtFormat = time.RFC3339

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	filter := docsift.ArticleFilter{SortBy: docsift.SortByPosition}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'docsift scrape' to collect some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%d sections, fetched %s)\n",
			a.ID, a.Title, a.URL, len(a.Sections), a.FetchedAt.Format(fetchedAtFormat))

		if c.Full {
			for i, section := range a.Sections {
				fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, section.Heading)
			}
		}
	}

	return nil
}
