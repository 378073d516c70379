package main

import (
	"fmt"

	"github.com/fwojciec/docsift"
	"github.com/fwojciec/docsift/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, docsift.ArticleFilter{SortBy: docsift.SortByPosition})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no articles to export. Use 'docsift scrape' to collect some.")
		return docsift.Errorf(docsift.ENOTFOUND, "no articles to export")
	}

	writer := fs.NewWriter(c.Dir)
	var written int
	for _, a := range articles {
		if err := writer.CreateArticle(deps.Ctx, a); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", a.URL, err)
			continue
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s\n", written, c.Dir)
	return nil
}
