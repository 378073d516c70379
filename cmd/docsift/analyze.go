package main

import (
	"fmt"

	"github.com/fwojciec/docsift"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if docsift.ErrorCode(err) == docsift.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'docsift articles' to see stored articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		}
		return err
	}

	report, err := deps.Analyzer.Analyze(deps.Ctx, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}
