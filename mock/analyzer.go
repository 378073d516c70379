package mock

import (
	"context"

	"github.com/fwojciec/docsift"
)

var _ docsift.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of docsift.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, article *docsift.Article) (string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, article *docsift.Article) (string, error) {
	return a.AnalyzeFn(ctx, article)
}
