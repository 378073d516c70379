package docsift

import "context"

// Analyzer produces a readability/style report for a segmented article.
// Implementations must treat sentinel titles and articles without a body
// as valid, analyzable states rather than errors.
type Analyzer interface {
	Analyze(ctx context.Context, article *Article) (string, error)
}
