package mock

import "github.com/fwojciec/docsift"

var _ docsift.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docsift.LinkExtractor.
type LinkExtractor struct {
	ExtractHrefsFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractHrefs(html string, baseURL string) ([]string, error) {
	return e.ExtractHrefsFn(html, baseURL)
}
