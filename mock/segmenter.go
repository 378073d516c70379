package mock

import "github.com/fwojciec/docsift"

var _ docsift.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of docsift.Segmenter.
type Segmenter struct {
	SegmentFn func(url string, html string) (*docsift.Article, error)
}

func (s *Segmenter) Segment(url string, html string) (*docsift.Article, error) {
	return s.SegmentFn(url, html)
}
