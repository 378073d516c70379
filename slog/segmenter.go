// Package slog provides logging decorators for docsift services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docsift"
)

// Ensure LoggingSegmenter implements docsift.Segmenter.
var _ docsift.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with debug logging.
type LoggingSegmenter struct {
	next   docsift.Segmenter
	logger *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next docsift.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the operation.
func (s *LoggingSegmenter) Segment(url, html string) (article *docsift.Article, err error) {
	defer func(begin time.Time) {
		sections := 0
		if article != nil {
			sections = len(article.Sections)
		}
		s.logger.Info("segment article",
			"url", url,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Segment(url, html)
}
