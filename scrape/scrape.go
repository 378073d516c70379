// Package scrape provides the scraping pipeline orchestration.
// It coordinates article URL discovery on the help-center entry page,
// fetching of rendered article pages, section segmentation, and storage.
package scrape

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docsift"
	"golang.org/x/sync/errgroup"
)

// Scraper orchestrates discovery and segmentation of help-center articles.
type Scraper struct {
	Fetcher   docsift.Fetcher
	Links     docsift.LinkExtractor
	Segmenter docsift.Segmenter
	Articles  docsift.ArticleService
	Limiter   docsift.DomainLimiter

	// Prefixes is the article URL allowlist.
	// Defaults to docsift.DefaultArticlePrefixes() when empty.
	Prefixes []string

	// Concurrency bounds the number of in-flight fetches. The default of 1
	// keeps a single fetch in flight, which preserves strict URL order and
	// reuses one browsing context sequentially.
	Concurrency int

	// RetryDelays configures bounded retry of failed fetches. Nil means a
	// single attempt per URL.
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch scrape.
type Result struct {
	Saved    int
	Failed   int
	Sections int
	Images   int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single URL.
type scrapeResult struct {
	position int
	url      string
	article  *docsift.Article
	err      error
}

// Discover loads the entry page, enumerates every anchor href in document
// order, and returns the ordered, deduplicated list of canonical article
// URLs. A failed or timed-out entry navigation is returned as-is; no retry
// is performed.
func (s *Scraper) Discover(ctx context.Context, entryURL string) ([]string, error) {
	html, err := s.Fetcher.Fetch(ctx, entryURL)
	if err != nil {
		return nil, err
	}

	links, err := s.Links.ExtractHrefs(html, entryURL)
	if err != nil {
		return nil, err
	}

	return docsift.FilterArticleURLs(links, s.prefixes()), nil
}

// ScrapeOne fetches a single article page and segments it. Rate limiting
// and retry policy apply as configured.
func (s *Scraper) ScrapeOne(ctx context.Context, articleURL string) (*docsift.Article, error) {
	if s.Limiter != nil {
		u, err := url.Parse(articleURL)
		if err != nil {
			return nil, docsift.Errorf(docsift.EINVALID, "invalid article URL %q: %v", articleURL, err)
		}
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := FetchWithRetryDelays(ctx, articleURL, s.Fetcher.Fetch, nil, s.RetryDelays)
	if err != nil {
		return nil, err
	}

	return s.Segmenter.Segment(articleURL, html)
}

// ScrapeAll processes the URLs strictly in the given order, segmenting each
// article and saving it through the article service when one is configured.
// A navigation or extraction failure is attributed to its URL and reported
// through the progress callback; it never terminates the batch.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	resultCh := make(chan scrapeResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				article, err := s.ScrapeOne(gctx, u)
				resultCh <- scrapeResult{position: i, url: u, article: article, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results, re-ordered by position.
	results := make([]scrapeResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	// Save articles in position order and accumulate stats.
	var res Result
	res.Failed = failedCount
	for _, result := range results {
		if result.err != nil {
			continue
		}

		article := result.article
		article.Position = result.position

		if s.Articles != nil {
			if err := s.Articles.CreateArticle(ctx, article); err != nil {
				res.Failed++
				continue
			}
		}

		res.Saved++
		res.Sections += len(article.Sections)
		for _, section := range article.Sections {
			for _, block := range section.Blocks {
				if block.Kind == docsift.BlockImage {
					res.Images++
				}
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &res, nil
}

func (s *Scraper) prefixes() []string {
	if len(s.Prefixes) > 0 {
		return s.Prefixes
	}
	return docsift.DefaultArticlePrefixes()
}
