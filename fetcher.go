package docsift

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to settle,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	// Returns ENAVIGATION if the page fails to load or settle in time.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// LinkExtractor enumerates anchor hrefs from rendered HTML.
type LinkExtractor interface {
	// ExtractHrefs returns the href of every anchor element in document
	// order, resolved against baseURL the way a rendering engine resolves
	// the href property. Anchors without an href attribute are skipped;
	// hrefs that cannot be parsed are returned verbatim.
	ExtractHrefs(html string, baseURL string) ([]string, error)
}

// Segmenter decomposes a rendered article page into an Article.
type Segmenter interface {
	// Segment locates the title and body container in the rendered HTML
	// and partitions the body's direct children into ordered sections.
	// A missing title or body container is represented in the returned
	// Article (NoTitle sentinel, BodyFound false), not as an error.
	// Returns EEXTRACTION if the content is malformed beyond recovery.
	Segment(url string, html string) (*Article, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
