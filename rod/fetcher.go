// Package rod provides a browser-automation implementation of
// docsift.Fetcher using headless Chrome. The help-center renders article
// bodies with JavaScript, so plain HTTP fetching returns empty shells.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docsift"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single navigation including the settle wait.
const DefaultFetchTimeout = 30 * time.Second

// stableWindow is how long the page must be quiet before it is considered
// settled after load.
const stableWindow = time.Second

// Ensure Fetcher implements docsift.Fetcher at compile time.
var _ docsift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// A single browser instance is reused across fetches; pages are created and
// closed per fetch. Fetcher is safe for concurrent use by multiple
// goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single fetch, covering navigation
// and the settle wait. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets the number of pages fetched before the underlying
// browser is recycled.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.manager.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager: manager,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Fetch navigates to the URL, waits for the page to settle, and returns the
// rendered HTML. Page resources are released on every exit path.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", docsift.Errorf(docsift.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", docsift.Errorf(docsift.ENAVIGATION, "open page for %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", docsift.Errorf(docsift.ENAVIGATION, "navigate %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", docsift.Errorf(docsift.ENAVIGATION, "load %s: %v", url, err)
	}
	// Settle: no DOM churn or in-flight requests for a full window.
	if err := page.WaitStable(stableWindow); err != nil {
		return "", docsift.Errorf(docsift.ENAVIGATION, "settle %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", docsift.Errorf(docsift.ENAVIGATION, "read HTML of %s: %v", url, err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
