// Package goquery provides CSS-selector based implementations of the
// docsift DOM interfaces: anchor enumeration and article segmentation.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsift"
)

// Ensure LinkExtractor implements docsift.LinkExtractor at compile time.
var _ docsift.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor enumerates anchor hrefs from rendered HTML in document order.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractHrefs returns the href of every anchor element in document order,
// resolved against baseURL. This reproduces the rendering engine's href
// property semantics: relative hrefs become absolute, while pseudo-URLs
// like javascript: pass through unchanged. Anchors without an href
// attribute are skipped. Duplicates are preserved; deduplication belongs
// to docsift.FilterArticleURLs.
func (e *LinkExtractor) ExtractHrefs(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "failed to parse HTML: %v", err)
	}

	var hrefs []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		hrefs = append(hrefs, resolveHref(base, href))
	})

	return hrefs, nil
}

// resolveHref resolves href against base. Hrefs that cannot be parsed are
// returned verbatim: they are raw links and will fail the prefix test
// downstream.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
