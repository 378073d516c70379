package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsift"
	"golang.org/x/net/html"
)

// Title selectors tried in order. The help-center theme renders the title
// as h6.article-title on some templates, hence the unusual first entry.
var titleSelectors = []string{
	"h6.article-title",
	"h1.article-title",
	".article-title",
	"h1",
	".page-title",
}

// Body container selectors tried in order.
var bodySelectors = []string{
	"div.article__body",
	".article-body",
	".content",
}

// headingTags are the element names that denote section breaks.
var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Ensure Segmenter implements docsift.Segmenter at compile time.
var _ docsift.Segmenter = (*Segmenter)(nil)

// Segmenter decomposes a rendered article page into a docsift.Article by
// walking the body container's direct children.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment locates the title and body container and partitions the body's
// direct children into ordered sections. A missing title yields the NoTitle
// sentinel; a missing body container yields BodyFound false with no
// sections. Neither is an error.
func (s *Segmenter) Segment(url string, rawHTML string) (*docsift.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docsift.Errorf(docsift.EEXTRACTION, "failed to parse HTML: %v", err)
	}

	article := &docsift.Article{
		URL:   url,
		Title: findTitle(doc),
	}

	body := findBody(doc)
	if body == nil {
		return article, nil
	}
	article.BodyFound = true

	nodes, err := materializeChildren(body)
	if err != nil {
		return nil, err
	}

	article.Sections = docsift.SegmentBody(nodes)
	return article, nil
}

// findTitle returns the trimmed text of the first matching title selector,
// or the NoTitle sentinel if none matches.
func findTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			return text
		}
	}
	return docsift.NoTitle
}

// findBody returns the first matching body container, or nil if none matches.
func findBody(doc *goquery.Document) *goquery.Selection {
	for _, selector := range bodySelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// materializeChildren converts the body container's direct element children
// into the closed set of body node variants, in document order.
func materializeChildren(body *goquery.Selection) ([]docsift.BodyNode, error) {
	var nodes []docsift.BodyNode

	for _, n := range body.Children().Nodes {
		if n.Type != html.ElementNode {
			continue
		}
		if n.Data == "" {
			return nil, docsift.Errorf(docsift.EEXTRACTION, "child element has no tag name")
		}

		child := goquery.NewDocumentFromNode(n).Selection
		tag := strings.ToLower(n.Data)

		if headingTags[tag] {
			nodes = append(nodes, docsift.HeadingBreak{Text: child.Text()})
			continue
		}

		node := docsift.ContentNode{Text: child.Text()}
		child.Find("img").Each(func(_ int, img *goquery.Selection) {
			if src, ok := img.Attr("src"); ok && src != "" {
				node.Images = append(node.Images, src)
			}
		})
		nodes = append(nodes, node)
	}

	return nodes, nil
}
