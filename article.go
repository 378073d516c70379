package docsift

import (
	"context"
	"time"
)

// Sentinel values used when a page is missing the expected elements.
// Downstream consumers must treat them as valid, analyzable states.
const (
	// NoTitle is used when no title element matches on the page.
	NoTitle = "[No Title Found]"

	// IntroHeading labels content that precedes the first heading.
	IntroHeading = "Introduction"
)

// BlockKind discriminates the ContentBlock variants.
type BlockKind string

// ContentBlock variants.
const (
	BlockText  BlockKind = "text"
	BlockImage BlockKind = "image"
)

// ContentBlock is the smallest unit of extracted content within a section:
// either trimmed visible text or a reference to an embedded image's source
// URL. Exactly one of Text or Src is set, according to Kind.
type ContentBlock struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"value,omitempty"`
	Src  string    `json:"src,omitempty"`
}

// TextBlock returns a text ContentBlock.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockText, Text: text}
}

// ImageBlock returns an image-reference ContentBlock.
func ImageBlock(src string) ContentBlock {
	return ContentBlock{Kind: BlockImage, Src: src}
}

// Section is a contiguous run of article content between two heading
// boundaries, labeled by the preceding heading's text. Blocks preserve
// document order.
type Section struct {
	Heading string         `json:"heading"`
	Blocks  []ContentBlock `json:"blocks"`
}

// Article represents a segmented documentation article. An article fetched
// from a page lacking the body container has BodyFound false and no
// sections; one lacking a title element carries the NoTitle sentinel.
type Article struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	BodyFound bool      `json:"bodyFound"`

	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// ArticleWriter writes articles to storage.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ArticleService represents a service for managing segmented articles.
type ArticleService interface {
	// CreateArticle creates a new article with its sections.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article and its sections.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// SortOrder represents the sort order for article queries.
type SortOrder string

// SortOrder constants for ArticleFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByPosition  SortOrder = "position"
)

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
