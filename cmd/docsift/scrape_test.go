package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docsift"
	main "github.com/fwojciec/docsift/cmd/docsift"
	"github.com/fwojciec/docsift/mock"
	"github.com/fwojciec/docsift/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrapeTestScraper(saved *[]*docsift.Article) *scrape.Scraper {
	return &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		},
		Links: &mock.LinkExtractor{
			ExtractHrefsFn: func(_ string, _ string) ([]string, error) {
				return []string{
					"https://help.moengage.com/hc/en-us/articles/1-a",
					"https://help.moengage.com/hc/en-us/articles/2-b",
				}, nil
			},
		},
		Segmenter: &mock.Segmenter{
			SegmentFn: func(url, _ string) (*docsift.Article, error) {
				return &docsift.Article{
					URL:       url,
					Title:     "Title",
					BodyFound: true,
					Sections: []docsift.Section{
						{Heading: "Introduction", Blocks: []docsift.ContentBlock{docsift.TextBlock("Hi")}},
					},
				}, nil
			},
		},
		Articles: &mock.ArticleService{
			CreateArticleFn: func(_ context.Context, article *docsift.Article) error {
				*saved = append(*saved, article)
				return nil
			},
		},
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scrapes discovered articles and prints summary", func(t *testing.T) {
		t.Parallel()

		var saved []*docsift.Article
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scrapeTestScraper(&saved),
		}

		cmd := &main.ScrapeCmd{URL: "https://help.moengage.com/hc/en-us"}

		require.NoError(t, cmd.Run(deps))

		require.Len(t, saved, 2)
		output := stdout.String()
		assert.Contains(t, output, "Found 2 URLs")
		assert.Contains(t, output, "Saved 2 articles")
	})

	t.Run("limit caps the number of articles scraped", func(t *testing.T) {
		t.Parallel()

		var saved []*docsift.Article

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Scraper: scrapeTestScraper(&saved),
		}

		cmd := &main.ScrapeCmd{URL: "https://help.moengage.com/hc/en-us", Limit: 1}

		require.NoError(t, cmd.Run(deps))

		require.Len(t, saved, 1)
		assert.Equal(t, "https://help.moengage.com/hc/en-us/articles/1-a", saved[0].URL)
	})

	t.Run("reports failed URLs without aborting", func(t *testing.T) {
		t.Parallel()

		var saved []*docsift.Article
		scraper := scrapeTestScraper(&saved)
		scraper.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://help.moengage.com/hc/en-us/articles/1-a" {
					return "", docsift.Errorf(docsift.ENAVIGATION, "timeout")
				}
				return "<html></html>", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://help.moengage.com/hc/en-us"}

		require.NoError(t, cmd.Run(deps))

		require.Len(t, saved, 1)
		assert.Contains(t, stderr.String(), "skip https://help.moengage.com/hc/en-us/articles/1-a")
		assert.Contains(t, stdout.String(), "1 failed")
	})

	t.Run("reports when no article URLs are found", func(t *testing.T) {
		t.Parallel()

		var saved []*docsift.Article
		scraper := scrapeTestScraper(&saved)
		scraper.Links = &mock.LinkExtractor{
			ExtractHrefsFn: func(_ string, _ string) ([]string, error) {
				return []string{"https://help.moengage.com/hc/en-us/categories/cat"}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://help.moengage.com/hc/en-us"}

		require.NoError(t, cmd.Run(deps))

		assert.Empty(t, saved)
		assert.Contains(t, stdout.String(), "No article URLs found")
	})
}
