package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsift"
	main "github.com/fwojciec/docsift/cmd/docsift"
	"github.com/fwojciec/docsift/mock"
	"github.com/fwojciec/docsift/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entryHTML = `<html><body>
	<a href="https://help.moengage.com/hc/en-us/articles/1-a">A</a>
	<a href="https://help.moengage.com/hc/en-us/categories/cat">Category</a>
	<a href="https://developers.moengage.com/hc/en-us/articles/2-b">B</a>
</body></html>`

func testScraper() *scrape.Scraper {
	return &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return entryHTML, nil
			},
		},
		Links: &mock.LinkExtractor{
			ExtractHrefsFn: func(_ string, _ string) ([]string, error) {
				return []string{
					"https://help.moengage.com/hc/en-us/articles/1-a",
					"https://help.moengage.com/hc/en-us/categories/cat",
					"https://developers.moengage.com/hc/en-us/articles/2-b",
				}, nil
			},
		},
	}
}

func TestDiscoverCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints article URLs one per line", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(),
		}

		cmd := &main.DiscoverCmd{URL: "https://help.moengage.com/hc/en-us"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "https://help.moengage.com/hc/en-us/articles/1-a")
		assert.Contains(t, output, "https://developers.moengage.com/hc/en-us/articles/2-b")
		assert.NotContains(t, output, "categories")
	})

	t.Run("writes CSV file when output is set", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), "urls.csv")
		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(),
		}

		cmd := &main.DiscoverCmd{URL: "https://help.moengage.com/hc/en-us", Output: outPath}

		require.NoError(t, cmd.Run(deps))

		content, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "URL\n")
		assert.Contains(t, string(content), "https://help.moengage.com/hc/en-us/articles/1-a")
		assert.Contains(t, stdout.String(), "Wrote 2 URLs")
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		scraper := testScraper()
		scraper.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", docsift.Errorf(docsift.ENAVIGATION, "navigation failed")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: scraper,
		}

		cmd := &main.DiscoverCmd{URL: "https://help.moengage.com/hc/en-us"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docsift.ENAVIGATION, docsift.ErrorCode(err))
		assert.Contains(t, stderr.String(), "navigation failed")
	})
}
