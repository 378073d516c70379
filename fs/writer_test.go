package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docsift"
	"github.com/fwojciec/docsift/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "article path",
			url:  "https://help.moengage.com/hc/en-us/articles/123-What-is-an-Event",
			want: "hc/en-us/articles/123-What-is-an-Event.json",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/docs/",
			want: "docs/index.json",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "index.json",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/docs/api?version=2",
			want: "docs/api.json",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "index.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	t.Run("serializes url, title, and sections", func(t *testing.T) {
		t.Parallel()

		article := &docsift.Article{
			URL:   "https://help.moengage.com/hc/en-us/articles/1-a",
			Title: "Getting Started",
			Sections: []docsift.Section{
				{
					Heading: "Setup",
					Blocks: []docsift.ContentBlock{
						docsift.TextBlock("Install the SDK."),
						docsift.ImageBlock("setup.png"),
					},
				},
			},
		}

		got, err := fs.FormatArticle(article)

		require.NoError(t, err)

		var decoded struct {
			URL      string            `json:"url"`
			Title    string            `json:"title"`
			Sections []docsift.Section `json:"sections"`
		}
		require.NoError(t, json.Unmarshal(got, &decoded))
		assert.Equal(t, article.URL, decoded.URL)
		assert.Equal(t, article.Title, decoded.Title)
		assert.Equal(t, article.Sections, decoded.Sections)
	})

	t.Run("missing sections serialize as empty array", func(t *testing.T) {
		t.Parallel()

		article := &docsift.Article{
			URL:   "https://help.moengage.com/hc/en-us/articles/2-b",
			Title: docsift.NoTitle,
		}

		got, err := fs.FormatArticle(article)

		require.NoError(t, err)
		assert.Contains(t, string(got), `"sections": []`)
	})
}

func TestWriter_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes article to path derived from URL", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		article := &docsift.Article{
			URL:   "https://help.moengage.com/hc/en-us/articles/123-Events",
			Title: "Events",
			Sections: []docsift.Section{
				{Heading: "Introduction", Blocks: []docsift.ContentBlock{docsift.TextBlock("Hello")}},
			},
		}

		err := w.CreateArticle(context.Background(), article)

		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(baseDir, "hc/en-us/articles/123-Events.json"))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(content, &decoded))
		assert.Equal(t, article.URL, decoded["url"])
		assert.Equal(t, "Events", decoded["title"])
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		article := &docsift.Article{
			URL:   "https://example.com/deeply/nested/path/doc",
			Title: "Nested",
		}

		err := w.CreateArticle(context.Background(), article)

		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(baseDir, "deeply/nested/path/doc.json"))
		require.NoError(t, err)
	})

	t.Run("validates article", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.CreateArticle(context.Background(), &docsift.Article{Title: "No URL"})

		require.Error(t, err)
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})
}

func TestWriteURLList(t *testing.T) {
	t.Parallel()

	t.Run("writes header and one row per URL", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		err := fs.WriteURLList(&sb, []string{
			"https://help.moengage.com/hc/en-us/articles/1-a",
			"https://help.moengage.com/hc/en-us/articles/2-b",
		})

		require.NoError(t, err)
		assert.Equal(t, "URL\nhttps://help.moengage.com/hc/en-us/articles/1-a\nhttps://help.moengage.com/hc/en-us/articles/2-b\n", sb.String())
	})

	t.Run("empty list writes header only", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		err := fs.WriteURLList(&sb, nil)

		require.NoError(t, err)
		assert.Equal(t, "URL\n", sb.String())
	})
}
