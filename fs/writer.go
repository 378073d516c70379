// Package fs provides file-based export for segmented articles.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsift"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://help.moengage.com/hc/en-us/articles/123-x → hc/en-us/articles/123-x.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.json
	if path == "" || path == "/" {
		return "index.json", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.json in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.json", nil
	}

	// Otherwise append .json
	return path + ".json", nil
}

// exportArticle is the on-disk representation of an article.
type exportArticle struct {
	URL      string            `json:"url"`
	Title    string            `json:"title"`
	Sections []docsift.Section `json:"sections"`
}

// FormatArticle serializes an article to indented JSON.
func FormatArticle(article *docsift.Article) ([]byte, error) {
	sections := article.Sections
	if sections == nil {
		sections = []docsift.Section{}
	}
	return json.MarshalIndent(exportArticle{
		URL:      article.URL,
		Title:    article.Title,
		Sections: sections,
	}, "", "  ")
}

// Ensure Writer implements docsift.ArticleWriter at compile time.
var _ docsift.ArticleWriter = (*Writer)(nil)

// Writer writes articles as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateArticle writes an article to disk as a JSON file.
func (w *Writer) CreateArticle(ctx context.Context, article *docsift.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(article.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content, err := FormatArticle(article)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// WriteURLList writes discovered article URLs as a single-column CSV with a
// "URL" header row.
func WriteURLList(w io.Writer, urls []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"URL"}); err != nil {
		return err
	}
	for _, u := range urls {
		if err := cw.Write([]string{u}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
