package goquery_test

import (
	"testing"

	"github.com/fwojciec/docsift"
	dsgoquery "github.com/fwojciec/docsift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractHrefs(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://help.moengage.com/hc/en-us/articles/1-a">one</a>
			<p><a href="https://help.moengage.com/hc/en-us/articles/2-b">two</a></p>
			<footer><a href="https://help.moengage.com/hc/en-us/articles/3-c">three</a></footer>
		</body></html>`

		e := dsgoquery.NewLinkExtractor()
		hrefs, err := e.ExtractHrefs(html, "https://help.moengage.com/hc/en-us")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://help.moengage.com/hc/en-us/articles/1-a",
			"https://help.moengage.com/hc/en-us/articles/2-b",
			"https://help.moengage.com/hc/en-us/articles/3-c",
		}, hrefs)
	})

	t.Run("resolves relative hrefs against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/hc/en-us/articles/1-a">one</a>`

		e := dsgoquery.NewLinkExtractor()
		hrefs, err := e.ExtractHrefs(html, "https://help.moengage.com/hc/en-us")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://help.moengage.com/hc/en-us/articles/1-a"}, hrefs)
	})

	t.Run("keeps pseudo-URLs verbatim", func(t *testing.T) {
		t.Parallel()

		html := `<a href="javascript:void(0)">toggle</a>`

		e := dsgoquery.NewLinkExtractor()
		hrefs, err := e.ExtractHrefs(html, "https://help.moengage.com/hc/en-us")

		require.NoError(t, err)
		assert.Equal(t, []string{"javascript:void(0)"}, hrefs)
	})

	t.Run("skips anchors without an href attribute", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">anchor</a><a href="/x">x</a>`

		e := dsgoquery.NewLinkExtractor()
		hrefs, err := e.ExtractHrefs(html, "https://help.moengage.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://help.moengage.com/x"}, hrefs)
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/x">x</a><a href="/x">x again</a>`

		e := dsgoquery.NewLinkExtractor()
		hrefs, err := e.ExtractHrefs(html, "https://help.moengage.com")

		require.NoError(t, err)
		assert.Len(t, hrefs, 2)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := dsgoquery.NewLinkExtractor()
		_, err := e.ExtractHrefs("<a href='/x'>x</a>", "://bad")

		require.Error(t, err)
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})
}
