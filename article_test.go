package docsift_test

import (
	"testing"

	"github.com/fwojciec/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		a := &docsift.Article{}

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})

	t.Run("accepts article without body", func(t *testing.T) {
		t.Parallel()

		a := &docsift.Article{
			URL:   "https://help.moengage.com/hc/en-us/articles/1-a",
			Title: docsift.NoTitle,
		}

		assert.NoError(t, a.Validate())
	})
}

func TestContentBlock_Constructors(t *testing.T) {
	t.Parallel()

	text := docsift.TextBlock("hello")
	assert.Equal(t, docsift.BlockText, text.Kind)
	assert.Equal(t, "hello", text.Text)
	assert.Empty(t, text.Src)

	img := docsift.ImageBlock("x.png")
	assert.Equal(t, docsift.BlockImage, img.Kind)
	assert.Equal(t, "x.png", img.Src)
	assert.Empty(t, img.Text)
}
