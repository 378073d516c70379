package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docsift/cmd/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("errors when no command is given", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help prints usage without error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Commands")
	})

	t.Run("articles runs against an empty database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"articles"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles found")
	})

	t.Run("unknown command is rejected", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}
