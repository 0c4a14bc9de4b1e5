package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header plus padding
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

func TestLocalStoreSave(t *testing.T) {
	ctx := context.Background()
	namePattern := regexp.MustCompile(`^\d+-[0-9a-f]{12}\.png$`)

	t.Run("stores file with sniffed type", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewLocalStore(dir, "/uploads", 1<<20)
		require.NoError(t, err)

		file, err := store.Save(ctx, bytes.NewReader(pngBytes), "logo.PNG")
		require.NoError(t, err)

		assert.Regexp(t, namePattern, file.Name)
		assert.Equal(t, "/uploads/"+file.Name, file.URL)
		assert.Equal(t, "image/png", file.MIME)
		assert.Equal(t, int64(len(pngBytes)), file.Size)

		stored, err := os.ReadFile(filepath.Join(dir, file.Name))
		require.NoError(t, err)
		assert.Equal(t, pngBytes, stored)
	})

	t.Run("extension falls back to content type", func(t *testing.T) {
		store, err := storage.NewLocalStore(t.TempDir(), "/uploads", 1<<20)
		require.NoError(t, err)

		file, err := store.Save(ctx, bytes.NewReader(pngBytes), "blob")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Name, ".png"))
	})

	t.Run("rejects oversized file and removes it", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewLocalStore(dir, "/uploads", 16)
		require.NoError(t, err)

		_, err = store.Save(ctx, bytes.NewReader(pngBytes), "big.png")
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("empty upload", func(t *testing.T) {
		store, err := storage.NewLocalStore(t.TempDir(), "/uploads", 16)
		require.NoError(t, err)

		_, err = store.Save(ctx, bytes.NewReader(nil), "empty.png")
		assert.ErrorIs(t, err, domain.ErrMissingFile)
	})
}
