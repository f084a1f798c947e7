package storage

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileService(t *testing.T) {
	ctx := context.Background()
	svc, err := NewLocalFileService(t.TempDir())
	require.NoError(t, err)

	content := []byte("hello upload")

	t.Run("save and read back", func(t *testing.T) {
		require.NoError(t, svc.Save(ctx, "greeting.txt", bytes.NewReader(content)))

		file, err := svc.Open(ctx, "greeting.txt")
		require.NoError(t, err)
		defer file.Close()

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := svc.Exists(ctx, "greeting.txt")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Exists(ctx, "missing.txt")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "greeting.txt"))
		ok, err := svc.Exists(ctx, "greeting.txt")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("public url", func(t *testing.T) {
		assert.Equal(t, "/uploads/greeting.txt", svc.PublicURL("greeting.txt"))
	})
}

func TestGenerateName(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13}-[0-9a-f]{16}\.png$`)

	name := GenerateName("photo.png")
	assert.Regexp(t, pattern, name)

	t.Run("keeps the original extension", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(GenerateName("archive.tar.gz"), ".gz"))
		assert.False(t, strings.Contains(GenerateName("no-extension"), "."))
	})

	t.Run("names do not collide", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			n := GenerateName("photo.png")
			assert.False(t, seen[n], "duplicate generated name %s", n)
			seen[n] = true
		}
	})
}
