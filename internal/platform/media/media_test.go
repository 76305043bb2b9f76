package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/media/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/media/"))
	assert.True(t, strings.HasSuffix(url, "_avatar.png"))

	name := url[strings.LastIndex(url, "/")+1:]
	written, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(written))
}

func TestDiskStoreSave_SameFilenameNeverCollides(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)

	first, err := store.Save(context.Background(), "avatar.png", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "avatar.png", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStoreSave_SanitizesPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/media")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("nope"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "_passwd"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "upload must land inside the storage directory")
}

func TestNewDiskStore_EmptyDir(t *testing.T) {
	_, err := NewDiskStore("", "http://localhost:8080/media")
	assert.Error(t, err)
}
