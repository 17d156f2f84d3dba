package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

func newTestBlobStorage(t *testing.T) (BlobStorage, string) {
	t.Helper()
	dir := t.TempDir()
	blobs, err := NewFileBlobStorage(config.Files{Dir: dir, PublicBaseURL: "http://localhost:8080/files/"}, logger.Nop())
	require.NoError(t, err)
	return blobs, dir
}

func TestFileBlobStorage_PutOpenDelete(t *testing.T) {
	blobs, dir := newTestBlobStorage(t)
	ctx := context.Background()

	url, err := blobs.Put(ctx, []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/files/"))
	require.True(t, strings.HasSuffix(url, ".jpg"))

	key := strings.TrimPrefix(url, "http://localhost:8080/files/")
	f, err := blobs.Open(key)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, blobs.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))

	_, err = blobs.Open(key)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileBlobStorage_KeysAreUnique(t *testing.T) {
	blobs, _ := newTestBlobStorage(t)

	a, err := blobs.Put(context.Background(), []byte("a"), "image/png")
	require.NoError(t, err)
	b, err := blobs.Put(context.Background(), []byte("a"), "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFileBlobStorage_DeleteIgnoresForeignURLs(t *testing.T) {
	blobs, dir := newTestBlobStorage(t)
	outside := filepath.Join(filepath.Dir(dir), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))
	t.Cleanup(func() { os.Remove(outside) })

	for _, url := range []string{
		"",
		"https://cdn.example.com/abc.jpg",
		"http://localhost:8080/files/../keep.txt",
	} {
		require.NoError(t, blobs.Delete(context.Background(), url))
	}
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestFileBlobStorage_OpenRejectsTraversal(t *testing.T) {
	blobs, _ := newTestBlobStorage(t)

	for _, key := range []string{"", "../etc/passwd", "a/b.jpg", `a\b.jpg`, ".hidden"} {
		_, err := blobs.Open(key)
		assert.ErrorIs(t, err, ErrBlobNotFound, key)
	}
}
