package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	store := New(t.TempDir())
	content := []byte("hello, files manager")

	localPath, err := store.Write(base64.StdEncoding.EncodeToString(content))
	require.NoError(t, err)
	require.FileExists(t, localPath)

	got, err := store.Read(localPath)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestWriteCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "blobs")
	store := New(root)

	localPath, err := store.Write(base64.StdEncoding.EncodeToString([]byte("x")))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(localPath, root))

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriteGeneratesUniquePaths(t *testing.T) {
	store := New(t.TempDir())
	data := base64.StdEncoding.EncodeToString([]byte("same content"))

	first, err := store.Write(data)
	require.NoError(t, err)
	second, err := store.Write(data)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestWriteInvalidBase64(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Write("not base64 at all!!!")
	require.Error(t, err)
}

func TestReadMissingBlob(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Read(filepath.Join(t.TempDir(), "gone"))
	require.ErrorIs(t, err, ErrNotFound)
}
