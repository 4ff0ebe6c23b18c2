package fsutil

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	// Larger than the copy buffer so several chunks are written.
	data := bytes.Repeat([]byte("0123456789abcdef"), 3*copyBufferSize/16+7)
	require.NoError(t, os.WriteFile(src, data, 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("stale content that is longer than nothing"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))

	require.ErrorIs(t, err, os.ErrNotExist)
	require.False(t, Exists(filepath.Join(dir, "dst")))
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o640))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the temporary file must not be left behind")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "f.png"), []byte("x"), 0o644)

	require.Error(t, err)
}

func TestPreserveAttributes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, nil, 0o600))
	require.NoError(t, os.WriteFile(dst, nil, 0o644))

	stamp := time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, stamp, stamp))
	info, err := os.Stat(src)
	require.NoError(t, err)

	require.NoError(t, PreserveAttributes(dst, info))

	got, err := os.Stat(dst)
	require.NoError(t, err)
	require.True(t, stamp.Equal(got.ModTime()))
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o600), got.Mode().Perm())
	}
}

func TestBackupName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dir/image.png.bak", BackupName("dir/image.png"))
}
