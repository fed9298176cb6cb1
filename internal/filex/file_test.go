package filex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureFile_CreatesFileAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "users.jsonl")

	require.NoError(t, EnsureFile(path))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.False(t, fi.IsDir())
	require.Zero(t, fi.Size())
}

func TestEnsureFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("keep me\n"), 0o600))

	require.NoError(t, EnsureFile(path))
	require.NoError(t, EnsureFile(path), "must be idempotent")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "keep me\n", string(b))
}

func TestEnsureFile_FailsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, EnsureFile(dir))
}

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new\n")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteFileAtomic_WriterErrorKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	boom := errors.New("boom")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
