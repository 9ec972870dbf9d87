package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-console/internal/storage"
)

func TestWriteFileAtomic_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "users.json")

	require.NoError(t, storage.WriteFileAtomic(path, []byte("[]\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(data))
}

func TestWriteFileAtomic_OverwritesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.json")
	require.NoError(t, storage.WriteFileAtomic(path, []byte("old")))

	require.NoError(t, storage.WriteFileAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_LeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.json")

	require.NoError(t, storage.WriteFileAtomic(path, []byte("[]\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "rooms.json", entries[0].Name())
}

func TestWriteFileAtomic_FailedWriteLeavesOriginalIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	// A directory squatting on the temp path makes the write fail
	// before the rename.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	require.Error(t, storage.WriteFileAtomic(path, []byte("replacement")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))
}

func TestWriteFileAtomic_FailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "notadir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := storage.WriteFileAtomic(filepath.Join(blocker, "users.json"), []byte("[]\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "persist")
}
