// Package storage provides the durable file writer used by every
// repository.  A snapshot is written to a temporary file in the
// target directory, synced, then renamed onto the destination, so a
// reader of the destination path only ever observes fully-old or
// fully-new content.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path via a same-directory temp
// file and an atomic rename.  The parent directory is created if
// missing.  On any failure before the rename the original file is
// left untouched and the temp file is removed best-effort.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("persist %s: %w", path, err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("persist %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("persist %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("persist %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("persist %s: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		// Rename can fail when path crosses a filesystem boundary
		// (e.g. a symlinked data dir); fall back to copying.
		if copyErr := copyThenRemoveTemp(tmp, path); copyErr != nil {
			os.Remove(tmp)
			return fmt.Errorf("persist %s: %w", path, err)
		}
	}
	return nil
}

func copyThenRemoveTemp(tmp, path string) error {
	src, err := os.Open(tmp)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return os.Remove(tmp)
}
