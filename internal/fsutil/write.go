// Package fsutil writes output files so that readers never observe a
// partially written document.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// AtomicWrite writes data to a temporary file in the destination directory
// and renames it over path. On failure the destination is left unchanged and
// the temporary file is removed. The destination directory must exist.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	tmp = nil
	return nil
}

// LockAndWrite holds an exclusive lock on path+".lock" while performing an
// AtomicWrite, so two runs targeting the same output cannot interleave. The
// lock file is left in place so every writer locks the same inode.
func LockAndWrite(path string, data []byte, perm os.FileMode) error {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)

	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock on %s: %w", lockPath, err)
	}
	defer lock.Unlock()

	return AtomicWrite(path, data, perm)
}
