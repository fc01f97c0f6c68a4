package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite_CreatesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	require.NoError(t, AtomicWrite(path, []byte("first"), 0o644))
	require.NoError(t, AtomicWrite(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.pdf")

	err := AtomicWrite(path, []byte("x"), 0o644)
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestAtomicWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")
	require.NoError(t, AtomicWrite(path, []byte("x"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.pdf", entries[0].Name())
}

func TestAtomicWrite_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644))

	err := AtomicWrite(target, []byte("pdf"), 0o644)
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}

func TestLockAndWrite_Concurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	var wg sync.WaitGroup
	for _, content := range []string{"aaaa", "bbbb", "cccc", "dddd"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, LockAndWrite(path, []byte(content), 0o644))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, []string{"aaaa", "bbbb", "cccc", "dddd"}, string(data))

	_, err = os.Stat(path + ".lock")
	assert.NoError(t, err, "lock file is kept for later writers")
}

func TestLockAndWrite_ReusesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	lockPath := path + ".lock"

	require.NoError(t, LockAndWrite(path, []byte("first"), 0o644))
	before, err := os.Stat(lockPath)
	require.NoError(t, err)

	require.NoError(t, LockAndWrite(path, []byte("second"), 0o644))
	after, err := os.Stat(lockPath)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after), "second write must lock the same inode")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
