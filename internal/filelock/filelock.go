// Package filelock provides locked, atomic file writes so that concurrent
// pubcop runs (for example parallel CI jobs in a monorepo) never interleave
// partial reports.
package filelock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryDelay is how often a contended lock is retried
const lockRetryDelay = 50 * time.Millisecond

// FileLock wraps a flock file lock for coordinating access to a file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock backed by the file at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires an exclusive lock, retrying until ctx is done.
func (fl *FileLock) Lock(ctx context.Context) error {
	locked, err := fl.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock on %s", fl.path)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite writes data to path through a temp file in the same directory
// followed by a rename, so readers see either the old or the new content.
// Missing parent directories are created.
func AtomicWrite(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	return nil
}

// LockAndWrite holds "<path>.lock" while atomically writing path. The lock
// file stays in place so every writer locks the same inode.
func LockAndWrite(ctx context.Context, path string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	lockPath := path + ".lock"
	lock := NewFileLock(lockPath)
	if err := lock.Lock(ctx); err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	return AtomicWrite(path, data)
}
