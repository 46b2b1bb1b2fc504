package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// CacheLock serializes access to the package cache across goroutines and
// across processes sharing the same cache directory.
type CacheLock struct {
	path string
	mu   sync.Mutex
}

// NewCacheLock creates a lock backed by the file at path.
func NewCacheLock(path string) *CacheLock {
	return &CacheLock{path: path}
}

// Lock blocks until the lock is held and returns its release function.
func (l *CacheLock) Lock() (func(), error) {
	l.mu.Lock()

	if err := os.MkdirAll(filepath.Dir(l.path), domain.DirPerm); err != nil {
		l.mu.Unlock()
		return nil, lockFailed(l.path, err)
	}

	//nolint:gosec // lock file lives in the cache root
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		l.mu.Unlock()
		return nil, lockFailed(l.path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		l.mu.Unlock()
		return nil, lockFailed(l.path, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
			_ = f.Close()
			l.mu.Unlock()
		})
	}, nil
}

func lockFailed(path string, err error) error {
	return zerr.With(fmt.Errorf("%w %s: %w", domain.ErrCacheLockFailed, path, err), "path", path)
}
