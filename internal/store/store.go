// Package store loads and persists the index file under an advisory lock, so
// that two shells finishing a command at the same time cannot interleave
// their read-modify-write cycles.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// DefaultLockTimeout is used when Open is given a zero timeout.
const DefaultLockTimeout = 2 * time.Second

// File is an index file opened for one command.
type File struct {
	path     string
	contents string
	lock     *flock.Flock
}

// LockPath returns the lock file guarding path.
func LockPath(path string) string {
	return path + ".lock"
}

// Open locks path and reads its contents. A missing file reads as empty.
// The caller must Close the returned File.
func Open(path string, timeout time.Duration) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("index path is required")
	}
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create index dir: %w", err)
	}

	l, err := acquire(LockPath(path), timeout)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		_ = l.Unlock()
		return nil, fmt.Errorf("cannot read index file %s: %w", path, err)
	}
	return &File{path: path, contents: string(data), lock: l}, nil
}

// Probe reports an error when the lock on path cannot be taken within
// timeout. The lock is released right away.
func Probe(path string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	if _, err := os.Stat(filepath.Dir(path)); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	l, err := acquire(LockPath(path), timeout)
	if err != nil {
		return err
	}
	return l.Unlock()
}

// LeftoverTempFiles returns temp files that an interrupted Save left next
// to path.
func LeftoverTempFiles(path string) []string {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	prefix := tempPrefix(path)
	var found []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	return found
}

func tempPrefix(path string) string {
	return filepath.Base(path) + ".tmp-"
}

// acquire retries TryLock until timeout elapses.
func acquire(lockPath string, timeout time.Duration) (*flock.Flock, error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire index lock: %w", err)
		}
		if locked {
			return l, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("index is locked by another jumpy process (lock: %s)", lockPath)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// Contents returns the text read by Open, or the text last saved.
func (f *File) Contents() string { return f.contents }

// Save writes text when it differs from the current contents. It reports
// whether the file was written.
func (f *File) Save(text string) (bool, error) {
	if text == f.contents {
		return false, nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), tempPrefix(f.path)+"*")
	if err != nil {
		return false, fmt.Errorf("cannot create temp index file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return false, fmt.Errorf("cannot write index file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return false, fmt.Errorf("cannot write index file: %w", err)
	}
	if err := replaceFile(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return false, fmt.Errorf("cannot write index file %s: %w", f.path, err)
	}
	f.contents = text
	return true, nil
}

// Close releases the lock. The lock file itself is left in place.
func (f *File) Close() error {
	if f.lock == nil {
		return nil
	}
	err := f.lock.Unlock()
	f.lock = nil
	return err
}
