package index

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Canonicalize resolves p to the absolute, symlink-free form used as an index key.
func Canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", p, ErrNotFound)
		}
		return "", fmt.Errorf("cannot canonicalize %s: %w", p, err)
	}
	resolved = simplifyVolume(filepath.Clean(resolved))
	// Keys are stored one per line, so a line break would split the entry.
	if !utf8.ValidString(resolved) || strings.ContainsAny(resolved, "\r\n") {
		return "", fmt.Errorf("%q: %w", resolved, ErrInvalidEncoding)
	}
	return resolved, nil
}

// IsRoot reports whether p is a filesystem root ("/", `C:\`).
func IsRoot(p string) bool {
	return filepath.Dir(p) == p
}

// IsDir is the default DirChecker. Any stat failure counts as missing.
func IsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
