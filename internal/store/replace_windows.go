//go:build windows

package store

import (
	"time"

	"golang.org/x/sys/windows"
)

// replaceFile moves src over dst.
//
// Antivirus and indexers can briefly hold a handle on the index file, so the
// move is retried for a short period before giving up.
func replaceFile(src, dst string) error {
	from, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return err
	}
	to, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return err
	}

	const flags = windows.MOVEFILE_REPLACE_EXISTING | windows.MOVEFILE_WRITE_THROUGH
	var lastErr error
	for i := 0; i < 10; i++ {
		if lastErr = windows.MoveFileEx(from, to, flags); lastErr == nil {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return lastErr
}
