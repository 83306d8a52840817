package cmd

import (
	"errors"
	"fmt"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/kamusis/jumpy/internal/store"
)

// withIndex runs fn against the index loaded from disk and writes the index
// back only if its encoding changed. The file stays locked throughout.
//
// The index is saved even when fn fails, so that self-healing removals made
// before the failure (query --checked finding nothing) are kept.
func withIndex(fn func(x *index.Index) error) error {
	path, err := indexPath()
	if err != nil {
		return err
	}
	return withIndexAt(path, fn)
}

func withIndexAt(path string, fn func(x *index.Index) error) error {
	f, err := store.Open(path, cfg.LockTimeout)
	if err != nil {
		return err
	}
	defer f.Close()

	x, err := index.Decode(f.Contents())
	if err != nil {
		return fmt.Errorf("cannot decode index %s: %w", path, err)
	}

	runErr := fn(x)
	if _, err := f.Save(x.Encode()); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}
