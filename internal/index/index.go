// Package index implements jumpy's scored directory index: a map from
// canonical directory path to visit score, with fuzzy lookup, cyclic
// "next match" paging, and a plain-text encoding.
package index

import (
	"fmt"
	"math"
	"sort"
)

const (
	// TopScore is given to an existing entry promoted with Inc(p, true).
	TopScore uint64 = math.MaxUint64
	// PromotedScore is given to a new entry promoted with Inc(p, true). It ranks
	// above accrued scores and still leaves room for a later TopScore.
	PromotedScore uint64 = math.MaxUint64 / 2
)

// DirChecker reports whether path currently exists as a directory.
type DirChecker func(path string) bool

// Entry is one tracked directory.
type Entry struct {
	Path  string
	Score uint64
}

// Index is the in-memory scored directory index. It is not safe for
// concurrent use. The zero value is an empty index that checks the real
// filesystem, the same as New.
type Index struct {
	entries map[string]uint64
	isDir   DirChecker
}

// New returns an empty index that checks the real filesystem.
func New() *Index {
	return &Index{entries: make(map[string]uint64), isDir: IsDir}
}

// SetDirChecker replaces the existence oracle used by Add, Inc, QueryChecked
// and Cleanup. A nil checker restores the default.
func (x *Index) SetDirChecker(fn DirChecker) {
	if fn == nil {
		fn = IsDir
	}
	x.isDir = fn
}

func (x *Index) exists(p string) bool {
	if x.isDir == nil {
		return IsDir(p)
	}
	return x.isDir(p)
}

// Add registers p with score 1. An already registered path keeps its score.
func (x *Index) Add(p string) error {
	return x.register(p, 1, func(s uint64) uint64 { return s })
}

// Inc records a visit to p. With top set, p is promoted above every
// frequency-based score instead.
func (x *Index) Inc(p string, top bool) error {
	if top {
		return x.register(p, PromotedScore, func(uint64) uint64 { return TopScore })
	}
	return x.register(p, 1, func(s uint64) uint64 {
		if s == math.MaxUint64 {
			return s
		}
		return s + 1
	})
}

func (x *Index) register(p string, initial uint64, update func(uint64) uint64) error {
	if p == "" {
		return ErrEmptyPath
	}
	if !x.exists(p) {
		return fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	canon, err := Canonicalize(p)
	if err != nil {
		return err
	}
	// The root would match every query through the fallback set.
	if IsRoot(canon) {
		return nil
	}
	x.upsert(canon, initial, update)
	return nil
}

// upsert applies update to the score of path, or inserts initial if absent.
func (x *Index) upsert(path string, initial uint64, update func(uint64) uint64) {
	if x.entries == nil {
		x.entries = make(map[string]uint64)
	}
	if s, ok := x.entries[path]; ok {
		x.entries[path] = update(s)
		return
	}
	x.entries[path] = initial
}

// Remove deletes an already canonicalized path.
func (x *Index) Remove(p string) error {
	if _, ok := x.entries[p]; !ok {
		return fmt.Errorf("%s: %w", p, ErrNotRegistered)
	}
	delete(x.entries, p)
	return nil
}

// Cleanup removes every entry whose directory no longer exists and returns
// the removed paths in alphabetical order.
func (x *Index) Cleanup() []string {
	var removed []string
	for p := range x.entries {
		if !x.exists(p) {
			removed = append(removed, p)
		}
	}
	sort.Strings(removed)
	for _, p := range removed {
		delete(x.entries, p)
	}
	return removed
}

// Clear empties the index.
func (x *Index) Clear() {
	x.entries = make(map[string]uint64)
}

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.entries) }

// Score returns the score of path and whether it is registered.
func (x *Index) Score(path string) (uint64, bool) {
	s, ok := x.entries[path]
	return s, ok
}

// Entries returns all entries ranked by score (descending), then by path.
func (x *Index) Entries() []Entry {
	out := make([]Entry, 0, len(x.entries))
	for p, s := range x.entries {
		out = append(out, Entry{Path: p, Score: s})
	}
	sortByRank(out)
	return out
}

// Paths returns every registered path in alphabetical order.
func (x *Index) Paths() []string {
	out := make([]string, 0, len(x.entries))
	for p := range x.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func sortByRank(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Score > entries[j].Score
	})
}
