package index

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// QueryAll returns every entry matching query, best match first.
//
// Entries whose own directory name contains query (case-insensitively) come
// first, ranked by score. When after names one of them, the list is rotated
// so that it resumes right after it and wraps around; an after that does not
// match query is ignored. Entries matching query only in a parent component
// follow in path order, excluding after and its sub-directories.
func (x *Index) QueryAll(query, after string) []Entry {
	lower := cases.Lower(language.Und)
	q := lower.String(query)

	var primary, fallback []Entry
	for p, s := range x.entries {
		e := Entry{Path: p, Score: s}
		switch {
		case strings.Contains(lower.String(filepath.Base(p)), q):
			primary = append(primary, e)
		case after != "" && within(p, after):
			// Never fall back to the current directory or below it.
		case anyComponentContains(p, q, lower):
			fallback = append(fallback, e)
		}
	}

	sortByRank(primary)
	if after != "" && strings.Contains(lower.String(filepath.Base(after)), q) {
		primary = rotateAfter(primary, after)
	}
	sort.Slice(fallback, func(i, j int) bool { return fallback[i].Path < fallback[j].Path })

	return append(primary, fallback...)
}

// QueryUnchecked returns the best match without checking that it still exists.
func (x *Index) QueryUnchecked(query, after string) (string, bool) {
	results := x.QueryAll(query, after)
	if len(results) == 0 {
		return "", false
	}
	return results[0].Path, true
}

// QueryChecked returns the best match that still exists on disk. Stale
// candidates ranked above it are removed from the index.
func (x *Index) QueryChecked(query, after string) (string, bool) {
	for _, e := range x.QueryAll(query, after) {
		if x.exists(e.Path) {
			return e.Path, true
		}
		delete(x.entries, e.Path)
	}
	return "", false
}

func rotateAfter(ranked []Entry, after string) []Entry {
	for i, e := range ranked {
		if e.Path != after {
			continue
		}
		out := make([]Entry, 0, len(ranked))
		out = append(out, ranked[i+1:]...)
		return append(out, ranked[:i+1]...)
	}
	return ranked
}

// within reports whether p is dir itself or lives below it. Everything lives
// below the root, so the root only contains itself.
func within(p, dir string) bool {
	if p == dir {
		return true
	}
	if IsRoot(dir) {
		return false
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

func anyComponentContains(p, q string, lower cases.Caser) bool {
	for _, part := range strings.Split(p, string(filepath.Separator)) {
		if part != "" && strings.Contains(lower.String(part), q) {
			return true
		}
	}
	return false
}
