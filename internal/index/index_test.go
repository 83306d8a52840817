package index

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// tempRoot returns a symlink-free temp directory so expected keys match
// what Canonicalize produces (macOS puts TempDir behind /var -> /private/var).
func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	p := filepath.Join(parts...)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func mustScore(t *testing.T, x *Index, p string) uint64 {
	t.Helper()
	s, ok := x.Score(p)
	if !ok {
		t.Fatalf("%s is not registered", p)
	}
	return s
}

func TestAdd_RegistersWithScoreOne(t *testing.T) {
	dir := mkdir(t, tempRoot(t), "proj")
	x := New()
	if err := x.Add(dir); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := mustScore(t, x, dir); got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
}

func TestAdd_KeepsExistingScore(t *testing.T) {
	dir := mkdir(t, tempRoot(t), "proj")
	x := New()
	for i := 0; i < 3; i++ {
		if err := x.Inc(dir, false); err != nil {
			t.Fatal(err)
		}
	}
	if err := x.Add(dir); err != nil {
		t.Fatal(err)
	}
	if err := x.Add(dir); err != nil {
		t.Fatal(err)
	}
	if got := mustScore(t, x, dir); got != 3 {
		t.Fatalf("score = %d, want 3", got)
	}
	if x.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", x.Len())
	}
}

func TestAdd_Rejects(t *testing.T) {
	root := tempRoot(t)
	file := filepath.Join(root, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmptyPath},
		{"missing", filepath.Join(root, "nope"), ErrNotFound},
		{"regular file", file, ErrNotFound},
	}
	for _, c := range cases {
		x := New()
		if err := x.Add(c.in); !errors.Is(err, c.want) {
			t.Fatalf("%s: Add(%q) err=%v want %v", c.name, c.in, err, c.want)
		}
		if err := x.Inc(c.in, false); !errors.Is(err, c.want) {
			t.Fatalf("%s: Inc(%q) err=%v want %v", c.name, c.in, err, c.want)
		}
		if x.Len() != 0 {
			t.Fatalf("%s: index should stay empty", c.name)
		}
	}
}

func TestAdd_RejectsUnencodableNames(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("needs a filesystem that accepts arbitrary bytes in names")
	}
	root := tempRoot(t)
	keep := mkdir(t, root, "keep")
	for _, name := range []string{"evil\nname", "trail\r", "bad\xff"} {
		dir := filepath.Join(root, name)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Skipf("cannot create %q: %v", name, err)
		}
		x := New()
		if err := x.Add(keep); err != nil {
			t.Fatal(err)
		}
		if err := x.Add(dir); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("Add(%q) err=%v, want ErrInvalidEncoding", name, err)
		}
		if err := x.Inc(dir, true); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("Inc(%q) err=%v, want ErrInvalidEncoding", name, err)
		}
		if x.Len() != 1 {
			t.Fatalf("%q was registered: %v", name, x.Entries())
		}
		if _, err := Decode(x.Encode()); err != nil {
			t.Fatalf("encoding no longer decodes: %v", err)
		}
	}
}

func TestIndex_ZeroValueIsUsable(t *testing.T) {
	root := tempRoot(t)
	dir := mkdir(t, root, "proj")
	gone := mkdir(t, root, "gone")

	var x Index
	if got := x.Cleanup(); len(got) != 0 {
		t.Fatalf("Cleanup on empty index = %v", got)
	}
	if err := x.Add(dir); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := x.Inc(gone, false); err != nil {
		t.Fatalf("Inc: %v", err)
	}
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}
	if got := x.Cleanup(); len(got) != 1 || got[0] != gone {
		t.Fatalf("Cleanup = %v, want [%s]", got, gone)
	}
	if got := mustScore(t, &x, dir); got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
}

func TestAdd_SkipsRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix root")
	}
	x := New()
	if err := x.Add("/"); err != nil {
		t.Fatalf("Add(/): %v", err)
	}
	if err := x.Inc("/", true); err != nil {
		t.Fatalf("Inc(/): %v", err)
	}
	if x.Len() != 0 {
		t.Fatalf("root must not be tracked, got %v", x.Entries())
	}
}

func TestAdd_CanonicalizesRelativeAndSymlink(t *testing.T) {
	root := tempRoot(t)
	target := mkdir(t, root, "real", "target")
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	chdir(t, root)

	x := New()
	if err := x.Add("real/target"); err != nil {
		t.Fatalf("Add relative: %v", err)
	}
	if err := x.Inc(link, false); err != nil {
		t.Fatalf("Inc symlink: %v", err)
	}
	if x.Len() != 1 {
		t.Fatalf("expected one canonical entry, got %v", x.Entries())
	}
	if got := mustScore(t, x, target); got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
}

func TestInc_Monotonic(t *testing.T) {
	dir := mkdir(t, tempRoot(t), "proj")
	x := New()
	for i := 1; i <= 5; i++ {
		if err := x.Inc(dir, false); err != nil {
			t.Fatal(err)
		}
		if got := mustScore(t, x, dir); got != uint64(i) {
			t.Fatalf("after %d incs score = %d", i, got)
		}
	}
}

func TestInc_Saturates(t *testing.T) {
	dir := mkdir(t, tempRoot(t), "proj")
	x := New()
	x.entries[dir] = math.MaxUint64 - 1
	for i := 0; i < 3; i++ {
		if err := x.Inc(dir, false); err != nil {
			t.Fatal(err)
		}
	}
	if got := mustScore(t, x, dir); got != math.MaxUint64 {
		t.Fatalf("score = %d, want saturation at max", got)
	}
}

func TestInc_Top(t *testing.T) {
	root := tempRoot(t)
	fresh := mkdir(t, root, "fresh")
	known := mkdir(t, root, "known")

	x := New()
	if err := x.Inc(fresh, true); err != nil {
		t.Fatal(err)
	}
	if got := mustScore(t, x, fresh); got != PromotedScore {
		t.Fatalf("new top entry score = %d, want %d", got, PromotedScore)
	}

	if err := x.Add(known); err != nil {
		t.Fatal(err)
	}
	if err := x.Inc(known, true); err != nil {
		t.Fatal(err)
	}
	if err := x.Inc(known, false); err != nil {
		t.Fatal(err)
	}
	if got := mustScore(t, x, known); got != TopScore {
		t.Fatalf("promoted score = %d, want %d", got, TopScore)
	}

	// A promoted fresh entry can still be topped.
	if err := x.Inc(fresh, true); err != nil {
		t.Fatal(err)
	}
	if got := mustScore(t, x, fresh); got != TopScore {
		t.Fatalf("re-promoted score = %d", got)
	}
}

func TestRemove(t *testing.T) {
	x := New()
	x.entries["/a/foo"] = 4
	if err := x.Remove("/a/bar"); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("Remove unknown: err=%v", err)
	}
	if err := x.Remove("/a/foo"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if x.Len() != 0 {
		t.Fatalf("entry not removed")
	}
}

func TestCleanup_RemovesStale(t *testing.T) {
	root := tempRoot(t)
	keep := mkdir(t, root, "keep")
	gone := mkdir(t, root, "gone")

	x := New()
	for _, p := range []string{keep, gone} {
		if err := x.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.RemoveAll(gone); err != nil {
		t.Fatal(err)
	}

	removed := x.Cleanup()
	if len(removed) != 1 || removed[0] != gone {
		t.Fatalf("removed = %v, want [%s]", removed, gone)
	}
	if _, ok := x.Score(keep); !ok {
		t.Fatalf("existing directory was dropped")
	}
	if again := x.Cleanup(); len(again) != 0 {
		t.Fatalf("second cleanup removed %v", again)
	}
}

func TestClear(t *testing.T) {
	x := New()
	x.entries["/a"] = 1
	x.entries["/b"] = 2
	x.Clear()
	if x.Len() != 0 {
		t.Fatalf("Clear left %d entries", x.Len())
	}
	x.Clear()
}

func TestEntriesAndPaths_Order(t *testing.T) {
	x := New()
	x.entries["/c"] = 2
	x.entries["/a"] = 2
	x.entries["/b"] = 7

	entries := x.Entries()
	want := []Entry{{"/b", 7}, {"/a", 2}, {"/c", 2}}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("Entries()[%d] = %v, want %v", i, entries[i], want[i])
		}
	}

	paths := x.Paths()
	if paths[0] != "/a" || paths[1] != "/b" || paths[2] != "/c" {
		t.Fatalf("Paths() = %v", paths)
	}
}
