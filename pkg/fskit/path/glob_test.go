package path

import (
	"path/filepath"
	"testing"
)

func globDir(t *testing.T) *Path {
	t.Helper()
	d := New(t.TempDir())

	for _, name := range []string{"a.txt", "b.txt", "c.md", ".hidden"} {
		if err := d.Join(name).WriteBytes([]byte(name)); err != nil {
			t.Fatal(err)
		}
	}
	sub := d.Join("sub")
	if err := sub.MakeDir(false, false); err != nil {
		t.Fatal(err)
	}
	if err := sub.Join("deep.txt").WriteBytes([]byte("deep")); err != nil {
		t.Fatal(err)
	}

	return d
}

func names(paths []*Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.Name()
	}
	return out
}

func TestGlob(t *testing.T) {
	d := globDir(t)

	tests := []struct {
		name    string
		pattern string
		want    map[string]bool
	}{
		{
			name:    "Extension filter",
			pattern: "*.txt",
			want:    map[string]bool{"a.txt": true, "b.txt": true},
		},
		{
			name:    "Star skips hidden files",
			pattern: "*",
			want:    map[string]bool{"a.txt": true, "b.txt": true, "c.md": true, "sub": true},
		},
		{
			name:    "Dot pattern finds hidden files",
			pattern: ".*",
			want:    map[string]bool{".hidden": true},
		},
		{
			name:    "Alternation",
			pattern: "*.{txt,md}",
			want:    map[string]bool{"a.txt": true, "b.txt": true, "c.md": true},
		},
		{
			name:    "No matches",
			pattern: "*.xyz",
			want:    map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := d.Glob(tt.pattern)
			if err != nil {
				t.Fatalf("Glob(%q) error: %v", tt.pattern, err)
			}
			if len(matches) != len(tt.want) {
				t.Errorf("Glob(%q) returned %v, want %v", tt.pattern, names(matches), tt.want)
			}
			for _, m := range matches {
				if !tt.want[m.Name()] {
					t.Errorf("Glob(%q) unexpectedly matched %q", tt.pattern, m.Name())
				}
			}
		})
	}
}

func TestGlobOneLevelOnly(t *testing.T) {
	d := globDir(t)

	matches, err := d.Glob("*.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if m.Name() == "deep.txt" {
			t.Error("Glob() crossed into a subdirectory")
		}
	}
}

func TestGlobMalformedPattern(t *testing.T) {
	d := globDir(t)

	if _, err := d.Glob("a}"); err == nil {
		t.Error("Glob() accepted a malformed pattern")
	}
}

func TestGlobRecursive(t *testing.T) {
	d := globDir(t)

	matches, err := d.GlobRecursive("**/*.txt")
	if err != nil {
		t.Fatalf("GlobRecursive() error: %v", err)
	}

	found := map[string]bool{}
	for _, m := range matches {
		found[m.Name()] = true
	}
	for _, want := range []string{"a.txt", "b.txt", "deep.txt"} {
		if !found[want] {
			t.Errorf("GlobRecursive() missed %q (got %v)", want, names(matches))
		}
	}
}

func TestTempFile(t *testing.T) {
	dir := t.TempDir()

	p, err := TempFile(dir, "fskit-*.tmp")
	if err != nil {
		t.Fatalf("TempFile() error: %v", err)
	}
	if !p.IsFile() {
		t.Error("TempFile() did not create a file")
	}
	if filepath.Dir(filepath.FromSlash(p.String())) != dir {
		t.Errorf("TempFile() created %q outside %q", p, dir)
	}
}

func TestTempDir(t *testing.T) {
	dir := t.TempDir()

	p, err := TempDir(dir, "fskit-*")
	if err != nil {
		t.Fatalf("TempDir() error: %v", err)
	}
	if !p.IsDir() {
		t.Error("TempDir() did not create a directory")
	}
}
