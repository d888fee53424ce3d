package fskit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImGajeed76/fskit/pkg/fskit/designator"
)

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(paths[i], []byte(name), 0644))
	}
	return paths
}

func TestAssertFilesExplicit(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, "a.txt", "b.txt")

	assert.NoError(t, AssertFiles(paths))

	err := AssertFiles(append(paths, filepath.Join(dir, "missing.txt")))
	assert.ErrorIs(t, err, designator.ErrNoSuchFiles)
}

func TestAssertFilesGlob(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt")

	assert.NoError(t, AssertFiles(filepath.Join(dir, "*.txt")))
	assert.ErrorIs(t, AssertFiles(filepath.Join(dir, "*.xyz")), designator.ErrNoSuchFiles)
}

func TestResolveGlob(t *testing.T) {
	dir := t.TempDir()
	want := writeFiles(t, dir, "a.txt", "b.txt")
	writeFiles(t, dir, "c.md")

	got, err := Resolve(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	dest := t.TempDir()
	paths := writeFiles(t, dir, "a.txt", "b.txt", "c.txt")

	results, err := Move(paths, dest)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, res := range results {
		assert.NoError(t, res.Err)
		assert.NoFileExists(t, res.Source)
		assert.FileExists(t, res.Dest)
		assert.Equal(t, dest, filepath.Dir(res.Dest))
	}
}

func TestUnsupportedDesignator(t *testing.T) {
	err := AssertFiles(struct{}{})
	assert.Error(t, err)
}
