package designator

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	require.NoError(t, fs.MkdirAll("/data", 0755))
	require.NoError(t, fs.MkdirAll("/empty", 0755))
	require.NoError(t, fs.MkdirAll("/dest", 0755))
	for _, name := range []string{"/data/a.txt", "/data/b.txt", "/data/notes.md", "/data/.hidden"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte(name), 0644))
	}

	return fs
}

func TestResolveExplicitVerbatim(t *testing.T) {
	r := NewResolver(newTestFs(t))

	paths := []string{"/data/a.txt", "", "/nope"}
	resolved, err := r.Resolve(Explicit{Paths: paths})
	require.NoError(t, err)
	assert.Equal(t, paths, resolved, "explicit paths must pass through untouched")
}

func TestResolveGlobString(t *testing.T) {
	r := NewResolver(newTestFs(t))

	resolved, err := r.Resolve(GlobString{Pattern: "/data/*.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/a.txt", "/data/b.txt"}, resolved)
}

func TestResolveGlobSkipsHiddenFiles(t *testing.T) {
	r := NewResolver(newTestFs(t))

	resolved, err := r.Resolve(GlobString{Pattern: "/data/*"})
	require.NoError(t, err)
	assert.NotContains(t, resolved, "/data/.hidden")

	resolved, err = r.Resolve(GlobString{Pattern: "/data/.*"})
	require.NoError(t, err)
	assert.Contains(t, resolved, "/data/.hidden")
}

func TestResolvePatternInDir(t *testing.T) {
	r := NewResolver(newTestFs(t))

	resolved, err := r.Resolve(PatternInDir{Dir: "/data", Expr: `.+\.(txt|md)$`})
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/a.txt", "/data/b.txt", "/data/notes.md"}, resolved)
}

func TestResolvePatternInDirBadExpr(t *testing.T) {
	r := NewResolver(newTestFs(t))

	_, err := r.Resolve(PatternInDir{Dir: "/data", Expr: `*broken`})
	assert.Error(t, err)
}

func TestResolveGlobBadPattern(t *testing.T) {
	r := NewResolver(newTestFs(t))

	_, err := r.Resolve(GlobString{Pattern: "/data/a}"})
	assert.Error(t, err)
}

func TestAssertFilesAllPresent(t *testing.T) {
	r := NewResolver(newTestFs(t))

	assert.NoError(t, r.AssertFiles(Explicit{Paths: []string{"/data/a.txt", "/data/b.txt"}}))
	assert.NoError(t, r.AssertFiles(GlobString{Pattern: "/data/*.txt"}))
}

func TestAssertFilesCollectsEveryMissingEntry(t *testing.T) {
	r := NewResolver(newTestFs(t))

	err := r.AssertFiles(Explicit{Paths: []string{"/data/a.txt", "/nope", "", "/data/b.txt"}})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoSuchFiles)

	var nsf *NoSuchFilesError
	require.True(t, errors.As(err, &nsf))
	assert.Equal(t, []string{"/nope", ""}, nsf.Missing)
}

func TestAssertFilesEmptyGlobMatchIsFailure(t *testing.T) {
	r := NewResolver(newTestFs(t))

	err := r.AssertFiles(GlobString{Pattern: "/empty/*.xyz"})
	require.Error(t, err)

	var nsf *NoSuchFilesError
	require.True(t, errors.As(err, &nsf))
	assert.Empty(t, nsf.Missing, "an unmatched pattern reports the designator, not entries")
	assert.Contains(t, nsf.Designator, "/empty/*.xyz")
}

func TestAssertFilesEmptyPatternMatchIsFailure(t *testing.T) {
	r := NewResolver(newTestFs(t))

	err := r.AssertFiles(PatternInDir{Dir: "/empty", Expr: `.*\.xyz$`})
	require.ErrorIs(t, err, ErrNoSuchFiles)
}

func TestMoveAllExplicit(t *testing.T) {
	fs := newTestFs(t)
	r := NewResolver(fs)

	results, err := r.MoveAll(Explicit{Paths: []string{"/data/a.txt", "/data/b.txt", "/data/notes.md"}}, "/dest")
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, res := range results {
		assert.NoError(t, res.Err, "moving %s", res.Source)

		gone, err := afero.Exists(fs, res.Source)
		require.NoError(t, err)
		assert.False(t, gone, "source %s should be gone", res.Source)

		there, err := afero.Exists(fs, res.Dest)
		require.NoError(t, err)
		assert.True(t, there, "destination %s should exist", res.Dest)
	}

	assert.Equal(t, "/dest/a.txt", results[0].Dest)
}

func TestMoveAllGlob(t *testing.T) {
	fs := newTestFs(t)
	r := NewResolver(fs)

	results, err := r.MoveAll(GlobString{Pattern: "/data/*.txt"}, "/dest")
	require.NoError(t, err)
	require.Len(t, results, 2)

	still, err := afero.Exists(fs, "/data/notes.md")
	require.NoError(t, err)
	assert.True(t, still, "unmatched files stay put")
}

func TestMoveAllAttemptsEveryElement(t *testing.T) {
	fs := newTestFs(t)
	r := NewResolver(fs)

	results, err := r.MoveAll(Explicit{Paths: []string{"/data/a.txt", "/missing", "/data/b.txt"}}, "/dest")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err, "missing source must surface per element")
	assert.NoError(t, results[2].Err, "a failed element must not stop the rest")
}

func TestNewResolverNilFs(t *testing.T) {
	assert.NotNil(t, NewResolver(nil))
}
