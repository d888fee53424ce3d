package designator

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	"github.com/ImGajeed76/fskit/pkg/fskit/glob"
)

// Resolver resolves designators against a filesystem. All calls are
// synchronous and run on the caller's goroutine.
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a Resolver over the given filesystem. A nil fs means
// the operating system filesystem.
func NewResolver(fs afero.Fs) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Resolver{fs: fs}
}

// Resolve expands a designator into the concrete paths it denotes.
//
// Explicit designators resolve to their paths verbatim. Pattern and glob
// designators resolve to every entry of a one-level directory listing whose
// base name matches, joined with the directory, in listing order.
func (r *Resolver) Resolve(d Designator) ([]string, error) {
	switch d := d.(type) {
	case Explicit:
		return d.Paths, nil
	case PatternInDir:
		re, err := regexp.Compile(d.Expr)
		if err != nil {
			return nil, fmt.Errorf("designator: invalid pattern %q: %w", d.Expr, err)
		}
		return r.matchDir(d.Dir, re.MatchString)
	case GlobString:
		matcher, err := glob.Compile(filepath.Base(d.Pattern))
		if err != nil {
			return nil, err
		}
		return r.matchDir(filepath.Dir(d.Pattern), matcher.Match)
	default:
		return nil, fmt.Errorf("designator: unsupported designator type %T", d)
	}
}

func (r *Resolver) matchDir(dir string, match func(string) bool) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("designator: listing %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		if match(entry.Name()) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	return matches, nil
}

// AssertFiles resolves the designator and checks that every resolved path
// exists. It returns a NoSuchFilesError carrying every offending entry, or
// the designator description alone when a pattern designator matched
// nothing. A pattern with zero matches is always a failure, never an empty
// success.
func (r *Resolver) AssertFiles(d Designator) error {
	paths, err := r.Resolve(d)
	if err != nil {
		return err
	}

	if _, explicit := d.(Explicit); !explicit && len(paths) == 0 {
		return &NoSuchFilesError{Designator: d.Describe()}
	}

	var missing []string
	for _, p := range paths {
		if p == "" {
			missing = append(missing, p)
			continue
		}
		exists, err := afero.Exists(r.fs, p)
		if err != nil || !exists {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		return &NoSuchFilesError{Designator: d.Describe(), Missing: missing}
	}
	return nil
}

// MoveResult is the outcome of one rename attempted by MoveAll.
type MoveResult struct {
	Source string
	Dest   string
	Err    error
}

// MoveAll resolves the designator and renames every resolved path into
// targetDir, keeping its base name, in resolution order. Sources are not
// checked for existence first; use AssertFiles for that. Every element is
// attempted and reported individually — a failed rename never stops the
// remaining ones. The returned error covers resolution only.
func (r *Resolver) MoveAll(d Designator, targetDir string) ([]MoveResult, error) {
	paths, err := r.Resolve(d)
	if err != nil {
		return nil, err
	}

	results := make([]MoveResult, 0, len(paths))
	for _, src := range paths {
		res := MoveResult{Source: src}
		if src == "" {
			res.Err = fmt.Errorf("designator: empty source path")
		} else {
			res.Dest = filepath.Join(targetDir, filepath.Base(src))
			res.Err = r.fs.Rename(src, res.Dest)
		}
		results = append(results, res)
	}
	return results, nil
}
