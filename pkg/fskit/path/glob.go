package path

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ImGajeed76/fskit/pkg/fskit/glob"
)

// Glob returns the entries directly under the directory whose base names
// match the glob pattern, in listing order. Wildcards do not cross path
// separators and skip hidden files unless the pattern starts with a dot.
func (p *Path) Glob(pattern string) ([]*Path, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, &PathError{Op: "glob", Path: p.path, Err: err}
	}

	entries, err := p.List()
	if err != nil {
		return nil, err
	}

	var matches []*Path
	for _, entry := range entries {
		if matcher.Match(entry.Name()) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// GlobRecursive matches pattern against the whole tree rooted at the
// directory. Unlike Glob, '**' is supported and crosses separators.
func (p *Path) GlobRecursive(pattern string) ([]*Path, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &PathError{Op: "glob", Path: p.path, Err: doublestar.ErrBadPattern}
	}

	names, err := doublestar.Glob(os.DirFS(p.path), pattern)
	if err != nil {
		return nil, &PathError{Op: "glob", Path: p.path, Err: err}
	}

	matches := make([]*Path, 0, len(names))
	for _, name := range names {
		if child := p.Join(name); child != nil {
			matches = append(matches, child)
		}
	}
	return matches, nil
}
