// Package fskit is the convenience front door of the toolkit: operations
// that accept any designator shape (a path slice, a compiled regexp over
// "dir/pattern", or a glob string) and run it against the operating system
// filesystem.
package fskit

import (
	"github.com/spf13/afero"

	"github.com/ImGajeed76/fskit/pkg/fskit/designator"
)

var osResolver = designator.NewResolver(afero.NewOsFs())

// Resolve expands any designator shape into the concrete paths it denotes.
func Resolve(v any) ([]string, error) {
	d, err := designator.From(v)
	if err != nil {
		return nil, err
	}
	return osResolver.Resolve(d)
}

// AssertFiles checks that every file the designator denotes exists. It
// fails with a designator.NoSuchFilesError listing every missing entry, and
// treats a pattern that matches nothing as a failure.
func AssertFiles(v any) error {
	d, err := designator.From(v)
	if err != nil {
		return err
	}
	return osResolver.AssertFiles(d)
}

// Move renames every file the designator denotes into targetDir, keeping
// base names. Each element is attempted and reported individually; sources
// are not pre-checked for existence.
func Move(v any, targetDir string) ([]designator.MoveResult, error) {
	d, err := designator.From(v)
	if err != nil {
		return nil, err
	}
	return osResolver.MoveAll(d, targetDir)
}
