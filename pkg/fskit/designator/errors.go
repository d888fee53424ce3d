package designator

import (
	"errors"
	"strings"
)

// ErrNoSuchFiles is the category matched by errors.Is for any
// NoSuchFilesError.
var ErrNoSuchFiles = errors.New("no such files")

// NoSuchFilesError reports a designator whose files could not be asserted:
// either named entries are absent (Missing lists every one of them, not just
// the first) or a pattern designator matched nothing (Missing is empty and
// Designator carries the pattern description).
type NoSuchFilesError struct {
	Designator string
	Missing    []string
}

func (e *NoSuchFilesError) Error() string {
	if len(e.Missing) == 0 {
		return "no files match " + e.Designator
	}
	return "missing files for " + e.Designator + ": " + strings.Join(e.Missing, ", ")
}

func (e *NoSuchFilesError) Is(target error) bool {
	return errors.Is(target, ErrNoSuchFiles)
}
