package path

import (
	"log"
	"os"
)

// TempFile creates a new temporary file in dir (the default temp directory
// when dir is empty) and returns its path. The file is created closed; the
// caller owns its removal.
func TempFile(dir string, pattern string) (*Path, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, &PathError{Op: "tempfile", Path: dir, Err: err}
	}

	name := file.Name()
	if err := file.Close(); err != nil {
		log.Printf("error closing file: %v", err)
	}

	return New(name), nil
}

// TempDir creates a new temporary directory in dir (the default temp
// directory when dir is empty) and returns its path. The caller owns its
// removal.
func TempDir(dir string, pattern string) (*Path, error) {
	name, err := os.MkdirTemp(dir, pattern)
	if err != nil {
		return nil, &PathError{Op: "tempdir", Path: dir, Err: err}
	}

	return New(name), nil
}
