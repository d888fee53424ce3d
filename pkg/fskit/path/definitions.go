package path

import (
	"io/fs"
	"time"
)

type FileMode uint32

type FileInfo struct {
	name    string    // base name of the file
	size    int64     // length in bytes
	mode    FileMode  // file mode bits
	modTime time.Time // modification time
	isDir   bool      // is a directory
}

func (fi *FileInfo) Name() string       { return fi.name }
func (fi *FileInfo) Size() int64        { return fi.size }
func (fi *FileInfo) Mode() FileMode     { return fi.mode }
func (fi *FileInfo) ModTime() time.Time { return fi.modTime }
func (fi *FileInfo) IsDir() bool        { return fi.isDir }
func (fi *FileInfo) Sys() interface{}   { return nil }

type PathOption struct {
	// Permissions for new files/directories
	Permissions FileMode
	// Whether to preserve file attributes during copy
	PreserveAttributes bool
	// Buffer size for copy operations
	BufferSize int
	// Timeout for operations
	Timeout time.Duration
}

func DefaultPathOption() PathOption {
	return PathOption{
		Permissions:        0644,
		PreserveAttributes: true,
		BufferSize:         1024 * 1024, // 1MB
		Timeout:            60 * time.Second,
	}
}

type CopyOptions struct {
	PathOption
	// Whether to follow symlinks
	FollowSymlinks bool
	// Whether to copy recursively
	Recursive bool
	// ProgressFunc callback
	ProgressFunc func(total, copied int64)
}

var (
	ErrNotExist   = fs.ErrNotExist   // Item does not exist
	ErrExist      = fs.ErrExist      // Item already exists
	ErrPermission = fs.ErrPermission // Permission denied
	ErrInvalid    = fs.ErrInvalid    // Invalid operation
	ErrClosed     = fs.ErrClosed     // File already closed
)

type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Path is a local filesystem path. The zero value is not usable; construct
// with New.
type Path struct {
	path string
}
