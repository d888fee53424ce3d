package helpers

import "runtime"

// GetOptimalBufferSize returns the buffer size to use for a file of the
// given size, scaled by available CPU cores and capped at 1MB.
func GetOptimalBufferSize(fileSize int64) int {
	// Base buffer size (4KB)
	baseSize := 4 * 1024

	// For small files, use file size as buffer size
	if fileSize < int64(baseSize) {
		return int(fileSize)
	}

	scaledSize := baseSize * runtime.GOMAXPROCS(0)

	maxSize := 1 * 1024 * 1024
	if scaledSize > maxSize {
		return maxSize
	}

	return scaledSize
}
