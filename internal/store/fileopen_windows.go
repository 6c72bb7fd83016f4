//go:build windows

package store

import "os"

// openFileNoFollow opens a file for writing.
// On Windows, O_NOFOLLOW is not available. Symlink creation needs elevated
// privileges there, and WriteFileAtomic still refuses a symlinked target.
func openFileNoFollow(path string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, flag, perm)
}
