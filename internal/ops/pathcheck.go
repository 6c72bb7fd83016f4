package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
)

// PathCheckMode indicates whether the path check is for reading or writing.
type PathCheckMode int

const (
	PathCheckRead  PathCheckMode = iota // for import (read file)
	PathCheckWrite                      // for export (write file)
)

// checklistExts are the accepted extensions for markdown checklists.
var checklistExts = []string{".md", ".markdown"}

// ValidatePath checks an import/export path:
// 1. Path traversal (.. sequences)
// 2. Extension (.md or .markdown)
// 3. Not the store file itself
// 4. Not a symlink; for reads, the file must exist
//
// It returns the cleaned absolute path.
func ValidatePath(path string, mode PathCheckMode, st *store.Store) (string, error) {
	if path == "" {
		return "", errors.NewInvalidRequest("path is required")
	}

	if containsTraversal(path) {
		return "", errors.NewInvalidRequest("path must not contain directory traversal (..)")
	}

	cleaned := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleaned))
	if !slices.Contains(checklistExts, ext) {
		return "", errors.NewInvalidRequest("path must have .md or .markdown extension")
	}

	absPath, err := filepath.Abs(cleaned)
	if err != nil {
		return "", errors.NewInvalidRequest(fmt.Sprintf("invalid path: %v", err))
	}

	if st != nil && absPath == st.Path() {
		return "", errors.NewInvalidRequest("path must not be the todo store file")
	}

	info, err := os.Lstat(absPath)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		return "", errors.NewInvalidRequest("path must not be a symlink")
	case err == nil && info.IsDir():
		return "", errors.NewInvalidRequest("path is a directory")
	case os.IsNotExist(err) && mode == PathCheckRead:
		return "", errors.NewFileNotFound(path)
	}

	return absPath, nil
}

// containsTraversal checks if path contains ".." directory traversal.
func containsTraversal(path string) bool {
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == ".." {
			return true
		}
	}
	// Also check for forward slashes on all platforms (e.g., user input)
	if filepath.Separator != '/' {
		for _, part := range strings.Split(path, "/") {
			if part == ".." {
				return true
			}
		}
	}
	return false
}
