package gitstatus

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RelativeKey normalizes a query path into the overlay's cache key form: the
// path relative to the repository root, with forward separators and no
// leading "./". The query path is resolved to an absolute path first, so
// relative paths work regardless of the working directory.
func RelativeKey(repositoryRoot string, queryPath string) (string, error) {
	absoluteQueryPath, absoluteError := filepath.Abs(queryPath)
	if absoluteError != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", queryPath, absoluteError)
	}
	absoluteRoot, rootError := filepath.Abs(repositoryRoot)
	if rootError != nil {
		return "", fmt.Errorf("resolving absolute repository root %s: %w", repositoryRoot, rootError)
	}

	relativePath, relativeError := filepath.Rel(absoluteRoot, absoluteQueryPath)
	if relativeError != nil {
		return "", fmt.Errorf("resolving %s relative to repository root %s: %w", queryPath, repositoryRoot, relativeError)
	}
	if relativePath == ".." || strings.HasPrefix(relativePath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside the repository root %s", queryPath, repositoryRoot)
	}

	return filepath.ToSlash(relativePath), nil
}
