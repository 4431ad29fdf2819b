//go:build !windows

package entry

import "os"

// hasHiddenAttribute reports the platform hidden attribute. Unix has no such
// attribute, so this is always false; the dotfile naming convention is a
// skip-policy concern, not an attribute.
func hasHiddenAttribute(_ string, _ os.FileInfo) bool {
	return false
}

// isExecutable reports whether any execute bit is set.
func isExecutable(_ string, fileInformation os.FileInfo) bool {
	const anyExecuteBits = 0o111
	return fileInformation.Mode().Perm()&anyExecuteBits != 0
}
