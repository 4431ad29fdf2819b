// Package icons provides the static icon lookup table for file paths.
package icons

import (
	"path"
	"strings"
)

// Icons shared by several filenames or extensions of the same file type.
const (
	// ArchiveIcon is used for archive files, like .zip or .tar.gz.
	ArchiveIcon = ""
	// DocIcon is used for documentation files, like READMEs.
	DocIcon = ""
	// LicenseIcon is used for license files.
	LicenseIcon = ""
	// LockIcon is used for lock files.
	LockIcon = ""
	// ImageIcon is used for image files.
	ImageIcon = ""
)

// filenameIcons maps whole filenames to icons. Keys should stay in
// alphabetical order, ignoring any leading dot, for easier review.
var filenameIcons = map[string]string{
	"CONTRIBUTING.md":   DocIcon,
	".editorconfig":     "",
	".git":              "",
	".github":           "",
	"LICENCE":           LicenseIcon,
	"LICENSE":           LicenseIcon,
	"licence":           LicenseIcon,
	"license":           LicenseIcon,
	"package-lock.json": LockIcon,
	"pnpm-lock.yaml":    LockIcon,
	"README":            DocIcon,
	"README.md":         DocIcon,
	".vscode":           "",
}

// extensionIcons maps single extensions (without the dot) to icons.
var extensionIcons = map[string]string{
	"cfg":  "",
	"gif":  ImageIcon,
	"jpeg": ImageIcon,
	"jpg":  ImageIcon,
	"lock": LockIcon,
	"png":  ImageIcon,
}

// doubleExtensionIcons maps double extensions, like tar.gz, to icons.
var doubleExtensionIcons = map[string]string{
	"tar.gz": ArchiveIcon,
}

// globIcons maps uppercase glob patterns to icons; names are uppercased
// before matching so patterns are case-insensitive.
var globIcons = []struct {
	pattern string
	icon    string
}{
	{"LICEN[CS]E-*", LicenseIcon},
}

// ForPath returns the icon for a path's final component, consulting the
// filename, double-extension, extension, and glob tables in that order.
func ForPath(entryPath string) (string, bool) {
	entryName := path.Base(strings.ReplaceAll(entryPath, "\\", "/"))

	if icon, found := filenameIcons[entryName]; found {
		return icon, true
	}
	if doubleExtension, hasDouble := DoubleExtension(entryName); hasDouble {
		if icon, found := doubleExtensionIcons[doubleExtension]; found {
			return icon, true
		}
	}
	if extension, hasExtension := singleExtension(entryName); hasExtension {
		if icon, found := extensionIcons[extension]; found {
			return icon, true
		}
	}
	for _, globEntry := range globIcons {
		if matched, matchError := path.Match(globEntry.pattern, strings.ToUpper(entryName)); matchError == nil && matched {
			return globEntry.icon, true
		}
	}
	return "", false
}

// DoubleExtension returns the last two extensions of a name joined with a
// dot, for example "tar.gz" for "backup.tar.gz".
func DoubleExtension(entryName string) (string, bool) {
	suffixExtension, hasSuffix := singleExtension(entryName)
	if !hasSuffix {
		return "", false
	}
	stem := strings.TrimSuffix(entryName, "."+suffixExtension)
	prefixExtension, hasPrefix := singleExtension(stem)
	if !hasPrefix {
		return "", false
	}
	return prefixExtension + "." + suffixExtension, true
}

// singleExtension returns the final extension of a name without the dot.
// Names with no dot, or with only a leading dot, have no extension.
func singleExtension(entryName string) (string, bool) {
	lastDotIndex := strings.LastIndex(entryName, ".")
	if lastDotIndex <= 0 || lastDotIndex == len(entryName)-1 {
		return "", false
	}
	return entryName[lastDotIndex+1:], true
}
