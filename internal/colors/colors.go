// Package colors provides the static color lookup table for file paths.
package colors

import (
	"path"
	"strings"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/icons"
)

// filenameColors maps whole filenames to colors. Keys should stay in
// alphabetical order, ignoring any leading dot, for easier review.
var filenameColors = map[string]colorize.Color{
	".git":    colorize.MustAnsi("red"),
	".github": colorize.MustAnsi("black"),
	".vscode": colorize.MustAnsi("blue"),
}

// extensionColors maps single extensions (without the dot) to colors.
var extensionColors = map[string]colorize.Color{
	"7z":      colorize.MustAnsi("black"),
	"gif":     colorize.MustAnsi("green"),
	"jpeg":    colorize.MustAnsi("yellow"),
	"jpg":     colorize.MustAnsi("yellow"),
	"png":     colorize.MustAnsi("cyan"),
	"sqlite":  colorize.MustAnsi("blue"),
	"sqlite3": colorize.MustAnsi("blue"),
	"tar":     colorize.MustAnsi("green"),
	"zip":     colorize.MustAnsi("blue"),
}

// doubleExtensionColors maps double extensions, like tar.gz, to colors.
var doubleExtensionColors = map[string]colorize.Color{
	"tar.gz": colorize.MustAnsi("green"),
}

// globColors maps uppercase glob patterns to colors; names are uppercased
// before matching so patterns are case-insensitive.
var globColors = []struct {
	pattern string
	color   colorize.Color
}{
	{"LICEN[CS]E-*", colorize.MustAnsi("yellow")},
}

// ForPath returns the color for a path's final component, consulting the
// filename, double-extension, extension, and glob tables in that order.
func ForPath(entryPath string) (colorize.Color, bool) {
	entryName := path.Base(strings.ReplaceAll(entryPath, "\\", "/"))

	if entryColor, found := filenameColors[entryName]; found {
		return entryColor, true
	}
	if doubleExtension, hasDouble := icons.DoubleExtension(entryName); hasDouble {
		if entryColor, found := doubleExtensionColors[doubleExtension]; found {
			return entryColor, true
		}
	}
	if extensionIndex := strings.LastIndex(entryName, "."); extensionIndex > 0 && extensionIndex < len(entryName)-1 {
		if entryColor, found := extensionColors[entryName[extensionIndex+1:]]; found {
			return entryColor, true
		}
	}
	for _, globEntry := range globColors {
		if matched, matchError := path.Match(globEntry.pattern, strings.ToUpper(entryName)); matchError == nil && matched {
			return globEntry.color, true
		}
	}
	return colorize.Color{}, false
}
