// Package entry models one filesystem path visited during traversal together
// with its classified attributes.
package entry

import (
	"path/filepath"

	"github.com/spenserblack/fancy-tree/internal/language"
)

// Entry is one visited filesystem path. Attributes is nil when classification
// failed; such entries render name-only and never abort the traversal.
type Entry struct {
	// Path is the path the entry was visited at.
	Path string
	// Attributes describes the entry's filesystem kind and metadata.
	Attributes *Attributes
}

// New classifies path into an Entry. Classification failure is recorded on
// the entry instead of returned: the entry stays renderable without
// decoration.
func New(path string, detector language.Detector) Entry {
	classifiedAttributes, classificationError := Classify(path, detector)
	if classificationError != nil {
		return Entry{Path: path}
	}
	return Entry{Path: path, Attributes: &classifiedAttributes}
}

// Name returns the final path component.
func (visitedEntry Entry) Name() string {
	return filepath.Base(visitedEntry.Path)
}

// IsDirectory reports whether the entry classified as a directory.
func (visitedEntry Entry) IsDirectory() bool {
	return visitedEntry.Attributes != nil && visitedEntry.Attributes.Kind == KindDirectory
}

// IsSymlink reports whether the entry classified as a symlink.
func (visitedEntry Entry) IsSymlink() bool {
	return visitedEntry.Attributes != nil && visitedEntry.Attributes.Kind == KindSymlink
}

// IsHiddenAttribute reports whether the platform hidden attribute is set.
// Always false on Unix.
func (visitedEntry Entry) IsHiddenAttribute() bool {
	return visitedEntry.Attributes != nil && visitedEntry.Attributes.Hidden
}

// IsExecutable reports whether the entry is an executable file.
func (visitedEntry Entry) IsExecutable() bool {
	return visitedEntry.Attributes != nil && visitedEntry.Attributes.Kind == KindFile && visitedEntry.Attributes.Executable
}

// Language returns the detected content language for file entries, or nil.
func (visitedEntry Entry) Language() *language.Language {
	if visitedEntry.Attributes == nil {
		return nil
	}
	return visitedEntry.Attributes.Language
}
