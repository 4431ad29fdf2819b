package entry

import (
	"io"
	"os"

	"github.com/spenserblack/fancy-tree/internal/language"
)

// Kind is the filesystem kind of an entry. The set is closed: every entry is
// exactly one of directory, file, or symlink.
type Kind int

const (
	// KindDirectory marks a directory.
	KindDirectory Kind = iota
	// KindFile marks a regular (or otherwise non-directory, non-symlink) file.
	KindFile
	// KindSymlink marks a symbolic link. Symlinks are never followed.
	KindSymlink
)

// languageReadLimit bounds how many bytes of a file are read for language
// detection.
const languageReadLimit = 16 * 1024

// Attributes captures per-kind metadata for an entry. The kind is fixed at
// construction from the filesystem's reported type.
type Attributes struct {
	// Kind is the filesystem kind.
	Kind Kind
	// Hidden is the platform hidden attribute. Directories and files only;
	// always false on Unix.
	Hidden bool
	// Executable is set for files the platform considers executable.
	Executable bool
	// Language is the detected content language. Files only.
	Language *language.Language
}

// Classify inspects the filesystem metadata for path and returns its
// attributes. The symlink check takes precedence: a symlink to a directory
// classifies as a symlink and its target is never inspected.
func Classify(path string, detector language.Detector) (Attributes, error) {
	fileInformation, statError := os.Lstat(path)
	if statError != nil {
		return Attributes{}, statError
	}

	fileMode := fileInformation.Mode()
	switch {
	case fileMode&os.ModeSymlink != 0:
		return Attributes{Kind: KindSymlink}, nil
	case fileMode.IsDir():
		return Attributes{Kind: KindDirectory, Hidden: hasHiddenAttribute(path, fileInformation)}, nil
	default:
		return classifyFile(path, fileInformation, detector)
	}
}

// classifyFile builds file attributes, reading a bounded content prefix for
// language detection. Non-regular files (sockets, pipes, devices) skip the
// content read so classification cannot block.
func classifyFile(path string, fileInformation os.FileInfo, detector language.Detector) (Attributes, error) {
	fileAttributes := Attributes{
		Kind:       KindFile,
		Hidden:     hasHiddenAttribute(path, fileInformation),
		Executable: isExecutable(path, fileInformation),
	}
	if !fileInformation.Mode().IsRegular() {
		return fileAttributes, nil
	}

	contentPrefix, readError := readContentPrefix(path)
	if readError != nil {
		return Attributes{}, readError
	}
	if detector != nil {
		fileAttributes.Language = detector.Detect(path, contentPrefix, languageReadLimit)
	}
	return fileAttributes, nil
}

// readContentPrefix reads up to languageReadLimit bytes from the file.
func readContentPrefix(path string) ([]byte, error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return nil, openError
	}
	defer fileHandle.Close()

	prefixBuffer := make([]byte, languageReadLimit)
	bytesRead, readError := io.ReadFull(fileHandle, prefixBuffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return nil, readError
	}
	return prefixBuffer[:bytesRead], nil
}
