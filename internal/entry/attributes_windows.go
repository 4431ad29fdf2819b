//go:build windows

package entry

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// hasHiddenAttribute reports whether the Windows hidden attribute bit is set.
func hasHiddenAttribute(_ string, fileInformation os.FileInfo) bool {
	attributeData, ok := fileInformation.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attributeData.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}

const pathExtensionEnvironmentVariable = "PATHEXT"

var loadExecutableExtensions = sync.OnceValue(func() map[string]struct{} {
	executableExtensions := make(map[string]struct{})
	for _, rawExtension := range strings.Split(os.Getenv(pathExtensionEnvironmentVariable), ";") {
		trimmedExtension := strings.TrimSpace(rawExtension)
		if trimmedExtension == "" {
			continue
		}
		executableExtensions[strings.ToUpper(trimmedExtension)] = struct{}{}
	}
	return executableExtensions
})

// isExecutable reports whether the file's extension appears in %PATHEXT%.
func isExecutable(path string, _ os.FileInfo) bool {
	extension := filepath.Ext(path)
	if extension == "" {
		return false
	}
	_, executable := loadExecutableExtensions()[strings.ToUpper(extension)]
	return executable
}
