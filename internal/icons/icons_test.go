package icons

import "testing"

func TestForPath(t *testing.T) {
	testCases := []struct {
		name         string
		entryPath    string
		expectedIcon string
		expectFound  bool
	}{
		{
			name:         "whole_filename_match",
			entryPath:    "/project/README.md",
			expectedIcon: DocIcon,
			expectFound:  true,
		},
		{
			name:         "filename_beats_extension",
			entryPath:    "/project/package-lock.json",
			expectedIcon: LockIcon,
			expectFound:  true,
		},
		{
			name:         "double_extension_match",
			entryPath:    "/backups/site.tar.gz",
			expectedIcon: ArchiveIcon,
			expectFound:  true,
		},
		{
			name:         "single_extension_match",
			entryPath:    "/assets/logo.png",
			expectedIcon: ImageIcon,
			expectFound:  true,
		},
		{
			name:         "glob_match_is_case_insensitive",
			entryPath:    "/project/license-MIT",
			expectedIcon: LicenseIcon,
			expectFound:  true,
		},
		{
			name:        "unknown_path_has_no_icon",
			entryPath:   "/project/data.bin",
			expectFound: false,
		},
		{
			name:        "dotfile_has_no_extension",
			entryPath:   "/project/.png",
			expectFound: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actualIcon, found := ForPath(testCase.entryPath)
			if found != testCase.expectFound {
				t.Fatalf("ForPath(%q) found = %v, want %v", testCase.entryPath, found, testCase.expectFound)
			}
			if found && actualIcon != testCase.expectedIcon {
				t.Fatalf("ForPath(%q) = %q, want %q", testCase.entryPath, actualIcon, testCase.expectedIcon)
			}
		})
	}
}

func TestDoubleExtension(t *testing.T) {
	testCases := []struct {
		entryName string
		expected  string
		expectOk  bool
	}{
		{entryName: "backup.tar.gz", expected: "tar.gz", expectOk: true},
		{entryName: "a.b.c.d", expected: "c.d", expectOk: true},
		{entryName: "archive.zip", expectOk: false},
		{entryName: "plain", expectOk: false},
		{entryName: ".hidden.gz", expectOk: false},
	}
	for _, testCase := range testCases {
		actual, ok := DoubleExtension(testCase.entryName)
		if ok != testCase.expectOk {
			t.Fatalf("DoubleExtension(%q) ok = %v, want %v", testCase.entryName, ok, testCase.expectOk)
		}
		if ok && actual != testCase.expected {
			t.Fatalf("DoubleExtension(%q) = %q, want %q", testCase.entryName, actual, testCase.expected)
		}
	}
}
