package colors

import "testing"

func TestForPath(t *testing.T) {
	testCases := []struct {
		name          string
		entryPath     string
		expectedColor string
		expectFound   bool
	}{
		{
			name:          "whole_filename_match",
			entryPath:     "/project/.git",
			expectedColor: "red",
			expectFound:   true,
		},
		{
			name:          "double_extension_match",
			entryPath:     "/backups/site.tar.gz",
			expectedColor: "green",
			expectFound:   true,
		},
		{
			name:          "single_extension_match",
			entryPath:     "/assets/logo.png",
			expectedColor: "cyan",
			expectFound:   true,
		},
		{
			name:          "glob_match_is_case_insensitive",
			entryPath:     "/project/LICENSE-APACHE",
			expectedColor: "yellow",
			expectFound:   true,
		},
		{
			name:        "unknown_path_has_no_color",
			entryPath:   "/project/data.bin",
			expectFound: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actualColor, found := ForPath(testCase.entryPath)
			if found != testCase.expectFound {
				t.Fatalf("ForPath(%q) found = %v, want %v", testCase.entryPath, found, testCase.expectFound)
			}
			if found && actualColor.AnsiName() != testCase.expectedColor {
				t.Fatalf("ForPath(%q) = %q, want %q", testCase.entryPath, actualColor.AnsiName(), testCase.expectedColor)
			}
		})
	}
}
