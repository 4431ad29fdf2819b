package sorting

import "fmt"

// DirectoryPlacement controls where directories land relative to files.
type DirectoryPlacement string

const (
	// PlacementMixed sorts directories and files together.
	PlacementMixed DirectoryPlacement = "mixed"
	// PlacementFirst sorts directories before files.
	PlacementFirst DirectoryPlacement = "first"
	// PlacementLast sorts directories after files.
	PlacementLast DirectoryPlacement = "last"
)

// ParseDirectoryPlacement converts a string into a DirectoryPlacement.
func ParseDirectoryPlacement(rawPlacement string) (DirectoryPlacement, error) {
	switch DirectoryPlacement(rawPlacement) {
	case PlacementMixed, PlacementFirst, PlacementLast:
		return DirectoryPlacement(rawPlacement), nil
	default:
		return "", fmt.Errorf("invalid directory placement %q; accepted values: %s, %s, %s", rawPlacement, PlacementMixed, PlacementFirst, PlacementLast)
	}
}

// compare orders two entries by their directory flags. Mixed placement and
// equal-kind pairs compare equal and fall through to name comparison.
func (placement DirectoryPlacement) compare(leftIsDirectory bool, rightIsDirectory bool) int {
	if placement == PlacementMixed || leftIsDirectory == rightIsDirectory {
		return 0
	}
	directoriesFirst := placement == PlacementFirst
	if leftIsDirectory == directoriesFirst {
		return -1
	}
	return 1
}
