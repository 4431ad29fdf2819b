// Package sorting orders sibling entries by directory placement and name.
package sorting

import (
	"runtime"
	"strings"
)

// Policy bundles the sorting configuration. Comparison priorities are
// directory placement first, then the name comparison method, with the
// combined result reversed for descending order.
type Policy struct {
	// Method selects naive or natural name comparison.
	Method Method
	// Direction selects ascending or descending order.
	Direction Direction
	// Directories controls whether directories sort intermixed with, before,
	// or after files.
	Directories DirectoryPlacement
	// IgnoreCase folds names to lower case before comparing.
	IgnoreCase bool
	// IgnoreDot strips a single leading dot before comparing.
	IgnoreDot bool
}

// DefaultPolicy returns the default sorting configuration: naive ascending,
// mixed placement, case-insensitive everywhere except Windows.
func DefaultPolicy() Policy {
	return Policy{
		Method:      MethodNaive,
		Direction:   DirectionAscending,
		Directories: PlacementMixed,
		IgnoreCase:  runtime.GOOS == "windows",
	}
}

// Sortable is the view of an entry the comparison needs: its final path
// component and whether it is a directory.
type Sortable struct {
	// Name is the final path component.
	Name string
	// IsDirectory reports whether the entry is a directory.
	IsDirectory bool
}

// Compare orders left against right under the policy, returning a negative
// number, zero, or a positive number. The ordering is a strict weak ordering:
// ties are possible but transitivity always holds.
func (policy Policy) Compare(left Sortable, right Sortable) int {
	ordering := policy.Directories.compare(left.IsDirectory, right.IsDirectory)
	if ordering == 0 {
		leftName := policy.normalizeName(left.Name)
		rightName := policy.normalizeName(right.Name)
		ordering = policy.Method.compare(leftName, rightName)
	}
	if policy.Direction == DirectionDescending {
		ordering = -ordering
	}
	return ordering
}

// normalizeName applies the dot and case normalization rules.
func (policy Policy) normalizeName(name string) string {
	if policy.IgnoreDot {
		name = strings.TrimPrefix(name, ".")
	}
	if policy.IgnoreCase {
		name = strings.ToLower(name)
	}
	return name
}
