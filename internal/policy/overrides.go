// Package policy resolves the skip, icon, and color decisions for entries:
// an engine-computed default first, then an optional external override.
package policy

import (
	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/entry"
	"github.com/spenserblack/fancy-tree/internal/gitstatus"
)

// Override functions come from an embeddable scripting host. The engine only
// sees these capability interfaces: a nil result keeps the engine default, a
// non-nil result replaces it, and an error falls back to the default while
// being surfaced on the diagnostics logger.

// SkipOverride decides whether an entry should be excluded from the tree.
type SkipOverride interface {
	OverrideSkip(path string, attributes *entry.Attributes, engineDefault bool) (*bool, error)
}

// IconOverride picks the icon rendered for an entry.
type IconOverride interface {
	OverrideIcon(path string, attributes *entry.Attributes, defaultIcon string) (*string, error)
}

// ColorOverride picks the icon/name color rendered for an entry.
type ColorOverride interface {
	OverrideColor(path string, attributes *entry.Attributes, defaultColor *colorize.Color) (*colorize.Color, error)
}

// StatusColorOverride picks the color for a version-control status marker.
type StatusColorOverride interface {
	OverrideStatusColor(status gitstatus.Status, defaultColor colorize.Color) (*colorize.Color, error)
}

// SkipOverrideFunc adapts a function to SkipOverride.
type SkipOverrideFunc func(path string, attributes *entry.Attributes, engineDefault bool) (*bool, error)

// OverrideSkip calls the wrapped function.
func (overrideFunction SkipOverrideFunc) OverrideSkip(path string, attributes *entry.Attributes, engineDefault bool) (*bool, error) {
	return overrideFunction(path, attributes, engineDefault)
}

// IconOverrideFunc adapts a function to IconOverride.
type IconOverrideFunc func(path string, attributes *entry.Attributes, defaultIcon string) (*string, error)

// OverrideIcon calls the wrapped function.
func (overrideFunction IconOverrideFunc) OverrideIcon(path string, attributes *entry.Attributes, defaultIcon string) (*string, error) {
	return overrideFunction(path, attributes, defaultIcon)
}

// ColorOverrideFunc adapts a function to ColorOverride.
type ColorOverrideFunc func(path string, attributes *entry.Attributes, defaultColor *colorize.Color) (*colorize.Color, error)

// OverrideColor calls the wrapped function.
func (overrideFunction ColorOverrideFunc) OverrideColor(path string, attributes *entry.Attributes, defaultColor *colorize.Color) (*colorize.Color, error) {
	return overrideFunction(path, attributes, defaultColor)
}

// StatusColorOverrideFunc adapts a function to StatusColorOverride.
type StatusColorOverrideFunc func(status gitstatus.Status, defaultColor colorize.Color) (*colorize.Color, error)

// OverrideStatusColor calls the wrapped function.
func (overrideFunction StatusColorOverrideFunc) OverrideStatusColor(status gitstatus.Status, defaultColor colorize.Color) (*colorize.Color, error) {
	return overrideFunction(status, defaultColor)
}
