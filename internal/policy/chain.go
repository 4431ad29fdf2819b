package policy

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/colors"
	"github.com/spenserblack/fancy-tree/internal/entry"
	"github.com/spenserblack/fancy-tree/internal/gitstatus"
	"github.com/spenserblack/fancy-tree/internal/icons"
)

// Default icons per entry kind.
const (
	// DefaultDirectoryIcon is rendered for directories.
	DefaultDirectoryIcon = "\U000F024B" // 󰉋
	// DefaultFileIcon is rendered for plain files.
	DefaultFileIcon = "\U000F0214" // 󰈔
	// DefaultExecutableIcon is rendered for executable files.
	DefaultExecutableIcon = "\U000F070E" // 󰜎
	// DefaultSymlinkIcon is rendered for symlinks.
	DefaultSymlinkIcon = "" //
)

// Default entry colors.
var (
	// IgnoredColor dims entries matched by version-control ignore rules.
	IgnoredColor = colorize.MustAnsi("bright-black")

	directoryColor  = colorize.MustAnsi("blue")
	executableColor = colorize.MustAnsi("green")
	symlinkColor    = colorize.MustAnsi("cyan")
)

// Default status marker colors.
var (
	addedStatusColor    = colorize.MustAnsi("green")
	modifiedStatusColor = colorize.MustAnsi("yellow")
	removedStatusColor  = colorize.MustAnsi("red")
	renamedStatusColor  = colorize.MustAnsi("cyan")
)

// Chain holds the optional overrides for every decision axis. Nil fields mean
// the engine defaults apply unchanged. The render engine calls each axis at
// most once per entry per render.
type Chain struct {
	// Skip may force-include or force-exclude an entry.
	Skip SkipOverride
	// Icon may replace the entry icon.
	Icon IconOverride
	// Color may replace the entry icon/name color.
	Color ColorOverride
	// TrackedStatusColor may replace tracked status marker colors.
	TrackedStatusColor StatusColorOverride
	// UntrackedStatusColor may replace untracked status marker colors.
	UntrackedStatusColor StatusColorOverride

	logger *zap.Logger
}

// NewChain constructs a Chain with no overrides configured. Override failures
// are reported on the provided logger.
func NewChain(logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{logger: logger}
}

// ResolveSkip decides whether the entry is excluded from the tree. The engine
// default is hidden OR version-control-ignored; isIgnored is called lazily so
// hidden entries avoid a repository query.
func (chain *Chain) ResolveSkip(visitedEntry entry.Entry, isIgnored func() bool) bool {
	engineDefault := isHiddenForSkip(visitedEntry) || isIgnored()
	if chain.Skip == nil {
		return engineDefault
	}
	overrideValue, overrideError := chain.Skip.OverrideSkip(visitedEntry.Path, visitedEntry.Attributes, engineDefault)
	if overrideError != nil {
		chain.logger.Warn("skip override failed", zap.String("path", visitedEntry.Path), zap.Error(overrideError))
		return engineDefault
	}
	if overrideValue == nil {
		return engineDefault
	}
	return *overrideValue
}

// ResolveIcon returns the icon for the entry, or an empty string when the
// entry renders without one.
func (chain *Chain) ResolveIcon(visitedEntry entry.Entry) string {
	engineDefault := defaultIcon(visitedEntry)
	if chain.Icon == nil {
		return engineDefault
	}
	overrideValue, overrideError := chain.Icon.OverrideIcon(visitedEntry.Path, visitedEntry.Attributes, engineDefault)
	if overrideError != nil {
		chain.logger.Warn("icon override failed", zap.String("path", visitedEntry.Path), zap.Error(overrideError))
		return engineDefault
	}
	if overrideValue == nil {
		return engineDefault
	}
	return *overrideValue
}

// ResolveColor returns the icon/name color for the entry, or nil when the
// entry renders uncolored. Ignored entries take the fixed dim color and skip
// the override entirely.
func (chain *Chain) ResolveColor(visitedEntry entry.Entry, ignored bool) *colorize.Color {
	if ignored {
		dimmed := IgnoredColor
		return &dimmed
	}
	engineDefault := defaultColor(visitedEntry)
	if chain.Color == nil {
		return engineDefault
	}
	overrideValue, overrideError := chain.Color.OverrideColor(visitedEntry.Path, visitedEntry.Attributes, engineDefault)
	if overrideError != nil {
		chain.logger.Warn("color override failed", zap.String("path", visitedEntry.Path), zap.Error(overrideError))
		return engineDefault
	}
	if overrideValue == nil {
		return engineDefault
	}
	return overrideValue
}

// ResolveTrackedStatusColor returns the color for a tracked status marker.
func (chain *Chain) ResolveTrackedStatusColor(status gitstatus.Status) colorize.Color {
	return chain.resolveStatusColor(status, chain.TrackedStatusColor)
}

// ResolveUntrackedStatusColor returns the color for an untracked status marker.
func (chain *Chain) ResolveUntrackedStatusColor(status gitstatus.Status) colorize.Color {
	return chain.resolveStatusColor(status, chain.UntrackedStatusColor)
}

// resolveStatusColor applies the default-then-override shape to one status
// marker color.
func (chain *Chain) resolveStatusColor(status gitstatus.Status, override StatusColorOverride) colorize.Color {
	engineDefault := defaultStatusColor(status)
	if override == nil {
		return engineDefault
	}
	overrideValue, overrideError := override.OverrideStatusColor(status, engineDefault)
	if overrideError != nil {
		chain.logger.Warn("status color override failed", zap.Error(overrideError))
		return engineDefault
	}
	if overrideValue == nil {
		return engineDefault
	}
	return *overrideValue
}

// isHiddenForSkip reports whether the skip axis treats the entry as hidden:
// either the platform hidden attribute is set, or the name follows the
// dotfile convention. The naming rule lives here rather than in Attributes so
// the attribute model stays a faithful mirror of the platform.
func isHiddenForSkip(visitedEntry entry.Entry) bool {
	if visitedEntry.IsHiddenAttribute() {
		return true
	}
	entryName := visitedEntry.Name()
	return len(entryName) > 1 && strings.HasPrefix(entryName, ".")
}

// defaultIcon computes the engine icon for an entry: the static table first,
// then the per-kind default. Unclassified entries get no icon.
func defaultIcon(visitedEntry entry.Entry) string {
	if visitedEntry.Attributes == nil {
		return ""
	}
	if tableIcon, found := icons.ForPath(visitedEntry.Path); found {
		return tableIcon
	}
	switch visitedEntry.Attributes.Kind {
	case entry.KindDirectory:
		return DefaultDirectoryIcon
	case entry.KindSymlink:
		return DefaultSymlinkIcon
	default:
		return defaultFileIcon(visitedEntry)
	}
}

// defaultFileIcon picks the icon for a file entry: executables first, then
// the detected language's glyph, then the generic file icon.
func defaultFileIcon(visitedEntry entry.Entry) string {
	if visitedEntry.IsExecutable() {
		return DefaultExecutableIcon
	}
	if detectedLanguage := visitedEntry.Language(); detectedLanguage != nil {
		if glyph, hasGlyph := detectedLanguage.NerdFontGlyph(); hasGlyph {
			return glyph
		}
	}
	return DefaultFileIcon
}

// defaultColor computes the engine color for an entry: the static table
// first, then the per-kind default. Unclassified and plain file entries
// render uncolored.
func defaultColor(visitedEntry entry.Entry) *colorize.Color {
	if visitedEntry.Attributes == nil {
		return nil
	}
	if tableColor, found := colors.ForPath(visitedEntry.Path); found {
		return &tableColor
	}
	switch visitedEntry.Attributes.Kind {
	case entry.KindDirectory:
		chosenColor := directoryColor
		return &chosenColor
	case entry.KindSymlink:
		chosenColor := symlinkColor
		return &chosenColor
	default:
		return defaultFileColor(visitedEntry)
	}
}

// defaultFileColor picks the color for a file entry: the detected language's
// color first, then green for executables.
func defaultFileColor(visitedEntry entry.Entry) *colorize.Color {
	if detectedLanguage := visitedEntry.Language(); detectedLanguage != nil {
		if red, green, blue, hasColor := detectedLanguage.RGB(); hasColor {
			languageColor := colorize.RGB(red, green, blue)
			return &languageColor
		}
	}
	if visitedEntry.IsExecutable() {
		chosenColor := executableColor
		return &chosenColor
	}
	return nil
}

// defaultStatusColor maps a status kind to its default marker color.
func defaultStatusColor(status gitstatus.Status) colorize.Color {
	switch status {
	case gitstatus.StatusAdded:
		return addedStatusColor
	case gitstatus.StatusModified:
		return modifiedStatusColor
	case gitstatus.StatusRemoved:
		return removedStatusColor
	default:
		return renamedStatusColor
	}
}
