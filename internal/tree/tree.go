// Package tree renders a directory hierarchy as an annotated, indented text
// tree: one line per entry with optional version-control markers, an icon,
// and a color.
package tree

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/entry"
	"github.com/spenserblack/fancy-tree/internal/gitstatus"
	"github.com/spenserblack/fancy-tree/internal/language"
	"github.com/spenserblack/fancy-tree/internal/policy"
	"github.com/spenserblack/fancy-tree/internal/sorting"
)

const (
	// emptyIconPadding keeps columns aligned when an entry has no icon.
	emptyIconPadding = " "
	// emptyStatusSlot fills a status column when the entry has no status.
	emptyStatusSlot = " "
	iconSeparator   = " "
	lineTerminator  = "\n"
)

// Tree renders one directory hierarchy. Construct it with Builder; all
// collaborators are read-only during rendering.
type Tree struct {
	root         string
	colorEnabled bool
	overlay      *gitstatus.Overlay
	chain        *policy.Chain
	sortPolicy   sorting.Policy
	detector     language.Detector
	charset      Charset
	maxLevel     int
	hasMaxLevel  bool
	logger       *zap.Logger
}

// Render walks the hierarchy depth-first and writes one line per visited
// entry. Output is buffered and flushed exactly once, on every exit path.
func (renderedTree *Tree) Render(destination io.Writer) error {
	bufferedWriter := bufio.NewWriter(destination)

	rootEntry := entry.New(renderedTree.root, renderedTree.detector)
	if rootEntry.Attributes == nil {
		// The root could not even be classified: print the literal requested
		// path with no decoration and finish successfully.
		if _, writeError := bufferedWriter.WriteString(renderedTree.root + lineTerminator); writeError != nil {
			return writeError
		}
		return bufferedWriter.Flush()
	}

	if walkError := renderedTree.writeDepth(bufferedWriter, rootEntry, 0); walkError != nil {
		return walkError
	}
	return bufferedWriter.Flush()
}

// writeDepth emits the entry's line and recurses into its children.
func (renderedTree *Tree) writeDepth(destination *bufio.Writer, visitedEntry entry.Entry, depth int) error {
	if writeError := renderedTree.writeEntry(destination, visitedEntry, depth == 0); writeError != nil {
		return writeError
	}
	if _, writeError := destination.WriteString(lineTerminator); writeError != nil {
		return writeError
	}

	if !visitedEntry.IsDirectory() {
		return nil
	}
	if renderedTree.hasMaxLevel && depth >= renderedTree.maxLevel {
		return nil
	}

	for _, childEntry := range renderedTree.listChildren(visitedEntry) {
		if indentError := renderedTree.writeIndentation(destination, depth); indentError != nil {
			return indentError
		}
		if _, writeError := destination.WriteString(renderedTree.charset.Connector); writeError != nil {
			return writeError
		}
		if childError := renderedTree.writeDepth(destination, childEntry, depth+1); childError != nil {
			return childError
		}
	}
	return nil
}

// listChildren reads, filters, and sorts the children of a directory entry.
// Unreadable directories are treated as childless so one bad subtree never
// cancels its siblings.
func (renderedTree *Tree) listChildren(directoryEntry entry.Entry) []entry.Entry {
	directoryEntries, readError := os.ReadDir(directoryEntry.Path)
	if readError != nil {
		renderedTree.logger.Debug("skipping unreadable directory", zap.String("path", directoryEntry.Path), zap.Error(readError))
		return nil
	}

	childEntries := make([]entry.Entry, 0, len(directoryEntries))
	for _, childDirEntry := range directoryEntries {
		childPath := filepath.Join(directoryEntry.Path, childDirEntry.Name())
		childEntry := entry.New(childPath, renderedTree.detector)
		skipped := renderedTree.chain.ResolveSkip(childEntry, func() bool {
			return renderedTree.isIgnored(childPath)
		})
		if skipped {
			continue
		}
		childEntries = append(childEntries, childEntry)
	}

	sort.SliceStable(childEntries, func(leftIndex int, rightIndex int) bool {
		leftSortable := sortableForEntry(childEntries[leftIndex])
		rightSortable := sortableForEntry(childEntries[rightIndex])
		return renderedTree.sortPolicy.Compare(leftSortable, rightSortable) < 0
	})
	return childEntries
}

// writeEntry composes one line, left to right: status markers, icon, and the
// colored name. The top entry keeps the full requested path; every
// descendant is printed by its final path component.
func (renderedTree *Tree) writeEntry(destination *bufio.Writer, visitedEntry entry.Entry, isTop bool) error {
	if statusError := renderedTree.writeStatuses(destination, visitedEntry); statusError != nil {
		return statusError
	}

	// The top level is never checked against ignore rules: it anchors the
	// tree and its path may be the repository root itself.
	ignored := !isTop && renderedTree.isIgnored(visitedEntry.Path)

	entryColor := renderedTree.chain.ResolveColor(visitedEntry, ignored)
	resolvedIcon := renderedTree.chain.ResolveIcon(visitedEntry)

	iconText := emptyIconPadding
	if resolvedIcon != "" {
		iconText = renderedTree.colorized(resolvedIcon, entryColor)
	}
	if _, writeError := destination.WriteString(iconText + iconSeparator); writeError != nil {
		return writeError
	}

	entryName := visitedEntry.Name()
	if isTop {
		entryName = visitedEntry.Path
	}
	_, writeError := destination.WriteString(renderedTree.colorized(entryName, entryColor))
	return writeError
}

// writeStatuses emits the two status marker slots, untracked then tracked,
// space-padded when absent. Without a git overlay no columns are written.
func (renderedTree *Tree) writeStatuses(destination *bufio.Writer, visitedEntry entry.Entry) error {
	if renderedTree.overlay == nil {
		return nil
	}

	untrackedSlot := emptyStatusSlot
	if untrackedStatus := renderedTree.overlay.UntrackedStatus(visitedEntry.Path); untrackedStatus != nil {
		markerColor := renderedTree.chain.ResolveUntrackedStatusColor(*untrackedStatus)
		untrackedSlot = markerColor.Sprint(untrackedStatus.Marker(), renderedTree.colorEnabled)
	}
	trackedSlot := emptyStatusSlot
	if trackedStatus := renderedTree.overlay.TrackedStatus(visitedEntry.Path); trackedStatus != nil {
		markerColor := renderedTree.chain.ResolveTrackedStatusColor(*trackedStatus)
		trackedSlot = markerColor.Sprint(trackedStatus.Marker(), renderedTree.colorEnabled)
	}

	_, writeError := destination.WriteString(untrackedSlot + trackedSlot)
	return writeError
}

// writeIndentation writes the branch glyph once per depth level.
func (renderedTree *Tree) writeIndentation(destination *bufio.Writer, depth int) error {
	for level := 0; level < depth; level++ {
		if _, writeError := destination.WriteString(renderedTree.charset.Branch); writeError != nil {
			return writeError
		}
	}
	return nil
}

// colorized wraps text in the color's escape sequences when colors are on.
func (renderedTree *Tree) colorized(text string, entryColor *colorize.Color) string {
	if entryColor == nil || !renderedTree.colorEnabled {
		return text
	}
	return entryColor.Sprint(text, true)
}

// isIgnored asks the overlay whether ignore rules match the path.
func (renderedTree *Tree) isIgnored(queryPath string) bool {
	if renderedTree.overlay == nil {
		return false
	}
	return renderedTree.overlay.IsIgnored(queryPath)
}

// sortableForEntry adapts an entry to the sorting engine's view.
func sortableForEntry(visitedEntry entry.Entry) sorting.Sortable {
	return sorting.Sortable{Name: visitedEntry.Name(), IsDirectory: visitedEntry.IsDirectory()}
}
