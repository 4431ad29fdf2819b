// Package gitstatus overlays version-control status onto rendered entries.
// Statuses come from one bulk repository scan cached at startup, with
// on-demand single-path queries as the fallback; decoration is best-effort
// and never aborts rendering.
package gitstatus

// Status is one version-control change kind, relative either to the last
// commit (tracked) or to the index (untracked).
type Status int

const (
	// StatusAdded marks a new file.
	StatusAdded Status = iota
	// StatusModified marks a changed file.
	StatusModified
	// StatusRemoved marks a removed file.
	StatusRemoved
	// StatusRenamed marks a renamed file.
	StatusRenamed
)

// Marker returns the single-character marker rendered for the status.
func (status Status) Marker() string {
	switch status {
	case StatusAdded:
		return "+"
	case StatusModified:
		return "~"
	case StatusRemoved:
		return "-"
	case StatusRenamed:
		return "R"
	default:
		return " "
	}
}

// RawStatus is the bitwise combination of index and working-tree states for
// one path. The zero value means clean: present in the scan, no changes.
type RawStatus uint16

const (
	// RawIndexNew marks a file added to the index.
	RawIndexNew RawStatus = 1 << iota
	// RawIndexModified marks a file modified in the index.
	RawIndexModified
	// RawIndexRemoved marks a file removed from the index.
	RawIndexRemoved
	// RawIndexRenamed marks a file renamed in the index.
	RawIndexRenamed
	// RawWorktreeNew marks an untracked file in the working tree.
	RawWorktreeNew
	// RawWorktreeModified marks a file modified in the working tree.
	RawWorktreeModified
	// RawWorktreeRemoved marks a file removed from the working tree.
	RawWorktreeRemoved
	// RawWorktreeRenamed marks a file renamed in the working tree.
	RawWorktreeRenamed
	// RawIgnored marks a path matched by ignore rules.
	RawIgnored
)

// Tracked extracts the index-relative status, if any.
func (raw RawStatus) Tracked() (Status, bool) {
	switch {
	case raw&RawIndexNew != 0:
		return StatusAdded, true
	case raw&RawIndexModified != 0:
		return StatusModified, true
	case raw&RawIndexRemoved != 0:
		return StatusRemoved, true
	case raw&RawIndexRenamed != 0:
		return StatusRenamed, true
	default:
		return 0, false
	}
}

// Untracked extracts the working-tree-relative status, if any.
func (raw RawStatus) Untracked() (Status, bool) {
	switch {
	case raw&RawWorktreeNew != 0:
		return StatusAdded, true
	case raw&RawWorktreeModified != 0:
		return StatusModified, true
	case raw&RawWorktreeRemoved != 0:
		return StatusRemoved, true
	case raw&RawWorktreeRenamed != 0:
		return StatusRenamed, true
	default:
		return 0, false
	}
}
