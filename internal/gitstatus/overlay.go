package gitstatus

import (
	"fmt"

	"go.uber.org/zap"
)

// Provider supplies version-control state for one repository. Paths passed to
// StatusAt and IsIgnored are cache keys: root-relative, slash-separated.
type Provider interface {
	// RootDirectory returns the repository's root directory.
	RootDirectory() string
	// BulkStatus scans the whole repository and returns a status per path.
	BulkStatus() (map[string]RawStatus, error)
	// StatusAt queries the status of a single path.
	StatusAt(relativePath string) (RawStatus, error)
	// IsIgnored reports whether ignore rules match the path.
	IsIgnored(relativePath string) (bool, error)
}

// Overlay answers per-path status lookups from a bulk-scan cache, falling
// back to on-demand provider queries on cache misses. The cache is built once
// at construction and never written to afterwards, so one render pass always
// sees one consistent snapshot.
type Overlay struct {
	provider    Provider
	statusCache map[string]RawStatus
	logger      *zap.Logger
}

// NewOverlay builds an Overlay by running the provider's bulk scan.
func NewOverlay(provider Provider, logger *zap.Logger) (*Overlay, error) {
	statusCache, bulkError := provider.BulkStatus()
	if bulkError != nil {
		return nil, fmt.Errorf("scanning repository status: %w", bulkError)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Overlay{provider: provider, statusCache: statusCache, logger: logger}, nil
}

// RootDirectory returns the repository root the overlay keys paths against.
func (overlay *Overlay) RootDirectory() string {
	return overlay.provider.RootDirectory()
}

// TrackedStatus returns the index-relative status for the path, or nil when
// the path has none or any underlying query fails.
func (overlay *Overlay) TrackedStatus(queryPath string) *Status {
	rawStatus, found := overlay.rawStatus(queryPath)
	if !found {
		return nil
	}
	trackedStatus, present := rawStatus.Tracked()
	if !present {
		return nil
	}
	return &trackedStatus
}

// UntrackedStatus returns the working-tree-relative status for the path, or
// nil when the path has none or any underlying query fails.
func (overlay *Overlay) UntrackedStatus(queryPath string) *Status {
	rawStatus, found := overlay.rawStatus(queryPath)
	if !found {
		return nil
	}
	untrackedStatus, present := rawStatus.Untracked()
	if !present {
		return nil
	}
	return &untrackedStatus
}

// IsIgnored reports whether ignore rules match the path. The query is always
// on demand: nested ignore files can match paths the bulk scan never saw.
// Errors degrade to "not ignored".
func (overlay *Overlay) IsIgnored(queryPath string) bool {
	relativeKey, keyError := RelativeKey(overlay.provider.RootDirectory(), queryPath)
	if keyError != nil {
		overlay.logger.Debug("skipping ignore lookup", zap.String("path", queryPath), zap.Error(keyError))
		return false
	}
	ignored, ignoreError := overlay.provider.IsIgnored(relativeKey)
	if ignoreError != nil {
		overlay.logger.Debug("ignore lookup failed", zap.String("path", queryPath), zap.Error(ignoreError))
		return false
	}
	return ignored
}

// rawStatus resolves the raw status for a path: normalize the key, check the
// cache, then fall back to a single-path on-demand query. Results are never
// written back to the cache.
func (overlay *Overlay) rawStatus(queryPath string) (RawStatus, bool) {
	relativeKey, keyError := RelativeKey(overlay.provider.RootDirectory(), queryPath)
	if keyError != nil {
		overlay.logger.Debug("skipping status lookup", zap.String("path", queryPath), zap.Error(keyError))
		return 0, false
	}

	if cachedStatus, cacheHit := overlay.statusCache[relativeKey]; cacheHit {
		return cachedStatus, true
	}

	onDemandStatus, statusError := overlay.provider.StatusAt(relativeKey)
	if statusError != nil {
		overlay.logger.Debug("on-demand status lookup failed", zap.String("path", queryPath), zap.Error(statusError))
		return 0, false
	}
	return onDemandStatus, true
}
