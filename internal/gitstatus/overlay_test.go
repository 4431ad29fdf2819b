package gitstatus

import (
	"errors"
	"path/filepath"
	"testing"
)

// fakeProvider serves canned statuses and records on-demand query traffic.
type fakeProvider struct {
	rootDirectory   string
	bulkStatuses    map[string]RawStatus
	bulkError       error
	onDemand        map[string]RawStatus
	onDemandError   error
	onDemandQueries []string
	ignoredPaths    map[string]bool
	ignoreError     error
}

func (provider *fakeProvider) RootDirectory() string {
	return provider.rootDirectory
}

func (provider *fakeProvider) BulkStatus() (map[string]RawStatus, error) {
	if provider.bulkError != nil {
		return nil, provider.bulkError
	}
	return provider.bulkStatuses, nil
}

func (provider *fakeProvider) StatusAt(relativePath string) (RawStatus, error) {
	provider.onDemandQueries = append(provider.onDemandQueries, relativePath)
	if provider.onDemandError != nil {
		return 0, provider.onDemandError
	}
	return provider.onDemand[relativePath], nil
}

func (provider *fakeProvider) IsIgnored(relativePath string) (bool, error) {
	if provider.ignoreError != nil {
		return false, provider.ignoreError
	}
	return provider.ignoredPaths[relativePath], nil
}

var _ Provider = (*fakeProvider)(nil)

func newTestOverlay(t *testing.T, provider *fakeProvider) *Overlay {
	t.Helper()
	overlay, overlayError := NewOverlay(provider, nil)
	if overlayError != nil {
		t.Fatalf("NewOverlay: %v", overlayError)
	}
	return overlay
}

func TestNewOverlayPropagatesBulkScanFailure(t *testing.T) {
	provider := &fakeProvider{rootDirectory: t.TempDir(), bulkError: errors.New("scan failed")}
	if _, overlayError := NewOverlay(provider, nil); overlayError == nil {
		t.Fatal("NewOverlay should fail when the bulk scan fails")
	}
}

func TestOverlayServesStatusesFromCache(t *testing.T) {
	rootDirectory := t.TempDir()
	provider := &fakeProvider{
		rootDirectory: rootDirectory,
		bulkStatuses: map[string]RawStatus{
			"added.go":   RawIndexNew,
			"changed.go": RawWorktreeModified,
			"clean.go":   0,
		},
	}
	overlay := newTestOverlay(t, provider)

	trackedStatus := overlay.TrackedStatus(filepath.Join(rootDirectory, "added.go"))
	if trackedStatus == nil || *trackedStatus != StatusAdded {
		t.Fatalf("TrackedStatus(added.go) = %v, want added", trackedStatus)
	}
	untrackedStatus := overlay.UntrackedStatus(filepath.Join(rootDirectory, "changed.go"))
	if untrackedStatus == nil || *untrackedStatus != StatusModified {
		t.Fatalf("UntrackedStatus(changed.go) = %v, want modified", untrackedStatus)
	}
	if cleanStatus := overlay.TrackedStatus(filepath.Join(rootDirectory, "clean.go")); cleanStatus != nil {
		t.Fatalf("TrackedStatus(clean.go) = %v, want none", cleanStatus)
	}
	if len(provider.onDemandQueries) != 0 {
		t.Fatalf("cached lookups ran %d on-demand queries: %v", len(provider.onDemandQueries), provider.onDemandQueries)
	}
}

func TestOverlayFallsBackToOnDemandQueries(t *testing.T) {
	rootDirectory := t.TempDir()
	provider := &fakeProvider{
		rootDirectory: rootDirectory,
		bulkStatuses:  map[string]RawStatus{},
		onDemand: map[string]RawStatus{
			"late.go": RawWorktreeNew,
		},
	}
	overlay := newTestOverlay(t, provider)

	untrackedStatus := overlay.UntrackedStatus(filepath.Join(rootDirectory, "late.go"))
	if untrackedStatus == nil || *untrackedStatus != StatusAdded {
		t.Fatalf("UntrackedStatus(late.go) = %v, want added", untrackedStatus)
	}
	if len(provider.onDemandQueries) != 1 || provider.onDemandQueries[0] != "late.go" {
		t.Fatalf("expected one on-demand query for late.go, got %v", provider.onDemandQueries)
	}
}

func TestOverlayDegradesOnLookupFailure(t *testing.T) {
	rootDirectory := t.TempDir()
	provider := &fakeProvider{
		rootDirectory: rootDirectory,
		bulkStatuses:  map[string]RawStatus{},
		onDemandError: errors.New("query failed"),
		ignoreError:   errors.New("ignore query failed"),
	}
	overlay := newTestOverlay(t, provider)

	queryPath := filepath.Join(rootDirectory, "anything.go")
	if trackedStatus := overlay.TrackedStatus(queryPath); trackedStatus != nil {
		t.Fatalf("TrackedStatus under failure = %v, want none", trackedStatus)
	}
	if overlay.IsIgnored(queryPath) {
		t.Fatal("IsIgnored under failure should report false")
	}
}

func TestOverlayIsIgnoredQueriesOnDemand(t *testing.T) {
	rootDirectory := t.TempDir()
	provider := &fakeProvider{
		rootDirectory: rootDirectory,
		bulkStatuses:  map[string]RawStatus{},
		ignoredPaths:  map[string]bool{"target": true},
	}
	overlay := newTestOverlay(t, provider)

	if !overlay.IsIgnored(filepath.Join(rootDirectory, "target")) {
		t.Fatal("IsIgnored(target) should report true")
	}
	if overlay.IsIgnored(filepath.Join(rootDirectory, "src")) {
		t.Fatal("IsIgnored(src) should report false")
	}
}

func TestOverlayRejectsPathsOutsideRoot(t *testing.T) {
	rootDirectory := t.TempDir()
	provider := &fakeProvider{rootDirectory: rootDirectory, bulkStatuses: map[string]RawStatus{}}
	overlay := newTestOverlay(t, provider)

	outsidePath := filepath.Join(rootDirectory, "..", "outside.go")
	if trackedStatus := overlay.TrackedStatus(outsidePath); trackedStatus != nil {
		t.Fatalf("TrackedStatus outside root = %v, want none", trackedStatus)
	}
	if overlay.IsIgnored(outsidePath) {
		t.Fatal("IsIgnored outside root should report false")
	}
	if len(provider.onDemandQueries) != 0 {
		t.Fatalf("outside-root path reached the provider: %v", provider.onDemandQueries)
	}
}
