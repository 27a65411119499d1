// Package state holds the shared download/selection state for the offline map.
// The store is a plain synchronous container: every write is applied under one
// mutex and observers are notified with an immutable snapshot. It performs no
// I/O and is always dependency-injected, never a package-level singleton.
package state

import (
	"sync"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
)

// Snapshot is a point-in-time copy of the store. Maps are owned by the
// receiver and safe to read without locking.
type Snapshot struct {
	Status   map[string]model.DownloadStatus `json:"status"`
	Progress map[string]int                  `json:"progress"`
	// ActiveRegionID drives the map highlight and fly-to target; empty means
	// no selection.
	ActiveRegionID string `json:"active_region_id"`
	// HoveredRegionID drives transient hover feedback only.
	HoveredRegionID string `json:"hovered_region_id"`
}

// Store is the single source of truth for per-region download status and the
// active/hovered selection.
type Store struct {
	mu       sync.Mutex
	status   map[string]model.DownloadStatus
	progress map[string]int
	active   string
	hovered  string

	subs   map[int]func(Snapshot)
	nextID int
}

func New() *Store {
	return &Store{
		status:   make(map[string]model.DownloadStatus),
		progress: make(map[string]int),
		subs:     make(map[int]func(Snapshot)),
	}
}

// Subscribe registers an observer called after every write. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// SetStatus overwrites a region's download status. Transition legality is the
// caller's responsibility.
func (s *Store) SetStatus(regionID string, st model.DownloadStatus) {
	s.mu.Lock()
	s.status[regionID] = st
	s.notifyLocked()
}

// SetProgress overwrites a region's download progress, clamped to [0,100].
func (s *Store) SetProgress(regionID string, progress int) {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}
	s.mu.Lock()
	s.progress[regionID] = progress
	s.notifyLocked()
}

// SetActiveRegion sets the selected region; empty clears the selection.
func (s *Store) SetActiveRegion(regionID string) {
	s.mu.Lock()
	s.active = regionID
	s.notifyLocked()
}

// SetHoveredRegion sets the hovered region; empty clears it.
func (s *Store) SetHoveredRegion(regionID string) {
	s.mu.Lock()
	s.hovered = regionID
	s.notifyLocked()
}

// InitDownloadedRegions bulk-marks previously cached regions as downloaded.
// Called once at mount with the ids reported by the download orchestrator;
// every other region implicitly stays at StatusNone.
func (s *Store) InitDownloadedRegions(regionIDs []string) {
	s.mu.Lock()
	s.status = make(map[string]model.DownloadStatus, len(regionIDs))
	for _, id := range regionIDs {
		s.status[id] = model.StatusDownloaded
	}
	s.notifyLocked()
}

// Status returns a region's download status, defaulting to StatusNone.
func (s *Store) Status(regionID string) model.DownloadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.status[regionID]; ok {
		return st
	}
	return model.StatusNone
}

// Progress returns a region's download progress.
func (s *Store) Progress(regionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress[regionID]
}

// ActiveRegion returns the selected region id, or empty.
func (s *Store) ActiveRegion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// HoveredRegion returns the hovered region id, or empty.
func (s *Store) HoveredRegion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered
}

// Snapshot returns a copy of the whole store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Status:          make(map[string]model.DownloadStatus, len(s.status)),
		Progress:        make(map[string]int, len(s.progress)),
		ActiveRegionID:  s.active,
		HoveredRegionID: s.hovered,
	}
	for k, v := range s.status {
		snap.Status[k] = v
	}
	for k, v := range s.progress {
		snap.Progress[k] = v
	}
	return snap
}

// notifyLocked snapshots under the lock, releases it, then calls observers so
// a subscriber can re-enter the store.
func (s *Store) notifyLocked() {
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
