// Package panel models the scrollable region list: district grouping, search
// filtering, collapse state, and the scroll→map synchronization that promotes
// the most-visible list entry to the active region. Visibility comes from an
// abstract observer (the host reports intersection ratios), so the logic runs
// without a real DOM.
package panel

import (
	"strings"
	"sync"
	"time"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
)

// Thresholds are the intersection ratios at which hosts should report entry
// visibility.
var Thresholds = []float64{0, 0.25, 0.5, 0.75, 1}

// DefaultDebounce delays scroll-driven active-region updates so fast scrolling
// doesn't make the map jump.
const DefaultDebounce = 250 * time.Millisecond

// visibleRatio is the minimum visible fraction before an entry may become the
// active region.
const visibleRatio = 0.5

// VisibilityReport is one entry's visible fraction within the scroll container.
type VisibilityReport struct {
	RegionID string
	Ratio    float64
}

// Entry is one rendered list row.
type Entry struct {
	ID       string               `json:"id"`
	Label    string               `json:"label"`
	Capital  string               `json:"capital"`
	Status   model.DownloadStatus `json:"status"`
	Progress int                  `json:"progress"`
	Active   bool                 `json:"active"`
}

// Group is one federal-district section of the list.
type Group struct {
	District   model.FederalDistrict `json:"district"`
	Name       string                `json:"name"`
	Color      string                `json:"color"`
	Collapsed  bool                  `json:"collapsed"`
	Downloaded int                   `json:"downloaded"`
	Total      int                   `json:"total"`
	Entries    []Entry               `json:"entries"`
}

// Panel is the region list model.
type Panel struct {
	mu        sync.Mutex
	store     *state.Store
	collapsed map[model.FederalDistrict]bool
	search    string
	debounce  time.Duration
	timer     *time.Timer
	// The very first visibility batch after mount is suppressed so the map
	// doesn't fly anywhere on initial render.
	mounted bool

	// OnRegionSelect fires when a list entry is clicked.
	OnRegionSelect func(regionID string)
}

// New builds a panel over the shared state store. debounce <= 0 selects
// DefaultDebounce.
func New(store *state.Store, debounce time.Duration) *Panel {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Panel{
		store:     store,
		collapsed: make(map[model.FederalDistrict]bool),
		debounce:  debounce,
	}
}

// SetSearch updates the filter string.
func (p *Panel) SetSearch(q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.search = q
}

// ToggleDistrict flips a district's collapsed state. Pure local UI state.
func (p *Panel) ToggleDistrict(d model.FederalDistrict) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collapsed[d] = !p.collapsed[d]
}

func matches(r model.Region, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Label), q) ||
		strings.Contains(strings.ToLower(r.Capital), q)
}

// Groups returns the filtered list grouped by district in fixed order.
// Districts with no matching entries are omitted while a filter is active.
func (p *Panel) Groups() []Group {
	p.mu.Lock()
	q := strings.ToLower(strings.TrimSpace(p.search))
	collapsed := make(map[model.FederalDistrict]bool, len(p.collapsed))
	for k, v := range p.collapsed {
		collapsed[k] = v
	}
	p.mu.Unlock()

	snap := p.store.Snapshot()
	catalog := geo.Catalog()

	var groups []Group
	for _, d := range geo.DistrictOrder {
		ids := geo.DistrictRegions[d]
		g := Group{
			District:  d,
			Name:      geo.DistrictNames[d],
			Color:     geo.DistrictColors[d],
			Collapsed: collapsed[d],
			Total:     len(ids),
		}
		for _, id := range ids {
			if snap.Status[id] == model.StatusDownloaded {
				g.Downloaded++
			}
			r, ok := catalog[id]
			if !ok || !matches(r, q) {
				continue
			}
			g.Entries = append(g.Entries, Entry{
				ID:       id,
				Label:    r.Label,
				Capital:  r.Capital,
				Status:   statusOr(snap.Status[id]),
				Progress: snap.Progress[id],
				Active:   snap.ActiveRegionID == id,
			})
		}
		if q != "" && len(g.Entries) == 0 {
			continue
		}
		groups = append(groups, g)
	}
	return groups
}

func statusOr(st model.DownloadStatus) model.DownloadStatus {
	if st == "" {
		return model.StatusNone
	}
	return st
}

// ReportVisibility feeds one batch of intersection ratios. When the
// most-visible entry exceeds half visibility, the active region is updated
// after the debounce window; a newer batch resets the window.
func (p *Panel) ReportVisibility(reports []VisibilityReport) {
	var bestID string
	var bestRatio float64
	for _, r := range reports {
		if r.Ratio > bestRatio {
			bestRatio = r.Ratio
			bestID = r.RegionID
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.mounted {
		p.mounted = true
		return
	}
	if bestID == "" || bestRatio <= visibleRatio {
		return
	}

	if p.timer != nil {
		p.timer.Stop()
	}
	id := bestID
	p.timer = time.AfterFunc(p.debounce, func() {
		p.store.SetActiveRegion(id)
	})
}

// ClickEntry dispatches the region-select event for a clicked row.
func (p *Panel) ClickEntry(regionID string) {
	if p.OnRegionSelect != nil {
		p.OnRegionSelect(regionID)
	}
}

// HoverEntry highlights a hovered row on the map; empty clears the highlight.
func (p *Panel) HoverEntry(regionID string) {
	p.store.SetHoveredRegion(regionID)
}

// Close cancels any pending debounce.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
