// Package app assembles the offline map screen: one state store shared by the
// map renderer and the region list panel, a viewport controller reacting to
// selection changes with fly-to, and the download orchestrator behind its
// contract interface.
package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/metrics"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/panel"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/render"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/tiles"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/viewport"
)

// Composer wires the subsystem together for one screen.
type Composer struct {
	State    *state.Store
	Viewport *viewport.Controller
	Panel    *panel.Panel
	Renderer *render.Renderer
	Orch     tiles.Orchestrator

	// OnRegionSelect fires when the user activates a region from the map or
	// the list; the consumer opens the download dialog.
	OnRegionSelect func(regionID string)

	log        *slog.Logger
	mu         sync.Mutex
	lastActive string
	unsub      func()
}

// New builds the screen. paths may be nil (circle-fallback rendering).
func New(paths map[string]model.BoundaryPath, orch tiles.Orchestrator, sched viewport.FrameScheduler, log *slog.Logger) *Composer {
	if log == nil {
		log = slog.Default()
	}

	st := state.New()
	c := &Composer{
		State:    st,
		Viewport: viewport.New(sched),
		Panel:    panel.New(st, 0),
		Renderer: render.New(geo.Catalog(), paths),
		Orch:     orch,
		log:      log,
	}

	c.Viewport.OnReset = func() { st.SetActiveRegion("") }
	c.Panel.OnRegionSelect = c.SelectRegion
	c.unsub = st.Subscribe(c.onState)
	return c
}

// onState triggers a fly-to whenever the active region changes to a non-empty
// id, regardless of whether the write came from a map click, a list click, or
// scroll synchronization.
func (c *Composer) onState(snap state.Snapshot) {
	c.mu.Lock()
	changed := snap.ActiveRegionID != c.lastActive
	c.lastActive = snap.ActiveRegionID
	c.mu.Unlock()

	if !changed || snap.ActiveRegionID == "" {
		return
	}
	if r, ok := geo.Get(snap.ActiveRegionID); ok {
		c.Viewport.FlyTo(r)
	}
}

// Mount seeds the state store with previously downloaded regions reported by
// the orchestrator.
func (c *Composer) Mount(ctx context.Context) error {
	ids, err := c.Orch.Downloaded(ctx)
	if err != nil {
		return err
	}
	c.State.InitDownloadedRegions(ids)
	c.log.Info("mounted", "downloaded_regions", len(ids))
	return nil
}

// SelectRegion activates a region and dispatches the selection event. Used by
// both the map click path (after drag disambiguation) and the list click path.
func (c *Composer) SelectRegion(regionID string) {
	if _, ok := geo.Get(regionID); !ok {
		c.log.Warn("select_unknown_region", "region", regionID)
		return
	}
	c.State.SetActiveRegion(regionID)
	if c.OnRegionSelect != nil {
		c.OnRegionSelect(regionID)
	}
}

// StartDownload runs the orchestrator for a region. Errors surface only as a
// terminal none status plus a log line; nothing propagates into the render
// path.
func (c *Composer) StartDownload(ctx context.Context, regionID string) {
	go func() {
		if err := c.Orch.Start(ctx, regionID); err != nil {
			c.log.Warn("download_error", "region", regionID, "error", err)
		}
	}()
}

// DeleteDownload evicts a region's cached tiles.
func (c *Composer) DeleteDownload(ctx context.Context, regionID string) error {
	return c.Orch.Delete(ctx, regionID)
}

// RenderSVG draws the map for the current state and viewport.
func (c *Composer) RenderSVG() string {
	metrics.RendersTotal.Inc()
	return c.Renderer.Render(c.State.Snapshot(), c.Viewport.ViewBox())
}

// Close releases subscriptions and pending timers.
func (c *Composer) Close() {
	if c.unsub != nil {
		c.unsub()
	}
	c.Panel.Close()
}
