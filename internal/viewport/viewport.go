// Package viewport owns the visible sub-rectangle of the drawing surface and
// the gestures that mutate it: wheel and button zoom, pointer panning with
// click/drag disambiguation, and eased fly-to animation. All math is
// host-runtime-agnostic; frame timing comes from an injected FrameScheduler.
package viewport

import (
	"math"
	"sync"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
)

const (
	// MinZoom/MaxZoom bound the viewbox width to
	// [SurfaceWidth/MaxZoom, SurfaceWidth/MinZoom].
	MinZoom = 0.3
	MaxZoom = 12.0

	aspect = geo.SurfaceWidth / geo.SurfaceHeight

	wheelFactor  = 1.15
	buttonFactor = 1.4

	// Pointer movement beyond this many pixels turns a press into a pan.
	dragThresholdPx = 3.0

	flyToSteps = 30
	resetSteps = 25

	// Viewbox origin may overshoot the surface edge by this fraction of the
	// viewbox's own size.
	overscroll = 0.3
)

// Full returns the initial viewbox covering the whole drawing surface.
func Full() model.ViewBox {
	return model.ViewBox{X: 0, Y: 0, W: geo.SurfaceWidth, H: geo.SurfaceHeight}
}

// Clamp bounds a viewbox to the zoom range and soft pan limits. Height is
// always re-derived from width so the aspect ratio never distorts. Clamp is
// idempotent: applying it to an already-clamped viewbox is a no-op.
func Clamp(vb model.ViewBox) model.ViewBox {
	minW := geo.SurfaceWidth / MaxZoom
	maxW := geo.SurfaceWidth / MinZoom
	w := math.Max(minW, math.Min(maxW, vb.W))
	h := w / aspect
	x := math.Max(-w*overscroll, math.Min(geo.SurfaceWidth-w*overscroll, vb.X))
	y := math.Max(-h*overscroll, math.Min(geo.SurfaceHeight-h*overscroll, vb.Y))
	return model.ViewBox{X: x, Y: y, W: w, H: h}
}

func finite(vb model.ViewBox) bool {
	for _, v := range [4]float64{vb.X, vb.Y, vb.W, vb.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type panState struct {
	startX, startY float64
	vb             model.ViewBox
}

// Controller is the viewport state machine.
type Controller struct {
	mu       sync.Mutex
	vb       model.ViewBox
	lastGood model.ViewBox
	pixelW   float64
	pixelH   float64
	pan      *panState
	dragged  bool
	gen      int

	sched FrameScheduler

	// OnChange is called after every viewbox mutation (including each
	// animation frame).
	OnChange func(model.ViewBox)
	// OnReset is called when Reset clears the selection.
	OnReset func()
}

func New(sched FrameScheduler) *Controller {
	if sched == nil {
		sched = SyncScheduler{}
	}
	full := Full()
	return &Controller{
		vb:       full,
		lastGood: full,
		pixelW:   geo.SurfaceWidth,
		pixelH:   geo.SurfaceHeight,
		sched:    sched,
	}
}

// SetRenderedSize records the on-screen pixel size of the map, used to convert
// pointer deltas into viewbox units.
func (c *Controller) SetRenderedSize(w, h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if w > 0 {
		c.pixelW = w
	}
	if h > 0 {
		c.pixelH = h
	}
}

// ViewBox returns the current viewbox.
func (c *Controller) ViewBox() model.ViewBox {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vb
}

// Zoom returns the current zoom level (1 = whole surface visible).
func (c *Controller) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return geo.SurfaceWidth / c.vb.W
}

// setLocked clamps and applies a viewbox, falling back to the last known-good
// state if the computation produced non-finite values.
func (c *Controller) setLocked(vb model.ViewBox) {
	if !finite(vb) {
		vb = c.lastGood
	} else {
		vb = Clamp(vb)
	}
	c.vb = vb
	c.lastGood = vb
	onChange := c.OnChange
	c.mu.Unlock()
	if onChange != nil {
		onChange(vb)
	}
	c.mu.Lock()
}

// Wheel applies cursor-anchored zoom. out zooms away from the map; px/py are
// the cursor position in rendered pixels, so the point under the cursor stays
// fixed.
func (c *Controller) Wheel(out bool, px, py float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	factor := wheelFactor
	if !out {
		factor = 1 / wheelFactor
	}
	mx := px / c.pixelW
	my := py / c.pixelH

	prev := c.vb
	newW := prev.W * factor
	newH := newW / aspect
	c.setLocked(model.ViewBox{
		X: prev.X + (prev.W-newW)*mx,
		Y: prev.Y + (prev.H-newH)*my,
		W: newW,
		H: newH,
	})
}

// ZoomIn applies a fixed-factor zoom anchored at the viewport center.
func (c *Controller) ZoomIn() { c.buttonZoom(1 / buttonFactor) }

// ZoomOut applies a fixed-factor zoom out anchored at the viewport center.
func (c *Controller) ZoomOut() { c.buttonZoom(buttonFactor) }

func (c *Controller) buttonZoom(factor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.vb
	newW := prev.W * factor
	newH := newW / aspect
	c.setLocked(model.ViewBox{
		X: prev.X + (prev.W-newW)/2,
		Y: prev.Y + (prev.H-newH)/2,
		W: newW,
		H: newH,
	})
}

// PointerDown begins a potential pan at the given pixel position.
func (c *Controller) PointerDown(px, py float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pan = &panState{startX: px, startY: py, vb: c.vb}
	c.dragged = false
}

// PointerMove pans the viewbox by the pointer delta. Movement beyond the drag
// threshold marks the gesture as a pan so the release is not treated as a
// click.
func (c *Controller) PointerMove(px, py float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pan == nil {
		return
	}

	dx := px - c.pan.startX
	dy := py - c.pan.startY
	if math.Abs(dx) > dragThresholdPx || math.Abs(dy) > dragThresholdPx {
		c.dragged = true
	}

	svgDx := dx / c.pixelW * c.pan.vb.W
	svgDy := dy / c.pixelH * c.pan.vb.H
	c.setLocked(model.ViewBox{
		X: c.pan.vb.X - svgDx,
		Y: c.pan.vb.Y - svgDy,
		W: c.pan.vb.W,
		H: c.pan.vb.H,
	})
}

// PointerUp ends the gesture. It reports true when the gesture never exceeded
// the drag threshold, i.e. the release should dispatch a region click; after
// a pan the release is swallowed.
func (c *Controller) PointerUp() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pan == nil {
		return false
	}
	click := !c.dragged
	c.pan = nil
	c.dragged = false
	return click
}

// flyToWidth picks the target viewbox width for a region: larger regions get
// a wider (less zoomed) target.
func flyToWidth(areaKm2 float64) float64 {
	switch {
	case areaKm2 > 1_000_000:
		return geo.SurfaceWidth * 0.5
	case areaKm2 > 200_000:
		return geo.SurfaceWidth * 0.35
	case areaKm2 > 50_000:
		return geo.SurfaceWidth * 0.25
	case areaKm2 > 10_000:
		return geo.SurfaceWidth * 0.18
	default:
		return geo.SurfaceWidth * 0.12
	}
}

// FlyTo animates toward a viewbox centered on the region. A second FlyTo
// supersedes the first, starting from whatever viewbox the interrupted
// animation reached.
func (c *Controller) FlyTo(region model.Region) {
	cx, cy := geo.Project(region.Center.Lon, region.Center.Lat)
	w := flyToWidth(region.AreaKm2)
	h := w / aspect
	target := Clamp(model.ViewBox{X: cx - w/2, Y: cy - h/2, W: w, H: h})
	c.animate(target, flyToSteps)
}

// Reset animates back to the full surface and clears the active selection.
func (c *Controller) Reset() {
	c.animate(Full(), resetSteps)
	if c.OnReset != nil {
		c.OnReset()
	}
}

func (c *Controller) animate(target model.ViewBox, steps int) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	start := c.vb
	c.mu.Unlock()

	step := 0
	var frame func()
	frame = func() {
		c.mu.Lock()
		if c.gen != gen {
			c.mu.Unlock()
			return
		}
		step++
		t := float64(step) / float64(steps)
		ease := 1 - math.Pow(1-t, 3)
		c.setLocked(model.ViewBox{
			X: start.X + (target.X-start.X)*ease,
			Y: start.Y + (target.Y-start.Y)*ease,
			W: start.W + (target.W-start.W)*ease,
			H: start.H + (target.H-start.H)*ease,
		})
		done := step >= steps
		c.mu.Unlock()
		if !done {
			c.sched.RequestFrame(frame)
		}
	}
	c.sched.RequestFrame(frame)
}
