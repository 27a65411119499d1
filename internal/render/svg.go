// Package render turns catalog + state + viewport into an SVG document. The
// renderer is a pure function of its inputs: no host-runtime coupling, no
// mutation, so the same snapshot always yields the same markup.
package render

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strings"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
)

// Mode selects path-based or circle-fallback rendering. The mode is computed
// once at catalog load; mixed per-region modes are deliberately impossible.
type Mode int

const (
	ModeCircles Mode = iota
	ModePaths
)

// pathThreshold is the minimum number of precomputed boundary paths required
// before the renderer trusts them for the whole map.
const pathThreshold = 20

// ModeFor picks the render mode from the available boundary paths.
func ModeFor(paths map[string]model.BoundaryPath) Mode {
	if len(paths) > pathThreshold {
		return ModePaths
	}
	return ModeCircles
}

const (
	labelZoomThreshold   = 0.8
	capitalZoomThreshold = 3.0
)

type entry struct {
	region model.Region
	cx, cy float64
	r      float64
	d      string
}

// Renderer draws the offline region map.
type Renderer struct {
	catalog map[string]model.Region
	paths   map[string]model.BoundaryPath
	mode    Mode

	entries     []entry
	outline     string
	kaliningrad string
}

// New prepares a renderer for a catalog and optional boundary paths.
func New(catalog map[string]model.Region, paths map[string]model.BoundaryPath) *Renderer {
	r := &Renderer{
		catalog:     catalog,
		paths:       paths,
		mode:        ModeFor(paths),
		outline:     outlinePath(geo.RussiaOutline),
		kaliningrad: outlinePath(geo.KaliningradOutline),
	}

	for _, reg := range catalog {
		// A region without a center or area cannot be placed; skip it
		// rather than blanking the whole map.
		if reg.AreaKm2 <= 0 || (reg.Center == model.Coordinate{}) {
			continue
		}
		e := entry{region: reg, r: geo.AreaToRadius(reg.AreaKm2)}
		if p, ok := paths[reg.ID]; ok {
			e.cx, e.cy = p.CX, p.CY
			e.d = p.D
		} else {
			e.cx, e.cy = geo.Project(reg.Center.Lon, reg.Center.Lat)
		}
		r.entries = append(r.entries, e)
	}
	// Largest first so small regions stay on top and clickable.
	sort.Slice(r.entries, func(i, j int) bool {
		if r.entries[i].region.AreaKm2 != r.entries[j].region.AreaKm2 {
			return r.entries[i].region.AreaKm2 > r.entries[j].region.AreaKm2
		}
		return r.entries[i].region.ID < r.entries[j].region.ID
	})

	return r
}

// Mode reports the uniform render mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

func outlinePath(ring [][2]float64) string {
	pts := make([]string, 0, len(ring))
	for _, pt := range ring {
		x, y := geo.Project(pt[0], pt[1])
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	return "M " + strings.Join(pts, " L ") + " Z"
}

// fillFor resolves a region's fill color by state priority: downloaded and
// downloading get the full district color, active and hovered get it with
// reduced alpha, everything else is neutral gray.
func fillFor(reg model.Region, status model.DownloadStatus, active, hovered bool) string {
	color, ok := geo.DistrictColors[reg.District]
	if !ok {
		return "#e0e0e0"
	}
	switch {
	case status == model.StatusDownloaded, status == model.StatusDownloading:
		return color
	case active:
		return color + "90"
	case hovered:
		return color + "60"
	default:
		return "#d5dbe3"
	}
}

// Render produces the SVG document for one state snapshot and viewbox.
func (r *Renderer) Render(snap state.Snapshot, vb model.ViewBox) string {
	zoom := geo.SurfaceWidth / vb.W
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) || zoom <= 0 {
		zoom = 1
	}
	sqz := math.Sqrt(zoom)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" preserveAspectRatio="xMidYMid meet">`,
		vb.X, vb.Y, vb.W, vb.H)

	b.WriteString(`<defs><filter id="region-glow" x="-50%" y="-50%" width="200%" height="200%">` +
		`<feGaussianBlur stdDeviation="3" result="blur"/>` +
		`<feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge></filter>` +
		`<style>@keyframes regionPulse{0%,100%{opacity:0.45;}50%{opacity:1;}}` +
		`.region-downloading{animation:regionPulse 1.5s ease-in-out infinite;}` +
		`.region-shape{cursor:pointer;pointer-events:all;}` +
		`.region-label{pointer-events:none;user-select:none;}</style></defs>`)

	// Fill the whole visible space, including overscroll.
	fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#f1f5f9"/>`,
		vb.X-500, vb.Y-500, vb.W+1000, vb.H+1000)

	if r.mode == ModeCircles {
		ow := 0.6 / sqz
		fmt.Fprintf(&b, `<path d="%s" fill="#e8ecf0" stroke="#cbd5e1" stroke-width="%.2f"/>`, r.outline, ow)
		fmt.Fprintf(&b, `<path d="%s" fill="#e8ecf0" stroke="#cbd5e1" stroke-width="%.2f"/>`, r.kaliningrad, ow)
	}

	for _, e := range r.entries {
		id := e.region.ID
		status := snap.Status[id]
		active := snap.ActiveRegionID == id
		hovered := snap.HoveredRegionID == id
		fill := fillFor(e.region, status, active, hovered)

		class := "region-shape"
		if status == model.StatusDownloading {
			class += " region-downloading"
		}
		glow := ""
		if active {
			glow = ` filter="url(#region-glow)"`
		}

		if r.mode == ModePaths && e.d != "" {
			stroke := "#94a3b8"
			sw := 0.3 / sqz
			if active {
				stroke = "#1e293b"
				sw = 1.0 / sqz
			} else if hovered {
				stroke = "#475569"
			}
			fmt.Fprintf(&b,
				`<path data-region-id="%s" d="%s" fill="%s" fill-rule="evenodd" stroke="%s" stroke-width="%.2f" class="%s"%s/>`,
				id, e.d, fill, stroke, sw, class, glow)
			continue
		}

		radius := e.r
		stroke := "#ffffff80"
		sw := 0.5 / sqz
		if active {
			radius *= 1.35
			stroke = "#1e293b"
			sw = 1.4 / sqz
		} else if hovered {
			radius *= 1.15
			stroke = "#475569"
		}
		fmt.Fprintf(&b,
			`<circle data-region-id="%s" cx="%.1f" cy="%.1f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f" class="%s"%s/>`,
			id, e.cx, e.cy, radius, fill, stroke, sw, class, glow)
	}

	if zoom >= labelZoomThreshold {
		r.renderLabels(&b, snap, zoom)
	}
	if zoom >= capitalZoomThreshold {
		r.renderCapitals(&b, sqz)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// labelFontSize shrinks with the square root of zoom so text stays readable
// without growing unboundedly.
func labelFontSize(zoom float64) float64 {
	return math.Max(2.5, math.Min(6, 5/math.Sqrt(zoom)))
}

func (r *Renderer) renderLabels(b *strings.Builder, snap state.Snapshot, zoom float64) {
	fs := labelFontSize(zoom)
	usePaths := r.mode == ModePaths

	for _, e := range r.entries {
		id := e.region.ID
		active := snap.ActiveRegionID == id
		hovered := snap.HoveredRegionID == id
		status := snap.Status[id]
		hasColor := active || hovered ||
			status == model.StatusDownloaded || status == model.StatusDownloading

		weight := 500
		if active || hovered {
			weight = 700
		}
		textFill := "#475569"
		if hasColor {
			textFill = "#1e293b"
		}

		// Path mode puts the label in the centroid; circle mode below the
		// circle.
		labelY := e.cy + e.r + fs*1.1
		size := fs
		halo := ""
		if usePaths {
			labelY = e.cy + fs*0.35
			size = fs * 0.85
			halo = fmt.Sprintf(` stroke="#ffffffcc" stroke-width="%.2f" paint-order="stroke"`, fs*0.15)
		}

		fmt.Fprintf(b,
			`<text class="region-label" x="%.1f" y="%.1f" text-anchor="middle" font-size="%.2f" font-weight="%d" fill="%s" font-family="system-ui, sans-serif"%s>%s</text>`,
			e.cx, labelY, size, weight, textFill, halo, html.EscapeString(e.region.Label))
	}
}

func (r *Renderer) renderCapitals(b *strings.Builder, sqz float64) {
	dotR := math.Max(0.6, 1.2/sqz)
	fs := math.Max(1.8, 3.5/sqz)

	for _, e := range r.entries {
		capName := e.region.Capital
		if capName == "" {
			continue
		}
		x, y := geo.Project(e.region.CapitalCoords.Lon, e.region.CapitalCoords.Lat)
		fmt.Fprintf(b, `<g class="region-label capital" data-region-id="%s">`, e.region.ID)
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="#1e293b"/>`, x, y, dotR)
		fmt.Fprintf(b,
			`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.2f" font-weight="600" fill="#0f172a" font-family="system-ui, sans-serif" stroke="#ffffffcc" stroke-width="%.2f" paint-order="stroke">%s</text>`,
			x, y-dotR-fs*0.3, fs, fs*0.18, html.EscapeString(capName))
		b.WriteString(`</g>`)
	}
}
