package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/viewport"
)

func renderDoc(t *testing.T, r *Renderer, snap state.Snapshot, vb model.ViewBox) *goquery.Document {
	t.Helper()
	svg := r.Render(snap, vb)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(svg))
	if err != nil {
		t.Fatalf("parsing rendered SVG: %v", err)
	}
	return doc
}

func TestCircleModeRendersAllRegions(t *testing.T) {
	r := New(geo.Catalog(), nil)
	if r.Mode() != ModeCircles {
		t.Fatal("expected circle mode without boundary paths")
	}

	doc := renderDoc(t, r, state.Snapshot{}, viewport.Full())

	shapes := doc.Find("circle[data-region-id].region-shape")
	if shapes.Length() != 85 {
		t.Fatalf("expected 85 region circles, got %d", shapes.Length())
	}

	// National outlines are drawn beneath the circles.
	outlines := doc.Find(`path[fill="#e8ecf0"]`)
	if outlines.Length() != 2 {
		t.Errorf("expected mainland + Kaliningrad outlines, got %d", outlines.Length())
	}
}

func TestFillPriority(t *testing.T) {
	r := New(geo.Catalog(), nil)
	green := geo.DistrictColors[model.DistrictCentral]

	snap := state.Snapshot{
		Status: map[string]model.DownloadStatus{
			"moscow_city": model.StatusDownloaded,
			"tver_oblast": model.StatusDownloading,
			"tula_oblast": model.StatusDownloaded,
		},
		ActiveRegionID:  "kaluga_oblast",
		HoveredRegionID: "ryazan_oblast",
	}
	doc := renderDoc(t, r, snap, viewport.Full())

	fill := func(id string) string {
		return doc.Find(fmt.Sprintf("circle[data-region-id=%s]", id)).AttrOr("fill", "")
	}

	if got := fill("moscow_city"); got != green {
		t.Errorf("downloaded fill: got %q, want %q", got, green)
	}
	if got := fill("tver_oblast"); got != green {
		t.Errorf("downloading fill: got %q, want %q", got, green)
	}
	if got := fill("kaluga_oblast"); got != green+"90" {
		t.Errorf("active fill: got %q, want %q", got, green+"90")
	}
	if got := fill("ryazan_oblast"); got != green+"60" {
		t.Errorf("hovered fill: got %q, want %q", got, green+"60")
	}
	if got := fill("bryansk_oblast"); got != "#d5dbe3" {
		t.Errorf("idle fill: got %q, want #d5dbe3", got)
	}
}

func TestActiveOverridesHoverAndDownloadOverridesActive(t *testing.T) {
	r := New(geo.Catalog(), nil)
	green := geo.DistrictColors[model.DistrictCentral]

	// Same region active, hovered and downloaded at once: the status color wins.
	snap := state.Snapshot{
		Status:          map[string]model.DownloadStatus{"moscow_city": model.StatusDownloaded},
		ActiveRegionID:  "moscow_city",
		HoveredRegionID: "moscow_city",
	}
	doc := renderDoc(t, r, snap, viewport.Full())
	got := doc.Find("circle[data-region-id=moscow_city]").AttrOr("fill", "")
	if got != green {
		t.Errorf("status fill should win: got %q, want %q", got, green)
	}
}

func TestDownloadingPulseClass(t *testing.T) {
	r := New(geo.Catalog(), nil)
	snap := state.Snapshot{
		Status: map[string]model.DownloadStatus{"karelia": model.StatusDownloading},
	}
	doc := renderDoc(t, r, snap, viewport.Full())

	sel := doc.Find("circle[data-region-id=karelia]")
	if !sel.HasClass("region-downloading") {
		t.Error("downloading region should carry the pulse class")
	}
	if doc.Find("circle[data-region-id=komi]").HasClass("region-downloading") {
		t.Error("idle region must not pulse")
	}
}

func TestActiveRegionGlowAndSize(t *testing.T) {
	r := New(geo.Catalog(), nil)
	snap := state.Snapshot{ActiveRegionID: "tuva"}
	doc := renderDoc(t, r, snap, viewport.Full())

	sel := doc.Find("circle[data-region-id=tuva]")
	if got := sel.AttrOr("filter", ""); got != "url(#region-glow)" {
		t.Errorf("active region should glow, got filter %q", got)
	}
}

func TestLabelZoomGating(t *testing.T) {
	r := New(geo.Catalog(), nil)

	// Zoomed out below the label threshold: no labels at all.
	wide := model.ViewBox{X: -500, Y: -300, W: 2000, H: 1200} // zoom 0.5
	doc := renderDoc(t, r, state.Snapshot{}, wide)
	if n := doc.Find("text.region-label").Length(); n != 0 {
		t.Fatalf("expected no labels at zoom 0.5, got %d", n)
	}

	// Full view (zoom 1): region labels but no capitals.
	doc = renderDoc(t, r, state.Snapshot{}, viewport.Full())
	if n := doc.Find("text.region-label").Length(); n != 85 {
		t.Fatalf("expected 85 labels at zoom 1, got %d", n)
	}
	if n := doc.Find("g.capital").Length(); n != 0 {
		t.Fatalf("expected no capitals at zoom 1, got %d", n)
	}

	// Deep zoom (zoom 4): capitals appear.
	near := model.ViewBox{X: 100, Y: 100, W: 250, H: 150}
	doc = renderDoc(t, r, state.Snapshot{}, near)
	if n := doc.Find("g.capital").Length(); n != 85 {
		t.Fatalf("expected 85 capital markers at zoom 4, got %d", n)
	}
}

func TestLabelFontSize(t *testing.T) {
	cases := []struct {
		zoom float64
		want float64
	}{
		{0.8, 5.59},
		{1, 5},
		{4, 2.5},
		{12, 2.5}, // floor
	}
	for _, tc := range cases {
		got := labelFontSize(tc.zoom)
		if diff := got - tc.want; diff > 0.01 || diff < -0.01 {
			t.Errorf("labelFontSize(%v) = %v, want ~%v", tc.zoom, got, tc.want)
		}
	}
}

func TestPathModeThreshold(t *testing.T) {
	few := make(map[string]model.BoundaryPath)
	ids := geo.DistrictRegions[model.DistrictCentral]
	for _, id := range ids[:15] {
		few[id] = model.BoundaryPath{RegionID: id, D: "M 0,0 L 10,0 L 10,10 Z", CX: 5, CY: 5}
	}
	if ModeFor(few) != ModeCircles {
		t.Error("15 paths should stay below the path-mode threshold")
	}

	many := make(map[string]model.BoundaryPath)
	for _, id := range append(append([]string{}, ids...), geo.DistrictRegions[model.DistrictVolga]...) {
		many[id] = model.BoundaryPath{RegionID: id, D: "M 0,0 L 10,0 L 10,10 Z", CX: 5, CY: 5}
	}
	if ModeFor(many) != ModePaths {
		t.Error("32 paths should enable path mode")
	}
}

func TestPathModeRendering(t *testing.T) {
	paths := make(map[string]model.BoundaryPath)
	var withPaths []string
	for _, d := range []model.FederalDistrict{model.DistrictCentral, model.DistrictVolga} {
		for _, id := range geo.DistrictRegions[d] {
			paths[id] = model.BoundaryPath{RegionID: id, D: "M 0,0 L 10,0 L 10,10 Z", CX: 5, CY: 5}
			withPaths = append(withPaths, id)
		}
	}

	r := New(geo.Catalog(), paths)
	if r.Mode() != ModePaths {
		t.Fatal("expected path mode")
	}

	doc := renderDoc(t, r, state.Snapshot{}, viewport.Full())

	if n := doc.Find("path[data-region-id]").Length(); n != len(withPaths) {
		t.Errorf("expected %d boundary paths, got %d", len(withPaths), n)
	}
	// Regions without a stored path fall back to circles even in path mode.
	if n := doc.Find("circle[data-region-id]").Length(); n != 85-len(withPaths) {
		t.Errorf("expected %d fallback circles, got %d", 85-len(withPaths), n)
	}
	// No national outline in path mode; the boundaries carry the shape.
	if n := doc.Find(`path[fill="#e8ecf0"]`).Length(); n != 0 {
		t.Errorf("expected no outline paths in path mode, got %d", n)
	}
}

func TestRenderSkipsMalformedRegion(t *testing.T) {
	catalog := map[string]model.Region{
		"ok": {
			ID: "ok", Label: "OK", District: model.DistrictUral,
			Center: model.Coordinate{Lon: 60, Lat: 60}, AreaKm2: 1000,
		},
		"no_area": {
			ID: "no_area", Label: "Broken", District: model.DistrictUral,
			Center: model.Coordinate{Lon: 61, Lat: 61},
		},
	}

	r := New(catalog, nil)
	doc := renderDoc(t, r, state.Snapshot{}, viewport.Full())

	if n := doc.Find("circle[data-region-id]").Length(); n != 1 {
		t.Fatalf("expected only the well-formed region, got %d shapes", n)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := New(geo.Catalog(), nil)
	snap := state.Snapshot{ActiveRegionID: "omsk_oblast"}

	a := r.Render(snap, viewport.Full())
	b := r.Render(snap, viewport.Full())
	if a != b {
		t.Fatal("same inputs produced different markup")
	}
}

func TestDegenerateViewboxStillRenders(t *testing.T) {
	r := New(geo.Catalog(), nil)
	svg := r.Render(state.Snapshot{}, model.ViewBox{W: 0, H: 0})
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("degenerate viewbox should still produce a document")
	}
}
