package panel

import (
	"testing"
	"time"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
)

func TestGroupsCoverAllDistricts(t *testing.T) {
	p := New(state.New(), 0)

	groups := p.Groups()
	if len(groups) != 8 {
		t.Fatalf("expected 8 district groups, got %d", len(groups))
	}

	var total int
	for _, g := range groups {
		if len(g.Entries) != g.Total {
			t.Errorf("%s: %d entries vs total %d", g.District, len(g.Entries), g.Total)
		}
		total += len(g.Entries)
	}
	if total != 85 {
		t.Fatalf("expected 85 entries overall, got %d", total)
	}

	// Fixed order, ЦФО first with Moscow on top.
	if groups[0].District != model.DistrictCentral {
		t.Errorf("expected ЦФО first, got %s", groups[0].District)
	}
	if groups[0].Entries[0].ID != "moscow_city" {
		t.Errorf("expected moscow_city first, got %s", groups[0].Entries[0].ID)
	}
}

func TestGroupsReflectState(t *testing.T) {
	st := state.New()
	p := New(st, 0)

	st.InitDownloadedRegions([]string{"moscow_city", "spb"})
	st.SetStatus("karelia", model.StatusDownloading)
	st.SetProgress("karelia", 60)
	st.SetActiveRegion("spb")

	groups := p.Groups()

	central := groups[0]
	if central.Downloaded != 1 {
		t.Errorf("ЦФО downloaded count: got %d, want 1", central.Downloaded)
	}

	northwest := groups[1]
	if northwest.Downloaded != 1 {
		t.Errorf("СЗФО downloaded count: got %d, want 1", northwest.Downloaded)
	}
	for _, e := range northwest.Entries {
		switch e.ID {
		case "spb":
			if !e.Active {
				t.Error("spb should be active")
			}
			if e.Status != model.StatusDownloaded {
				t.Errorf("spb status: got %s", e.Status)
			}
		case "karelia":
			if e.Status != model.StatusDownloading || e.Progress != 60 {
				t.Errorf("karelia: got %s/%d, want downloading/60", e.Status, e.Progress)
			}
		default:
			if e.Status != model.StatusNone {
				t.Errorf("%s: expected none, got %s", e.ID, e.Status)
			}
		}
	}
}

func TestSearchFiltersByLabelAndCapital(t *testing.T) {
	p := New(state.New(), 0)

	p.SetSearch("казань")
	groups := p.Groups()
	if len(groups) != 1 {
		t.Fatalf("expected 1 group for capital search, got %d", len(groups))
	}
	if groups[0].District != model.DistrictVolga {
		t.Errorf("expected ПФО, got %s", groups[0].District)
	}
	if len(groups[0].Entries) != 1 || groups[0].Entries[0].ID != "tatarstan" {
		t.Fatalf("expected tatarstan only, got %+v", groups[0].Entries)
	}

	p.SetSearch("  Моск  ") // trimmed, case-insensitive, label match
	groups = p.Groups()
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Entries) != 2 {
		t.Fatalf("expected Москва and Московская область, got %d entries", len(groups[0].Entries))
	}

	p.SetSearch("")
	if got := len(p.Groups()); got != 8 {
		t.Fatalf("cleared search should restore all groups, got %d", got)
	}
}

func TestToggleDistrict(t *testing.T) {
	p := New(state.New(), 0)

	p.ToggleDistrict(model.DistrictUral)
	for _, g := range p.Groups() {
		want := g.District == model.DistrictUral
		if g.Collapsed != want {
			t.Errorf("%s collapsed=%v, want %v", g.District, g.Collapsed, want)
		}
	}

	p.ToggleDistrict(model.DistrictUral)
	for _, g := range p.Groups() {
		if g.Collapsed {
			t.Errorf("%s should be expanded again", g.District)
		}
	}
}

func TestVisibilityFirstBatchSuppressed(t *testing.T) {
	st := state.New()
	p := New(st, 5*time.Millisecond)
	defer p.Close()

	p.ReportVisibility([]VisibilityReport{{RegionID: "moscow_city", Ratio: 1}})
	time.Sleep(30 * time.Millisecond)

	if got := st.ActiveRegion(); got != "" {
		t.Fatalf("initial batch must not select a region, got %q", got)
	}
}

func TestVisibilityDebouncedSelection(t *testing.T) {
	st := state.New()
	p := New(st, 10*time.Millisecond)
	defer p.Close()

	p.ReportVisibility(nil) // consume the mount suppression

	// Rapid scroll: each batch supersedes the previous one within the window.
	p.ReportVisibility([]VisibilityReport{
		{RegionID: "tver_oblast", Ratio: 0.75},
		{RegionID: "tula_oblast", Ratio: 0.25},
	})
	p.ReportVisibility([]VisibilityReport{
		{RegionID: "yaroslavl_oblast", Ratio: 0.9},
	})

	time.Sleep(50 * time.Millisecond)

	if got := st.ActiveRegion(); got != "yaroslavl_oblast" {
		t.Fatalf("expected last debounced batch to win, got %q", got)
	}
}

func TestVisibilityBelowThresholdIgnored(t *testing.T) {
	st := state.New()
	p := New(st, 5*time.Millisecond)
	defer p.Close()

	p.ReportVisibility(nil)
	p.ReportVisibility([]VisibilityReport{{RegionID: "komi", Ratio: 0.4}})
	time.Sleep(30 * time.Millisecond)

	if got := st.ActiveRegion(); got != "" {
		t.Fatalf("sub-threshold visibility must not select, got %q", got)
	}
}

func TestClickAndHover(t *testing.T) {
	st := state.New()
	p := New(st, 0)

	var clicked string
	p.OnRegionSelect = func(id string) { clicked = id }

	p.ClickEntry("dagestan")
	if clicked != "dagestan" {
		t.Errorf("expected click dispatch, got %q", clicked)
	}

	p.HoverEntry("dagestan")
	if got := st.HoveredRegion(); got != "dagestan" {
		t.Errorf("expected hovered dagestan, got %q", got)
	}
	p.HoverEntry("")
	if got := st.HoveredRegion(); got != "" {
		t.Errorf("expected cleared hover, got %q", got)
	}
}
