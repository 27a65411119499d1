package geo

import (
	"math"
	"testing"
)

func TestProjectDeterministic(t *testing.T) {
	x1, y1 := Project(37.6173, 55.7558) // Moscow
	x2, y2 := Project(37.6173, 55.7558)
	if x1 != x2 || y1 != y2 {
		t.Fatalf("projection not deterministic: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}

	// One decimal of precision.
	if x1 != math.Round(x1*10)/10 || y1 != math.Round(y1*10)/10 {
		t.Errorf("expected rounded output, got (%v, %v)", x1, y1)
	}
}

func TestProjectOrientation(t *testing.T) {
	// Moscow is west of Vladivostok and further north.
	mx, my := Project(37.6173, 55.7558)
	vx, vy := Project(131.8854, 43.1155)

	if mx >= vx {
		t.Errorf("Moscow x=%v should be left of Vladivostok x=%v", mx, vx)
	}
	if my >= vy {
		t.Errorf("Moscow y=%v should be above Vladivostok y=%v", my, vy)
	}
}

func TestProjectOutlineFitsSurface(t *testing.T) {
	for _, ring := range [][][2]float64{RussiaOutline, KaliningradOutline} {
		for _, pt := range ring {
			x, y := Project(pt[0], pt[1])
			if x < -1 || x > SurfaceWidth+1 {
				t.Fatalf("outline point (%v,%v) projects x=%v outside surface", pt[0], pt[1], x)
			}
			if y < -1 || y > SurfaceHeight+1 {
				t.Fatalf("outline point (%v,%v) projects y=%v outside surface", pt[0], pt[1], y)
			}
		}
	}
}

func TestProjectOutOfDomainExtrapolates(t *testing.T) {
	x, y := Project(-75.0, -40.0)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		t.Fatalf("out-of-domain input produced non-finite output (%v, %v)", x, y)
	}
}

func TestAreaToRadiusBuckets(t *testing.T) {
	cases := []struct {
		area float64
		want float64
	}{
		{1100, 3},    // Sevastopol-sized
		{2561, 5},    // Moscow city
		{8000, 7},    // boundary enters next bucket
		{44100, 9},   // Moscow oblast
		{83900, 11},  // Leningrad oblast
		{144500, 13}, // Tula..Perm band
		{431900, 16}, // Irkutsk-adjacent band
		{3083500, 19},
	}
	for _, tc := range cases {
		if got := AreaToRadius(tc.area); got != tc.want {
			t.Errorf("AreaToRadius(%v) = %v, want %v", tc.area, got, tc.want)
		}
	}
}

func TestAreaToRadiusMonotonic(t *testing.T) {
	prev := 0.0
	for _, area := range []float64{100, 3000, 10000, 30000, 60000, 150000, 400000, 1000000} {
		r := AreaToRadius(area)
		if r < prev {
			t.Fatalf("radius decreased: area %v gives %v after %v", area, r, prev)
		}
		prev = r
	}
}
