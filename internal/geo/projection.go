package geo

import (
	"math"
	"sync"
)

// Drawing surface dimensions, in viewbox units.
const (
	SurfaceWidth  = 1000.0
	SurfaceHeight = 600.0
)

// Albers equal-area conic parameters for the Russian Federation
// (standard parallels 52°/64°, origin 56°N 100°E).
const (
	deg2rad = math.Pi / 180

	phi1 = 52 * deg2rad
	phi2 = 64 * deg2rad
	phi0 = 56 * deg2rad
	lam0 = 100 * deg2rad
)

var (
	albersN    = (math.Sin(phi1) + math.Sin(phi2)) / 2
	albersC    = math.Cos(phi1)*math.Cos(phi1) + 2*albersN*math.Sin(phi1)
	albersRho0 = math.Sqrt(math.Abs(albersC-2*albersN*math.Sin(phi0))) / albersN
)

// albers maps lon/lat degrees to raw conic coordinates (y grows north).
func albers(lon, lat float64) (float64, float64) {
	lam := lon * deg2rad
	phi := lat * deg2rad
	theta := albersN * (lam - lam0)
	rho := math.Sqrt(math.Abs(albersC-2*albersN*math.Sin(phi))) / albersN
	return rho * math.Sin(theta), albersRho0 - rho*math.Cos(theta)
}

type fitBounds struct {
	xmin, xmax, ymin, ymax float64
}

var (
	boundsOnce sync.Once
	bounds     fitBounds
)

// surfaceBounds fits the projection output to the drawing surface. The bounds
// are derived from the national outlines so the whole territory is visible in
// the initial viewbox.
func surfaceBounds() fitBounds {
	boundsOnce.Do(func() {
		b := fitBounds{
			xmin: math.Inf(1), xmax: math.Inf(-1),
			ymin: math.Inf(1), ymax: math.Inf(-1),
		}
		for _, ring := range [][][2]float64{RussiaOutline, KaliningradOutline} {
			for _, pt := range ring {
				x, y := albers(pt[0], pt[1])
				b.xmin = math.Min(b.xmin, x)
				b.xmax = math.Max(b.xmax, x)
				b.ymin = math.Min(b.ymin, y)
				b.ymax = math.Max(b.ymax, y)
			}
		}
		bounds = b
	})
	return bounds
}

// Project maps a geographic coordinate onto the drawing surface. Pure and
// deterministic; output is rounded to one decimal to keep path strings compact.
// Out-of-domain inputs extrapolate instead of erroring.
func Project(lon, lat float64) (float64, float64) {
	ax, ay := albers(lon, lat)

	b := surfaceBounds()
	scale := math.Min(SurfaceWidth/(b.xmax-b.xmin), SurfaceHeight/(b.ymax-b.ymin))
	cx := (b.xmin + b.xmax) / 2
	cy := (b.ymin + b.ymax) / 2

	x := SurfaceWidth/2 + (ax-cx)*scale
	y := SurfaceHeight/2 - (ay-cy)*scale // north is up
	return round1(x), round1(y)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AreaToRadius maps a region's area (km²) to a circle radius in surface units.
// Discrete buckets so visually similar-sized regions render identically.
func AreaToRadius(area float64) float64 {
	switch {
	case area < 2000:
		return 3
	case area < 8000:
		return 5
	case area < 25000:
		return 7
	case area < 55000:
		return 9
	case area < 120000:
		return 11
	case area < 300000:
		return 13
	case area < 700000:
		return 16
	default:
		return 19
	}
}
