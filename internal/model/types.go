package model

// FederalDistrict is one of the 8 top-level administrative groupings.
type FederalDistrict string

const (
	DistrictCentral       FederalDistrict = "ЦФО"
	DistrictNorthwestern  FederalDistrict = "СЗФО"
	DistrictSouthern      FederalDistrict = "ЮФО"
	DistrictNorthCaucasus FederalDistrict = "СКФО"
	DistrictVolga         FederalDistrict = "ПФО"
	DistrictUral          FederalDistrict = "УФО"
	DistrictSiberian      FederalDistrict = "СФО"
	DistrictFarEastern    FederalDistrict = "ДФО"
)

// Coordinate is a geographic point.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Region is a catalog entry for one administrative region. The catalog is
// authored at build time and immutable for the process lifetime.
type Region struct {
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	District      FederalDistrict `json:"federal_district"`
	Center        Coordinate      `json:"center"`
	AreaKm2       float64         `json:"area_km2"`
	Capital       string          `json:"capital"`
	CapitalCoords Coordinate      `json:"capital_coords"`
}

// BoundaryPath is a precomputed vector outline for a region, in drawing-surface
// units. When absent the renderer falls back to an area-scaled circle.
type BoundaryPath struct {
	RegionID string  `json:"region_id"`
	D        string  `json:"d"`
	CX       float64 `json:"cx"`
	CY       float64 `json:"cy"`
}

// DownloadStatus tracks per-region tile download state.
type DownloadStatus string

const (
	StatusNone        DownloadStatus = "none"
	StatusDownloading DownloadStatus = "downloading"
	StatusDownloaded  DownloadStatus = "downloaded"
)

// ViewBox is the visible sub-rectangle of the drawing surface.
type ViewBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// DownloadedRegion is one row of the persistent download registry.
type DownloadedRegion struct {
	RegionID     string `json:"region_id"`
	DownloadedAt string `json:"downloaded_at"`
}
