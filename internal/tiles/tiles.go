// Package tiles is the download orchestrator: it fetches and persists map
// tiles for a region and reports status/progress into the shared state store.
// The visualization core only depends on the Orchestrator interface; this
// reference implementation stores tile bytes on disk and tracks completed
// regions in the duckdb registry.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/metrics"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/store"
)

// Orchestrator is the boundary contract between the visualization core and
// the tile download machinery.
type Orchestrator interface {
	// Downloaded reports region ids whose tiles are already cached. Called
	// once at mount to seed the state store.
	Downloaded(ctx context.Context) ([]string, error)
	// Start downloads a region's tiles, reporting progress into the state
	// store and finishing with a terminal downloaded or none status.
	Start(ctx context.Context, regionID string) error
	// Delete evicts a region's cached tiles.
	Delete(ctx context.Context, regionID string) error
}

// Fetcher retrieves one tile by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// httpFetcher shares one tuned client across all tile requests.
type httpFetcher struct {
	client *http.Client
}

func newHTTPFetcher(timeout time.Duration) *httpFetcher {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &httpFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 16,
				MaxConnsPerHost:     16,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "regionmap-offline/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Service is the reference Orchestrator.
type Service struct {
	Registry *store.Store
	State    *state.Store
	BaseURL  string
	TileZoom int

	limiter *rate.Limiter
	fetcher Fetcher
	log     *slog.Logger
}

// Options tunes the service.
type Options struct {
	BaseURL   string
	RateLimit float64 // tiles per second
	Timeout   time.Duration
	TileZoom  int
	Fetcher   Fetcher // overrides the HTTP fetcher, used by tests
}

func NewService(registry *store.Store, st *state.Store, opts Options, log *slog.Logger) *Service {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://tile.openstreetmap.org"
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 4
	}
	if opts.TileZoom <= 0 {
		opts.TileZoom = 8
	}
	if opts.Fetcher == nil {
		opts.Fetcher = newHTTPFetcher(opts.Timeout)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		Registry: registry,
		State:    st,
		BaseURL:  opts.BaseURL,
		TileZoom: opts.TileZoom,
		limiter:  rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		fetcher:  opts.Fetcher,
		log:      log,
	}
}

// Downloaded implements Orchestrator.
func (s *Service) Downloaded(ctx context.Context) ([]string, error) {
	rows, err := s.Registry.ReadDownloaded()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.RegionID)
	}
	return ids, nil
}

// Start implements Orchestrator. Progress is monotonic within one session;
// any failure or cancellation ends in a terminal none status with partial
// tiles removed, never a stuck downloading state.
func (s *Service) Start(ctx context.Context, regionID string) error {
	region, ok := geo.Get(regionID)
	if !ok {
		return fmt.Errorf("unknown region %q", regionID)
	}

	coords := tileRange(region, s.TileZoom)
	dir := s.tileDir(regionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.State.SetStatus(regionID, model.StatusNone)
		return fmt.Errorf("creating tile dir: %w", err)
	}

	s.State.SetStatus(regionID, model.StatusDownloading)
	s.State.SetProgress(regionID, 0)
	metrics.DownloadsStarted.Inc()
	s.log.Info("download_start", "region", regionID, "tiles", len(coords))

	fail := func(err error) error {
		os.RemoveAll(dir)
		s.State.SetStatus(regionID, model.StatusNone)
		metrics.DownloadsFailed.Inc()
		s.log.Warn("download_failed", "region", regionID, "error", err)
		return err
	}

	for i, tc := range coords {
		if err := s.limiter.Wait(ctx); err != nil {
			return fail(fmt.Errorf("rate limiter: %w", err))
		}

		url := fmt.Sprintf("%s/%d/%d/%d.png", s.BaseURL, s.TileZoom, tc.x, tc.y)
		data, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return fail(err)
		}

		name := filepath.Join(dir, fmt.Sprintf("%d_%d.png", tc.x, tc.y))
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return fail(fmt.Errorf("writing tile: %w", err))
		}

		s.State.SetProgress(regionID, (i+1)*100/len(coords))
	}

	if err := s.Registry.MarkDownloaded(regionID); err != nil {
		return fail(err)
	}
	s.State.SetProgress(regionID, 100)
	s.State.SetStatus(regionID, model.StatusDownloaded)
	metrics.DownloadsCompleted.Inc()
	s.log.Info("download_done", "region", regionID)
	return nil
}

// Delete implements Orchestrator. Explicit eviction moves the region back to
// the none status.
func (s *Service) Delete(ctx context.Context, regionID string) error {
	if err := s.Registry.DeleteDownloaded(regionID); err != nil {
		return err
	}
	if err := os.RemoveAll(s.tileDir(regionID)); err != nil {
		return fmt.Errorf("removing tiles: %w", err)
	}
	s.State.SetStatus(regionID, model.StatusNone)
	return nil
}

func (s *Service) tileDir(regionID string) string {
	return filepath.Join(s.Registry.DataDir, "tiles", regionID)
}

type tileCoord struct {
	x, y int
}

// tileRange computes the slippy-map tile grid covering a region's approximate
// bounding box at the given zoom. The box is the geographic center padded by
// half the side of a square with the region's area.
func tileRange(region model.Region, zoom int) []tileCoord {
	halfSideKm := math.Sqrt(region.AreaKm2) / 2
	latPad := halfSideKm / 111
	lonPad := latPad / math.Cos(clampLat(region.Center.Lat)*math.Pi/180)

	minX, maxY := tileAt(region.Center.Lon-lonPad, region.Center.Lat-latPad, zoom)
	maxX, minY := tileAt(region.Center.Lon+lonPad, region.Center.Lat+latPad, zoom)

	n := 1 << zoom
	var out []tileCoord
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < 0 || y < 0 || x >= n || y >= n {
				continue
			}
			out = append(out, tileCoord{x: x, y: y})
		}
	}
	return out
}

func clampLat(lat float64) float64 {
	return math.Max(-85.05, math.Min(85.05, lat))
}

// tileAt converts lon/lat to slippy-map tile indices.
func tileAt(lon, lat float64, zoom int) (x, y int) {
	lat = clampLat(lat)
	n := float64(int(1) << zoom)
	x = int((lon + 180) / 360 * n)
	latRad := lat * math.Pi / 180
	y = int((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n)
	return x, y
}
