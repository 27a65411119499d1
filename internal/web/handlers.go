package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/geo"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/viewport"
)

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	district := r.URL.Query().Get("district")
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	var out []model.Region
	for _, reg := range geo.Regions() {
		if district != "" && string(reg.District) != district {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(reg.Label), q) &&
			!strings.Contains(strings.ToLower(reg.Capital), q) {
			continue
		}
		out = append(out, reg)
	}
	writeJSON(w, out)
}

type districtInfo struct {
	Code       model.FederalDistrict `json:"code"`
	Name       string                `json:"name"`
	Color      string                `json:"color"`
	RegionIDs  []string              `json:"region_ids"`
	Downloaded int                   `json:"downloaded"`
}

func (s *Server) handleDistricts(w http.ResponseWriter, r *http.Request) {
	snap := s.Composer.State.Snapshot()

	out := make([]districtInfo, 0, len(geo.DistrictOrder))
	for _, d := range geo.DistrictOrder {
		info := districtInfo{
			Code:      d,
			Name:      geo.DistrictNames[d],
			Color:     geo.DistrictColors[d],
			RegionIDs: geo.DistrictRegions[d],
		}
		for _, id := range info.RegionIDs {
			if snap.Status[id] == model.StatusDownloaded {
				info.Downloaded++
			}
		}
		out = append(out, info)
	}
	writeJSON(w, out)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Composer.State.Snapshot())
}

func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	if q, ok := r.URL.Query()["q"]; ok && len(q) > 0 {
		s.Composer.Panel.SetSearch(q[0])
	}
	writeJSON(w, s.Composer.Panel.Groups())
}

// handleMapSVG renders the map server-side. Without parameters the current
// viewport is used; x, y and w override it (height follows the fixed aspect).
func (s *Server) handleMapSVG(w http.ResponseWriter, r *http.Request) {
	vb := s.Composer.Viewport.ViewBox()

	q := r.URL.Query()
	if q.Get("w") != "" {
		width, err := strconv.ParseFloat(q.Get("w"), 64)
		if err != nil {
			http.Error(w, "invalid 'w' parameter", http.StatusBadRequest)
			return
		}
		x, _ := strconv.ParseFloat(q.Get("x"), 64)
		y, _ := strconv.ParseFloat(q.Get("y"), 64)
		vb = viewport.Clamp(model.ViewBox{
			X: x, Y: y,
			W: width,
			H: width * geo.SurfaceHeight / geo.SurfaceWidth,
		})
	}

	svg := s.Composer.Renderer.Render(s.Composer.State.Snapshot(), vb)
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

// handleDownload starts (POST) or evicts (DELETE) a region download. Download
// progress is observable via /api/state and the websocket.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	regionID := r.URL.Query().Get("region")
	if _, ok := geo.Get(regionID); !ok {
		http.Error(w, "unknown region", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodPost:
		if s.Composer.State.Status(regionID) == model.StatusDownloading {
			http.Error(w, "download already in progress", http.StatusConflict)
			return
		}
		// Detached from the request context: the download outlives the
		// response.
		s.Composer.StartDownload(context.Background(), regionID)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"region": regionID, "status": "downloading"})
	case http.MethodDelete:
		if err := s.Composer.DeleteDownload(r.Context(), regionID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{"region": regionID, "status": "none"})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS — consumed by the embedding frontend, not a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
