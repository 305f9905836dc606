package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"transfer-route-service/internal/api/dto"
	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/routing"
	"transfer-route-service/internal/services"
)

// RouteDataHandler exposes the optimizer's view of pending transfers:
// destination index, per-destination decision detail, override control, and
// leg geometry for map rendering.
type RouteDataHandler struct {
	Service *services.RouteService
}

// Index lists destinations with pending transfers plus all known locations.
func (h *RouteDataHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dests, err := h.Service.Destinations(r.Context())
	if err != nil {
		log.Printf("list destinations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	locs, err := h.Service.Locations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteIndexResponse{
		Destinations: make([]string, 0, len(dests)),
		Locations:    locationMap(locs),
	}
	for _, d := range dests {
		res.Destinations = append(res.Destinations, string(d))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Route dispatches /route-data/{destination}[/mode|/geometry].
func (h *RouteDataHandler) Route(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/route-data/")
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")

	if len(parts) == 0 || parts[0] == "" {
		writeError(w, r, http.StatusNotFound, "destination is required")
		return
	}
	destination := domain.StoreID(parts[0])

	switch {
	case len(parts) == 1:
		h.detail(w, r, destination)
	case len(parts) == 2 && parts[1] == "mode":
		h.setMode(w, r, destination)
	case len(parts) == 2 && parts[1] == "geometry":
		h.geometry(w, r, destination)
	default:
		writeError(w, r, http.StatusNotFound, "not found")
	}
}

func (h *RouteDataHandler) detail(w http.ResponseWriter, r *http.Request, destination domain.StoreID) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	view, err := h.Service.View(r.Context(), destination)
	if err != nil {
		h.writeViewError(w, r, destination, err)
		return
	}

	writeJSON(w, r, http.StatusOK, detailResponse(view))
}

func (h *RouteDataHandler) setMode(w http.ResponseWriter, r *http.Request, destination domain.StoreID) {
	if r.Method != http.MethodPut {
		w.Header().Set("Allow", http.MethodPut)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ModeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	mode, err := routing.ParseMode(req.Mode)
	if err != nil {
		writeFieldError(w, r, http.StatusBadRequest, "mode", err.Error())
		return
	}

	view, err := h.Service.SetMode(r.Context(), destination, mode)
	if err != nil {
		h.writeViewError(w, r, destination, err)
		return
	}

	writeJSON(w, r, http.StatusOK, detailResponse(view))
}

func (h *RouteDataHandler) geometry(w http.ResponseWriter, r *http.Request, destination domain.StoreID) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	legs, err := h.Service.Geometries(r.Context(), destination)
	if err != nil {
		if errors.Is(err, services.ErrStaleContext) {
			writeError(w, r, http.StatusConflict, "route context changed, retry")
			return
		}
		h.writeViewError(w, r, destination, err)
		return
	}

	res := dto.GeometryResponse{
		Destination: string(destination),
		Legs:        make([]dto.LegGeometryResponse, 0, len(legs)),
	}
	for _, g := range legs {
		points := make([]dto.GeoPointResponse, 0, len(g.Points))
		for _, p := range g.Points {
			points = append(points, dto.GeoPointResponse{Lat: p.Lat, Lon: p.Lon})
		}
		res.Legs = append(res.Legs, dto.LegGeometryResponse{
			From:       string(g.From),
			To:         string(g.To),
			Points:     points,
			DistanceKm: g.DistanceKm,
			Fallback:   g.Fallback,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteDataHandler) writeViewError(w http.ResponseWriter, r *http.Request, destination domain.StoreID, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownDestination):
		writeFieldError(w, r, http.StatusNotFound, "destination", "unknown destination "+string(destination))
	case errors.Is(err, routing.ErrInvalidMode):
		writeFieldError(w, r, http.StatusBadRequest, "mode", err.Error())
	default:
		log.Printf("route data failed: destination=%s err=%v", destination, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func locationMap(locs map[domain.StoreID]domain.Location) map[string]dto.LocationResponse {
	out := make(map[string]dto.LocationResponse, len(locs))
	for id, l := range locs {
		out[string(id)] = dto.LocationResponse{Lat: l.Lat, Lon: l.Lon, City: l.City}
	}
	return out
}

func strategyResponse(s routing.StrategyResult) dto.StrategyResponse {
	legs := make([]dto.LegResponse, 0, len(s.Legs))
	for _, l := range s.Legs {
		legs = append(legs, dto.LegResponse{
			From:            string(l.From),
			DistanceKm:      l.DistanceKm,
			Trips:           l.Trips,
			MissingLocation: l.MissingLocation,
		})
	}
	return dto.StrategyResponse{
		VehicleCount:        s.VehicleCount,
		TotalDistanceKm:     s.TotalDistanceKm,
		CompletionTimeHours: s.CompletionTimeHours,
		Legs:                legs,
	}
}

func detailResponse(view *services.RouteView) dto.RouteDetailResponse {
	rc := view.Context

	origins := make([]string, 0, len(rc.Origins))
	for _, o := range rc.Origins {
		origins = append(origins, string(o))
	}

	transfers := make([]dto.TransferResponse, 0, len(rc.Transfers))
	for _, t := range rc.Transfers {
		transfers = append(transfers, dto.TransferResponse{
			ProductID: t.ProductID,
			FromStore: string(t.FromStore),
			Quantity:  t.Quantity,
			RoadKm:    t.RoadKm,
		})
	}

	stats := view.Stats
	return dto.RouteDetailResponse{
		Destination: string(rc.Destination),
		Origins:     origins,
		Transfers:   transfers,
		Locations:   locationMap(rc.Locations),
		Mode:        string(view.Override),
		Parallel:    strategyResponse(view.Decision.Parallel),
		MultiPickup: strategyResponse(view.Decision.MultiPickup),
		Statistics: dto.StatsResponse{
			TotalDistanceKm: stats.TotalDistanceKm,
			EtaMinutes:      stats.EtaMinutes,
			Vehicles:        stats.Vehicles,
			OriginCount:     stats.OriginCount,
			TotalQuantity:   stats.TotalQuantity,
			Recommended:     string(stats.Recommended),
			Active:          string(stats.Active),
		},
	}
}
