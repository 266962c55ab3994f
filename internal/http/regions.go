package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/pkg/httpx"
)

// RegionsHandler proxies the external administrative-regions API. Upstream
// payloads are passed through inside the standard envelope.
type RegionsHandler struct {
	RegionService *service.RegionService
}

func (h *RegionsHandler) respond(w http.ResponseWriter, r *http.Request, body json.RawMessage, err error) {
	if err != nil {
		if errors.Is(err, service.ErrRegionUpstream) {
			httpx.WriteError(w, http.StatusBadGateway, "region provider unavailable")
			return
		}
		writeInternal(w, r, "region proxy failed", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "success", body)
}

func (h *RegionsHandler) HandleProvinces(w http.ResponseWriter, r *http.Request) {
	body, err := h.RegionService.Provinces(r.Context())
	h.respond(w, r, body, err)
}

func (h *RegionsHandler) HandleProvince(w http.ResponseWriter, r *http.Request) {
	body, err := h.RegionService.Province(r.Context(), r.PathValue("id"))
	h.respond(w, r, body, err)
}

func (h *RegionsHandler) HandleRegencies(w http.ResponseWriter, r *http.Request) {
	body, err := h.RegionService.Regencies(r.Context(), r.PathValue("id"))
	h.respond(w, r, body, err)
}

func (h *RegionsHandler) HandleDistricts(w http.ResponseWriter, r *http.Request) {
	body, err := h.RegionService.Districts(r.Context(), r.PathValue("id"))
	h.respond(w, r, body, err)
}

func (h *RegionsHandler) HandleVillages(w http.ResponseWriter, r *http.Request) {
	body, err := h.RegionService.Villages(r.Context(), r.PathValue("id"))
	h.respond(w, r, body, err)
}

func (h *RegionsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	body, err := h.RegionService.SearchByCity(r.Context(), name)
	h.respond(w, r, body, err)
}
