package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/pkg/httpx"
)

type StationsHandler struct {
	StationService *service.StationService
}

type stationRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	CategoryID  string  `json:"categoryId"`
	Region      int64   `json:"region"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (req stationRequest) toInput() service.StationInput {
	return service.StationInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		CategoryID:  req.CategoryID,
		Region:      req.Region,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

func (h *StationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req stationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.CategoryID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "categoryId is required")
		return
	}

	station, err := h.StationService.Create(r.Context(), identity.UserID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeInternal(w, r, "station create failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "station created", toStationDTO(station))
}

func (h *StationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	page, _ := strconv.Atoi(q.Get("page"))

	result, err := h.StationService.List(r.Context(), q.Get("search"), limit, page)
	if err != nil {
		writeInternal(w, r, "station list failed", err)
		return
	}

	httpx.WritePage(w, http.StatusOK, "success", toStationDTOs(result.Items), httpx.Meta{
		Current:    result.Page,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (h *StationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	station, err := h.StationService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "station not found")
			return
		}
		writeInternal(w, r, "station lookup failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "success", toStationDTO(station))
}

func (h *StationsHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	station, err := h.StationService.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "station not found")
			return
		}
		writeInternal(w, r, "station lookup failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "success", toStationDTO(station))
}

func (h *StationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	station, err := h.StationService.Update(r.Context(), r.PathValue("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "station not found")
		case errors.Is(err, service.ErrSlugTaken):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			writeInternal(w, r, "station update failed", err)
		}
		return
	}

	httpx.WriteData(w, http.StatusOK, "station updated", toStationDTO(station))
}

func (h *StationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	station, err := h.StationService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "station not found")
			return
		}
		writeInternal(w, r, "station delete failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "station deleted", toStationDTO(station))
}
