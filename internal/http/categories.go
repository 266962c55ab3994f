package http

import (
	"errors"
	"net/http"

	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/pkg/httpx"
)

type CategoriesHandler struct {
	CategoryService *service.CategoryService
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	category, err := h.CategoryService.Create(r.Context(), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		writeInternal(w, r, "category create failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "category created", toCategoryDTO(category))
}

func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.List(r.Context())
	if err != nil {
		writeInternal(w, r, "category list failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "success", toCategoryDTOs(categories))
}

func (h *CategoriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	category, err := h.CategoryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternal(w, r, "category lookup failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "success", toCategoryDTO(category))
}

func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := h.CategoryService.Update(r.Context(), r.PathValue("id"), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternal(w, r, "category update failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "category updated", toCategoryDTO(category))
}

func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	category, err := h.CategoryService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternal(w, r, "category delete failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "category deleted", toCategoryDTO(category))
}
