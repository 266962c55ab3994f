package http

import (
	"errors"
	"net/http"

	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/pkg/httpx"
)

// maxUploadBytes caps a single multipart upload request.
const maxUploadBytes = 32 << 20

type MediaHandler struct {
	MediaService *service.MediaService
}

func (h *MediaHandler) HandleUploadSingle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	url, err := h.MediaService.Upload(r.Context(),
		header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		writeInternal(w, r, "media upload failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "upload success", map[string]string{"fileUrl": url})
}

func (h *MediaHandler) HandleUploadMultiple(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "files is required")
		return
	}

	urls := make([]string, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeInternal(w, r, "media upload failed", err)
			return
		}

		url, err := h.MediaService.Upload(r.Context(),
			header.Filename, header.Header.Get("Content-Type"), file, header.Size)
		file.Close()
		if err != nil {
			writeInternal(w, r, "media upload failed", err)
			return
		}
		urls = append(urls, url)
	}

	httpx.WriteData(w, http.StatusOK, "upload success", map[string][]string{"fileUrls": urls})
}

type mediaRemoveRequest struct {
	FileURL string `json:"fileUrl"`
}

func (h *MediaHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req mediaRemoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.FileURL == "" {
		httpx.WriteError(w, http.StatusBadRequest, "fileUrl is required")
		return
	}

	if err := h.MediaService.Remove(r.Context(), req.FileURL); err != nil {
		if errors.Is(err, service.ErrMediaNotOwned) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeInternal(w, r, "media remove failed", err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "remove success", nil)
}
