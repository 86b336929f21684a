package api

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/erazemk/garderoba/internal/assets"
	"github.com/erazemk/garderoba/internal/imaging"
)

// UploadsHandler stores uploaded images through the configured asset backend
// and serves locally stored files back out.
type UploadsHandler struct {
	Assets assets.Backend

	// Disk is set only when the local backend is active; remote assets are
	// served directly by the provider and never pass through Serve.
	Disk *assets.Disk
}

type uploadResponse struct {
	URL         string `json:"url"`
	AssetHandle string `json:"assetHandle,omitempty"`
}

// Upload handles POST /upload (multipart field "image").
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, assets.MaxSize)

	if err := r.ParseMultipartForm(assets.MaxSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to read image")
		return
	}

	// Sniff the real content type and downscale oversized JPEG/PNG before
	// anything is persisted.
	img, err := imaging.Normalize(data)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "only image files are allowed")
		return
	}

	stored, err := h.Assets.Store(r.Context(), claims.UserID, img.Data, img.MIME, header.Filename)
	if errors.Is(err, assets.ErrInvalidAsset) {
		jsonError(w, http.StatusBadRequest, "invalid image file")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	jsonResponse(w, http.StatusCreated, uploadResponse{URL: stored.URL, AssetHandle: stored.Handle})
}

// Serve handles GET /uploads/{filename} for locally stored files.
func (h *UploadsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.Disk == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	path, err := h.Disk.Resolve(r.PathValue("filename"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	if _, err := os.Stat(path); err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	http.ServeFile(w, r, path)
}
