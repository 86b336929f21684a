package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/erazemk/garderoba/internal/assets"
	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/store"
)

// cleanupTimeout bounds the background asset removal after an item delete.
const cleanupTimeout = 30 * time.Second

// ItemsHandler handles item CRUD endpoints. All operations are scoped to the
// authenticated owner.
type ItemsHandler struct {
	DB     *sql.DB
	Assets assets.Backend
}

type itemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Status       string  `json:"status"`
	ImageURL     *string `json:"imageUrl"`
	ImageAssetID *string `json:"imageAssetId"`
}

// List handles GET /items. Items are ordered by creation time.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListItems(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if req.Name == "" || req.Category == "" {
		jsonError(w, http.StatusBadRequest, "name and category required")
		return
	}

	if req.Status == "" {
		req.Status = model.StatusWashed
	}
	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, claims.UserID,
		req.Name, req.Category, req.Status, req.ImageURL, req.ImageAssetID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /items/{id}. The whole mutable field set is replaced with
// the request body: omitted fields are cleared, not kept (status falls back to
// its default). A row owned by someone else answers 404, same as a missing row.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Status == "" {
		req.Status = model.StatusWashed
	}
	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, claims.UserID, id,
		req.Name, req.Category, req.Status, req.ImageURL, req.ImageAssetID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}. The attached image asset is released in
// the background; a failed cleanup never fails the delete.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	item, err := store.DeleteItem(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if handle := cleanupHandle(item); handle != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
			defer cancel()
			if err := h.Assets.Remove(ctx, handle); err != nil {
				slog.Warn("image cleanup failed", "item", item.ID, "handle", handle, "error", err)
			}
		}()
	}

	w.WriteHeader(http.StatusNoContent)
}

// cleanupHandle picks the deletion handle for an item's image: the stored
// asset handle when present, otherwise the filename from the image URL (items
// created before handles were recorded).
func cleanupHandle(item *model.Item) string {
	if item.ImageAssetID != nil && *item.ImageAssetID != "" {
		return *item.ImageAssetID
	}
	if item.ImageURL == nil || *item.ImageURL == "" {
		return ""
	}
	if u, err := url.Parse(*item.ImageURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(*item.ImageURL)
}
