package api

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/store"
)

// CategoriesHandler handles category endpoints, scoped to the authenticated
// owner.
type CategoriesHandler struct {
	DB *sql.DB
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// List handles GET /categories. Categories are sorted by name.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	cats, err := store.ListCategories(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if cats == nil {
		cats = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, cats)
}

// Create handles POST /categories. Creating a name the owner already has is
// not an error: the existing row comes back with 200 instead of 201.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	cat, created, err := store.CreateCategory(r.Context(), h.DB, claims.UserID, name)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	jsonResponse(w, status, cat)
}

// Delete handles DELETE /categories/{name}. Idempotent: an absent name also
// answers 204. Items referencing the name keep their label.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := store.DeleteCategory(r.Context(), h.DB, claims.UserID, r.PathValue("name")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
