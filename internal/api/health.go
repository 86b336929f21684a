package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/garderoba/internal/store"
)

// HealthHandler reports database connectivity and row counts.
type HealthHandler struct {
	DB     *sql.DB
	DBName string
}

type healthResponse struct {
	Connected bool         `json:"connected"`
	DB        string       `json:"db"`
	Counts    healthCounts `json:"counts"`
}

type healthCounts struct {
	Items      int64 `json:"items"`
	Categories int64 `json:"categories"`
	Users      int64 `json:"users"`
}

// Status handles GET /health. Counts are best-effort: a failed count reads as
// zero rather than failing the probe.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	connected := h.DB.PingContext(ctx) == nil

	items, _ := store.CountItems(ctx, h.DB)
	categories, _ := store.CountCategories(ctx, h.DB)
	users, _ := store.CountUsers(ctx, h.DB)

	jsonResponse(w, http.StatusOK, healthResponse{
		Connected: connected,
		DB:        h.DBName,
		Counts:    healthCounts{Items: items, Categories: categories, Users: users},
	})
}
