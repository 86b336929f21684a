package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/garderoba/internal/assets"
)

// NewRouter creates the API router with all endpoints registered. backend is
// the active asset backend; disk is non-nil only when the local backend is
// active and enables serving /uploads.
func NewRouter(db *sql.DB, jwtSecret, dbName string, backend assets.Backend, disk *assets.Disk) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &HealthHandler{DB: db, DBName: dbName}
	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db, Assets: backend}
	categoriesHandler := &CategoriesHandler{DB: db}
	uploadsHandler := &UploadsHandler{Assets: backend, Disk: disk}

	authMW := AuthMiddleware(jwtSecret)

	// Public: health probe, account creation, login, local upload serving.
	mux.HandleFunc("GET /health", healthHandler.Status)
	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /uploads/{filename}", uploadsHandler.Serve)

	// Everything below requires a token.
	mux.Handle("POST /upload", authMW(http.HandlerFunc(uploadsHandler.Upload)))

	mux.Handle("GET /items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("PUT /items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))

	mux.Handle("GET /categories", authMW(http.HandlerFunc(categoriesHandler.List)))
	mux.Handle("POST /categories", authMW(http.HandlerFunc(categoriesHandler.Create)))
	mux.Handle("DELETE /categories/{name}", authMW(http.HandlerFunc(categoriesHandler.Delete)))

	return RecoverMiddleware(mux)
}
