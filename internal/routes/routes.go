package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bandstand/internal/config"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "bandstand api"})
	})
	r.Get("/health", healthHandler(db))

	RegisterSwaggerRoutes(r)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterVenueRoutes(r, db)
		RegisterArtistRoutes(r, db)
		RegisterShowRoutes(r, db)
		RegisterGenreRoutes(r, db)
		RegisterUploadRoutes(r, s3Config)
	})

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	type dbStatus struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		resp := map[string]any{"status": "ok"}
		ds := dbStatus{Status: "ok"}
		if err := db.PingContext(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			resp["status"] = "degraded"
			ds = dbStatus{Status: "down", Error: err.Error()}
		}
		resp["db"] = ds
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
