package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"bandstand/internal/handlers"
	"bandstand/internal/repository"
)

func RegisterVenueRoutes(r chi.Router, db *sql.DB) {
	repo := repository.NewVenueRepository(db)
	handler := handlers.NewVenueHandler(repo)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Post("/search", handler.Search)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}
