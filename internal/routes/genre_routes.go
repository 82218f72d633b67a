package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"bandstand/internal/handlers"
	"bandstand/internal/repository"
)

func RegisterGenreRoutes(r chi.Router, db *sql.DB) {
	repo := repository.NewGenreRepository(db)
	handler := handlers.NewGenreHandler(repo)

	r.Get("/genres", handler.List)
}
