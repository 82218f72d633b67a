package handlers

import (
	"net/http"

	"bandstand/internal/models"
	"bandstand/internal/repository"
)

type GenreHandler struct {
	repo repository.GenreRepository
}

func NewGenreHandler(repo repository.GenreRepository) *GenreHandler {
	return &GenreHandler{repo: repo}
}

// List returns the genre choices used to populate the create and edit
// forms.
// @Tags Genres
// @Summary List genre choices
// @Produce json
// @Success 200 {array} models.Genre
// @Router /api/v1/genres [get]
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if genres == nil {
		genres = []*models.Genre{}
	}
	writeJSON(w, http.StatusOK, genres)
}
