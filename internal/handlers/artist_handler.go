package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"bandstand/internal/models"
	"bandstand/internal/repository"
)

type ArtistHandler struct {
	repo      repository.ArtistRepository
	validator *validator.Validate
}

func NewArtistHandler(repo repository.ArtistRepository) *ArtistHandler {
	return &ArtistHandler{
		repo:      repo,
		validator: newValidator(),
	}
}

// List returns all artists as a flat listing.
// @Tags Artists
// @Summary List artists
// @Produce json
// @Success 200 {array} models.Artist
// @Router /api/v1/artists [get]
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if artists == nil {
		artists = []*models.Artist{} // return empty array instead of null
	}
	writeJSON(w, http.StatusOK, artists)
}

// Search matches the submitted search_term as a case-insensitive
// substring anywhere in the artist name.
// @Tags Artists
// @Summary Search artists by name
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Substring to match"
// @Success 200 {object} models.SearchResult
// @Router /api/v1/artists/search [post]
func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	artists, err := h.repo.SearchByName(r.Context(), term)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if artists == nil {
		artists = []*models.Artist{}
	}
	writeJSON(w, http.StatusOK, models.SearchResult{Count: len(artists), Data: artists})
}

// Get returns the artist detail page payload with past and upcoming shows.
// @Tags Artists
// @Summary Get an artist with its show history
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.ArtistDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/artists/{id} [get]
func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid artist ID")
		return
	}

	artist, err := h.repo.GetByIDWithShows(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	past, upcoming := partitionShows(artist.Shows, time.Now().UTC())
	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}
	writeJSON(w, http.StatusOK, models.ArtistDetail{
		Artist:             artist.Artist,
		Genres:             genres,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// Create builds an artist from the submitted form fields.
// @Tags Artists
// @Summary Create an artist
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 201 {object} models.Artist
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/artists [post]
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, fields := parseArtistForm(r)
	if fields != nil {
		writeFieldErrors(w, fields)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	artist := artistFromRequest(req)
	if err := h.repo.Create(r.Context(), artist, req.GenreIDs); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, artist)
}

// Update is a full replace of the artist's mutable fields and genre set.
// @Tags Artists
// @Summary Replace an artist
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.Artist
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/artists/{id} [put]
func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid artist ID")
		return
	}

	req, fields := parseArtistForm(r)
	if fields != nil {
		writeFieldErrors(w, fields)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	artist := artistFromRequest(req)
	artist.ID = id
	if err := h.repo.Update(r.Context(), artist, req.GenreIDs); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

// Delete removes the artist and all of its shows, reporting a bare JSON
// boolean with the status code.
// @Tags Artists
// @Summary Delete an artist and its shows
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {boolean} boolean
// @Failure 404 {boolean} boolean
// @Router /api/v1/artists/{id} [delete]
func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			writeJSON(w, http.StatusNotFound, false)
			return
		}
		writeJSON(w, http.StatusInternalServerError, false)
		return
	}
	writeJSON(w, http.StatusOK, true)
}

func artistFromRequest(req *models.ArtistRequest) *models.Artist {
	return &models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}
}
