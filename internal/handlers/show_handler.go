package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"bandstand/internal/models"
	"bandstand/internal/repository"
)

type ShowHandler struct {
	repo      repository.ShowRepository
	validator *validator.Validate
}

func NewShowHandler(repo repository.ShowRepository) *ShowHandler {
	return &ShowHandler{
		repo:      repo,
		validator: newValidator(),
	}
}

// List returns every show with the venue and artist names filled in.
// @Tags Shows
// @Summary List shows
// @Produce json
// @Success 200 {array} models.ShowDetail
// @Router /api/v1/shows [get]
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if shows == nil {
		shows = []*models.ShowDetail{} // return empty array instead of null
	}
	writeJSON(w, http.StatusOK, shows)
}

// Get returns a single show.
// @Tags Shows
// @Summary Get a show
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} models.ShowDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/shows/{id} [get]
func (h *ShowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid show ID")
		return
	}

	show, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, show)
}

// Create books a show linking an artist to a venue over a time interval.
// Both ids must resolve to existing rows. Overlapping shows for the same
// artist or venue are allowed.
// @Tags Shows
// @Summary Create a show
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 201 {object} models.Show
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/shows [post]
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, fields := parseShowForm(r)
	if fields != nil {
		writeFieldErrors(w, fields)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	show := &models.Show{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.repo.Create(r.Context(), show); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, show)
}
