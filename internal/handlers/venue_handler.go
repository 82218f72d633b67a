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

type VenueHandler struct {
	repo      repository.VenueRepository
	validator *validator.Validate
}

func NewVenueHandler(repo repository.VenueRepository) *VenueHandler {
	return &VenueHandler{
		repo:      repo,
		validator: newValidator(),
	}
}

func venueIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// List returns every venue grouped by (state, city).
// @Tags Venues
// @Summary List venues grouped by location
// @Produce json
// @Success 200 {array} models.CityGroup
// @Router /api/v1/venues [get]
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	venues, err := h.repo.ListWithShows(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groupVenuesByLocation(venues, time.Now().UTC()))
}

// Search matches the submitted search_term as a case-insensitive
// substring anywhere in the venue name.
// @Tags Venues
// @Summary Search venues by name
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Substring to match"
// @Success 200 {object} models.SearchResult
// @Router /api/v1/venues/search [post]
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	venues, err := h.repo.SearchByName(r.Context(), term)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if venues == nil {
		venues = []*models.Venue{} // return empty array instead of null
	}
	writeJSON(w, http.StatusOK, models.SearchResult{Count: len(venues), Data: venues})
}

// Get returns the venue detail page payload with past and upcoming shows.
// @Tags Venues
// @Summary Get a venue with its show history
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} models.VenueDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/venues/{id} [get]
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid venue ID")
		return
	}

	venue, err := h.repo.GetByIDWithShows(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	past, upcoming := partitionShows(venue.Shows, time.Now().UTC())
	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}
	writeJSON(w, http.StatusOK, models.VenueDetail{
		Venue:              venue.Venue,
		Genres:             genres,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// Create builds a venue from the submitted form fields. The genre ids
// must all resolve; otherwise nothing is persisted.
// @Tags Venues
// @Summary Create a venue
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 201 {object} models.Venue
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/venues [post]
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, fields := parseVenueForm(r)
	if fields != nil {
		writeFieldErrors(w, fields)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	venue := venueFromRequest(req)
	if err := h.repo.Create(r.Context(), venue, req.GenreIDs); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, venue)
}

// Update is a full replace: every mutable field and the whole genre set
// are overwritten with the submitted values.
// @Tags Venues
// @Summary Replace a venue
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} models.Venue
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/venues/{id} [put]
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid venue ID")
		return
	}

	req, fields := parseVenueForm(r)
	if fields != nil {
		writeFieldErrors(w, fields)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	venue := venueFromRequest(req)
	venue.ID = id
	if err := h.repo.Update(r.Context(), venue, req.GenreIDs); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// Delete removes the venue and all of its shows. The body is a bare JSON
// boolean paired with the status code, which is what the delete buttons
// on the listing pages consume.
// @Tags Venues
// @Summary Delete a venue and its shows
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {boolean} boolean
// @Failure 404 {boolean} boolean
// @Router /api/v1/venues/{id} [delete]
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(r)
	if !ok {
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

func venueFromRequest(req *models.VenueRequest) *models.Venue {
	return &models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}
}
