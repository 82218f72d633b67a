package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bandstand/internal/models"
)

// formBool follows the checkbox convention inherited from the listing
// forms: the literal value "y" means true, anything else (including an
// absent field) means false.
func formBool(r *http.Request, key string) bool {
	return r.PostFormValue(key) == "y"
}

// formIntList parses a multi-valued form field into ids, deduplicating
// while preserving first-seen order.
func formIntList(r *http.Request, key string) ([]int, error) {
	seen := make(map[int]bool)
	var ids []int
	for _, raw := range r.PostForm[key] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func parseVenueForm(r *http.Request) (*models.VenueRequest, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"form": "could not be parsed"}
	}
	genreIDs, err := formIntList(r, "genres")
	if err != nil {
		return nil, map[string]string{"genres": "must be numeric genre ids"}
	}
	return &models.VenueRequest{
		Name:               r.PostFormValue("name"),
		City:               r.PostFormValue("city"),
		State:              r.PostFormValue("state"),
		Address:            r.PostFormValue("address"),
		Phone:              r.PostFormValue("phone"),
		ImageLink:          r.PostFormValue("image_link"),
		FacebookLink:       r.PostFormValue("facebook_link"),
		Website:            r.PostFormValue("website"),
		SeekingTalent:      formBool(r, "seeking_talent"),
		SeekingDescription: r.PostFormValue("seeking_description"),
		GenreIDs:           genreIDs,
	}, nil
}

func parseArtistForm(r *http.Request) (*models.ArtistRequest, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"form": "could not be parsed"}
	}
	genreIDs, err := formIntList(r, "genres")
	if err != nil {
		return nil, map[string]string{"genres": "must be numeric genre ids"}
	}
	return &models.ArtistRequest{
		Name:               r.PostFormValue("name"),
		City:               r.PostFormValue("city"),
		State:              r.PostFormValue("state"),
		Phone:              r.PostFormValue("phone"),
		ImageLink:          r.PostFormValue("image_link"),
		FacebookLink:       r.PostFormValue("facebook_link"),
		Website:            r.PostFormValue("website"),
		SeekingVenue:       formBool(r, "seeking_venue"),
		SeekingDescription: r.PostFormValue("seeking_description"),
		GenreIDs:           genreIDs,
	}, nil
}

var showTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseShowTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range showTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseShowForm(r *http.Request) (*models.ShowRequest, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return nil, map[string]string{"form": "could not be parsed"}
	}

	fields := make(map[string]string)
	req := &models.ShowRequest{}

	if raw := r.PostFormValue("artist_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			fields["artist_id"] = "must be numeric"
		}
		req.ArtistID = id
	}
	if raw := r.PostFormValue("venue_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			fields["venue_id"] = "must be numeric"
		}
		req.VenueID = id
	}
	if raw := r.PostFormValue("start_time"); raw != "" {
		t, err := parseShowTime(raw)
		if err != nil {
			fields["start_time"] = "must be a valid timestamp"
		}
		req.StartTime = t
	}
	if raw := r.PostFormValue("end_time"); raw != "" {
		t, err := parseShowTime(raw)
		if err != nil {
			fields["end_time"] = "must be a valid timestamp"
		}
		req.EndTime = t
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return req, nil
}
