package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"bandstand/internal/models"
	"bandstand/internal/repository"
)

type mockVenueRepo struct {
	created         *models.Venue
	createdGenres   []int
	updated         *models.Venue
	updatedGenres   []int
	createErr       error
	updateErr       error
	deleteErr       error
	getWithShows    *models.VenueWithShows
	getWithShowsErr error
	searchResults   []*models.Venue
	listResults     []*models.VenueWithShows
}

var _ repository.VenueRepository = (*mockVenueRepo)(nil)

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue, genreIDs []int) error {
	m.created = venue
	m.createdGenres = genreIDs
	return m.createErr
}

func (m *mockVenueRepo) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	if m.getWithShows == nil {
		return nil, repository.ErrNotFound
	}
	return &m.getWithShows.Venue, nil
}

func (m *mockVenueRepo) GetByIDWithShows(ctx context.Context, id int) (*models.VenueWithShows, error) {
	if m.getWithShowsErr != nil {
		return nil, m.getWithShowsErr
	}
	if m.getWithShows == nil {
		return nil, repository.ErrNotFound
	}
	return m.getWithShows, nil
}

func (m *mockVenueRepo) ListWithShows(ctx context.Context) ([]*models.VenueWithShows, error) {
	return m.listResults, nil
}

func (m *mockVenueRepo) SearchByName(ctx context.Context, term string) ([]*models.Venue, error) {
	var out []*models.Venue
	for _, v := range m.searchResults {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue, genreIDs []int) error {
	m.updated = venue
	m.updatedGenres = genreIDs
	return m.updateErr
}

func (m *mockVenueRepo) Delete(ctx context.Context, id int) error {
	return m.deleteErr
}

func venueRouter(repo repository.VenueRepository) *chi.Mux {
	h := NewVenueHandler(repo)
	r := chi.NewRouter()
	r.Get("/venues", h.List)
	r.Post("/venues", h.Create)
	r.Post("/venues/search", h.Search)
	r.Get("/venues/{id}", h.Get)
	r.Put("/venues/{id}", h.Update)
	r.Delete("/venues/{id}", h.Delete)
	return r
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validVenueForm() url.Values {
	return url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"phone":   {"123-123-1234"},
		"genres":  {"1", "2"},
	}
}

func TestGetVenueNotFoundJSON(t *testing.T) {
	r := venueRouter(&mockVenueRepo{})

	req := httptest.NewRequest(http.MethodGet, "/venues/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] == nil {
		t.Fatalf("expected error field, got %v", resp)
	}
}

func TestCreateVenueSeekingTalentTruthy(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"y", true},
		{"Y", false},
		{"true", false},
		{"", false},
	}
	for _, tc := range cases {
		repo := &mockVenueRepo{}
		r := venueRouter(repo)

		form := validVenueForm()
		if tc.value != "" {
			form.Set("seeking_talent", tc.value)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, formRequest(http.MethodPost, "/venues", form))

		if w.Code != http.StatusCreated {
			t.Fatalf("value %q: expected 201 got %d (%s)", tc.value, w.Code, w.Body.String())
		}
		if repo.created.SeekingTalent != tc.want {
			t.Fatalf("value %q: expected seeking_talent=%v got %v", tc.value, tc.want, repo.created.SeekingTalent)
		}
	}
}

func TestCreateVenueMissingRequiredFields(t *testing.T) {
	repo := &mockVenueRepo{}
	r := venueRouter(repo)

	form := validVenueForm()
	form.Del("name")
	form.Del("address")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/venues", form))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if repo.created != nil {
		t.Fatalf("validation failure must not reach the store")
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Fields["name"] == "" || resp.Fields["address"] == "" {
		t.Fatalf("expected field-level detail for name and address, got %v", resp.Fields)
	}
}

func TestCreateVenueUnknownGenreFailsWhole(t *testing.T) {
	repo := &mockVenueRepo{createErr: repository.ErrGenreNotFound}
	r := venueRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/venues", validVenueForm()))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Fields["genres"] == "" {
		t.Fatalf("expected genres field error, got %v", resp.Fields)
	}
}

func TestUpdateVenueReplacesGenreSet(t *testing.T) {
	repo := &mockVenueRepo{}
	r := venueRouter(repo)

	form := validVenueForm()
	form["genres"] = []string{"17", "3"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPut, "/venues/5", form))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if repo.updated == nil || repo.updated.ID != 5 {
		t.Fatalf("expected update of venue 5, got %+v", repo.updated)
	}
	if len(repo.updatedGenres) != 2 || repo.updatedGenres[0] != 17 || repo.updatedGenres[1] != 3 {
		t.Fatalf("expected genre set {17, 3}, got %v", repo.updatedGenres)
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	repo := &mockVenueRepo{updateErr: repository.ErrNotFound}
	r := venueRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPut, "/venues/99", validVenueForm()))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestDeleteVenueStatusReporting(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"deleted", nil, http.StatusOK, "true"},
		{"missing", repository.ErrNotFound, http.StatusNotFound, "false"},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError, "false"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := venueRouter(&mockVenueRepo{deleteErr: tc.err})

			req := httptest.NewRequest(http.MethodDelete, "/venues/7", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d got %d", tc.wantStatus, w.Code)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tc.wantBody {
				t.Fatalf("expected body %q got %q", tc.wantBody, got)
			}
		})
	}
}

func TestSearchVenuesCountMatchesData(t *testing.T) {
	repo := &mockVenueRepo{searchResults: []*models.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 2, Name: "The Dueling Pianos Bar"},
		{ID: 3, Name: "Park Square Live Music & Coffee"},
	}}
	r := venueRouter(repo)

	form := url.Values{"search_term": {"music"}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/venues/search", form))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Count int               `json:"count"`
		Data  []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || len(resp.Data) != 2 {
		t.Fatalf("expected count 2 with 2 rows, got count=%d rows=%d", resp.Count, len(resp.Data))
	}
}

func TestListVenuesGrouped(t *testing.T) {
	repo := &mockVenueRepo{listResults: []*models.VenueWithShows{
		{Venue: models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"}},
		{Venue: models.Venue{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"}},
	}}
	r := venueRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var groups []models.CityGroup
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", groups)
	}
}
