package models

import "time"

type Venue struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Address            string    `json:"address" db:"address"`
	Phone              string    `json:"phone" db:"phone"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	Website            string    `json:"website" db:"website"`
	SeekingTalent      bool      `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// VenueRequest carries the submitted form fields for create and edit.
// The same struct serves both since an edit is a full replace.
type VenueRequest struct {
	Name               string `form:"name" validate:"required"`
	City               string `form:"city" validate:"required"`
	State              string `form:"state" validate:"required,us_state"`
	Address            string `form:"address" validate:"required"`
	Phone              string `form:"phone" validate:"omitempty,phone"`
	ImageLink          string `form:"image_link" validate:"omitempty,url"`
	FacebookLink       string `form:"facebook_link" validate:"omitempty,url"`
	Website            string `form:"website" validate:"omitempty,url"`
	SeekingTalent      bool   `form:"seeking_talent"`
	SeekingDescription string `form:"seeking_description"`
	GenreIDs           []int  `form:"genres" validate:"required,min=1"`
}

// VenueWithShows includes the associated genre names and shows.
type VenueWithShows struct {
	Venue
	Genres []string     `json:"genres"`
	Shows  []ShowDetail `json:"-"`
}

// VenueListItem is one venue entry inside a city group.
type VenueListItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup collects the venues sharing the same state and city.
type CityGroup struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueListItem `json:"venues"`
}

// VenueDetail is the venue page payload with shows split around now.
type VenueDetail struct {
	Venue
	Genres             []string     `json:"genres"`
	PastShows          []ShowDetail `json:"past_shows"`
	UpcomingShows      []ShowDetail `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
