package models

import "time"

type Artist struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	Website            string    `json:"website" db:"website"`
	SeekingVenue       bool      `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// ArtistRequest carries the submitted form fields for create and edit.
type ArtistRequest struct {
	Name               string `form:"name" validate:"required"`
	City               string `form:"city" validate:"required"`
	State              string `form:"state" validate:"required,us_state"`
	Phone              string `form:"phone" validate:"omitempty,phone"`
	ImageLink          string `form:"image_link" validate:"omitempty,url"`
	FacebookLink       string `form:"facebook_link" validate:"omitempty,url"`
	Website            string `form:"website" validate:"omitempty,url"`
	SeekingVenue       bool   `form:"seeking_venue"`
	SeekingDescription string `form:"seeking_description"`
	GenreIDs           []int  `form:"genres" validate:"required,min=1"`
}

// ArtistWithShows includes the associated genre names and shows.
type ArtistWithShows struct {
	Artist
	Genres []string     `json:"genres"`
	Shows  []ShowDetail `json:"-"`
}

// ArtistDetail is the artist page payload with shows split around now.
type ArtistDetail struct {
	Artist
	Genres             []string     `json:"genres"`
	PastShows          []ShowDetail `json:"past_shows"`
	UpcomingShows      []ShowDetail `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
