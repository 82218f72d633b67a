package models

import "time"

type Show struct {
	ID        int       `json:"id" db:"id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ShowRequest carries the submitted form fields for a new show.
type ShowRequest struct {
	ArtistID  int       `form:"artist_id" validate:"required"`
	VenueID   int       `form:"venue_id" validate:"required"`
	StartTime time.Time `form:"start_time" validate:"required"`
	EndTime   time.Time `form:"end_time" validate:"required"`
}

// ShowDetail joins a show with the names of the entities on either side.
// Venue pages fill the artist fields, artist pages the venue fields, and
// the shows listing fills both.
type ShowDetail struct {
	ID              int       `json:"id,omitempty"`
	VenueID         int       `json:"venue_id,omitempty"`
	VenueName       string    `json:"venue_name,omitempty"`
	VenueImageLink  string    `json:"venue_image_link,omitempty"`
	ArtistID        int       `json:"artist_id,omitempty"`
	ArtistName      string    `json:"artist_name,omitempty"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}
