// Package repository implements durable storage for venues, artists,
// shows and genres over PostgreSQL. The sentinel errors below let the
// handler layer tell expected failures apart from store failures:
// ErrNotFound maps to a 404, the referential sentinels map to a 400,
// and anything else is treated as an internal store failure.
package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrGenreNotFound is returned when a submitted genre id does not
// resolve to an existing genre row. The whole write is rolled back.
var ErrGenreNotFound = errors.New("genre not found")

// ErrArtistNotFound is returned when a show references an unknown artist.
var ErrArtistNotFound = errors.New("artist not found")

// ErrVenueNotFound is returned when a show references an unknown venue.
var ErrVenueNotFound = errors.New("venue not found")
