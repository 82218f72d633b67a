package models

// Genre is a style tag shared many-to-many by venues and artists.
// Genres are seed data and are not deleted through normal operation.
type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// SearchResult is the shape returned by the venue and artist searches.
// Count is the total number of matching rows; there is no pagination.
type SearchResult struct {
	Count int `json:"count"`
	Data  any `json:"data"`
}
