package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bandstand/internal/models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue, genreIDs []int) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	GetByIDWithShows(ctx context.Context, id int) (*models.VenueWithShows, error)
	ListWithShows(ctx context.Context) ([]*models.VenueWithShows, error)
	SearchByName(ctx context.Context, term string) ([]*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue, genreIDs []int) error
	Delete(ctx context.Context, id int) error
}

type venueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) VenueRepository {
	return &venueRepository{db: db}
}

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link, website, seeking_talent, seeking_description, created_at, updated_at`

func scanVenue(row interface{ Scan(...any) error }) (*models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website,
		&v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts the venue and its genre associations in one transaction.
// An unresolvable genre id fails the whole operation with ErrGenreNotFound.
func (r *venueRepository) Create(ctx context.Context, venue *models.Venue, genreIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create venue: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, website, seeking_talent, seeking_description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, now, now,
	).Scan(&venue.ID)
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	if err := attachGenres(ctx, tx, "venue_genres", "venue_id", venue.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create venue: %w", err)
	}
	venue.CreatedAt = now
	venue.UpdatedAt = now
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return venue, nil
}

// GetByIDWithShows loads the venue together with its genre names and its
// shows joined against the performing artist.
func (r *venueRepository) GetByIDWithShows(ctx context.Context, id int) (*models.VenueWithShows, error) {
	venue, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := genreNamesFor(ctx, r.db, "venue_genres", "venue_id", id)
	if err != nil {
		return nil, err
	}

	showsQuery := `SELECT s.id, s.artist_id, a.name, a.image_link, s.start_time, s.end_time
				   FROM shows s
				   JOIN artists a ON a.id = s.artist_id
				   WHERE s.venue_id = $1
				   ORDER BY s.start_time`

	rows, err := r.db.QueryContext(ctx, showsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get shows for venue: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowDetail
	for rows.Next() {
		var s models.ShowDetail
		if err := rows.Scan(&s.ID, &s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		s.VenueID = id
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue shows: %w", err)
	}

	return &models.VenueWithShows{Venue: *venue, Genres: genres, Shows: shows}, nil
}

// ListWithShows returns every venue with its show times attached, for the
// grouped-by-location listing. Venue order is insertion (id) order, which
// fixes the order groups first appear in.
func (r *venueRepository) ListWithShows(ctx context.Context) ([]*models.VenueWithShows, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var venues []*models.VenueWithShows
	byID := make(map[int]*models.VenueWithShows)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		vs := &models.VenueWithShows{Venue: *venue}
		venues = append(venues, vs)
		byID[venue.ID] = vs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	showRows, err := r.db.QueryContext(ctx, `SELECT venue_id, start_time, end_time FROM shows`)
	if err != nil {
		return nil, fmt.Errorf("list venue shows: %w", err)
	}
	defer showRows.Close()

	for showRows.Next() {
		var venueID int
		var s models.ShowDetail
		if err := showRows.Scan(&venueID, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan show times: %w", err)
		}
		if vs, ok := byID[venueID]; ok {
			vs.Shows = append(vs.Shows, s)
		}
	}
	if err := showRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show times: %w", err)
	}

	return venues, nil
}

// SearchByName matches the term as a case-insensitive substring anywhere
// in the venue name. An empty term matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE '%' || $1 || '%' ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

// Update overwrites every mutable field and replaces the genre set in one
// transaction. Fields absent from the submitted form arrive here as zero
// values and overwrite what was stored.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue, genreIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update venue: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE venues SET name = $1, city = $2, state = $3, address = $4, phone = $5, image_link = $6, facebook_link = $7, website = $8, seeking_talent = $9, seeking_description = $10, updated_at = $11 WHERE id = $12`

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, now, venue.ID,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update venue rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM venue_genres WHERE venue_id = $1`, venue.ID); err != nil {
		return fmt.Errorf("clear venue genres: %w", err)
	}
	if err := attachGenres(ctx, tx, "venue_genres", "venue_id", venue.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update venue: %w", err)
	}
	venue.UpdatedAt = now
	return nil
}

// Delete removes the venue, its genre associations and every show held at
// it inside a single transaction. The schema cascades on delete as well;
// the explicit deletes keep the behavior store-independent.
func (r *venueRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete venue: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
		return fmt.Errorf("delete venue shows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM venue_genres WHERE venue_id = $1`, id); err != nil {
		return fmt.Errorf("delete venue genres: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete venue rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete venue: %w", err)
	}
	return nil
}
