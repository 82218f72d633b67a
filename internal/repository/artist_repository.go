package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bandstand/internal/models"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist, genreIDs []int) error
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	GetByIDWithShows(ctx context.Context, id int) (*models.ArtistWithShows, error)
	List(ctx context.Context) ([]*models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*models.Artist, error)
	Update(ctx context.Context, artist *models.Artist, genreIDs []int) error
	Delete(ctx context.Context, id int) error
}

type artistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) ArtistRepository {
	return &artistRepository{db: db}
}

const artistColumns = `id, name, city, state, phone, image_link, facebook_link, website, seeking_venue, seeking_description, created_at, updated_at`

func scanArtist(row interface{ Scan(...any) error }) (*models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist, genreIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create artist: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO artists (name, city, state, phone, image_link, facebook_link, website, seeking_venue, seeking_description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, now, now,
	).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	if err := attachGenres(ctx, tx, "artist_genres", "artist_id", artist.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create artist: %w", err)
	}
	artist.CreatedAt = now
	artist.UpdatedAt = now
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return artist, nil
}

// GetByIDWithShows loads the artist together with its genre names and its
// shows joined against the hosting venue.
func (r *artistRepository) GetByIDWithShows(ctx context.Context, id int) (*models.ArtistWithShows, error) {
	artist, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := genreNamesFor(ctx, r.db, "artist_genres", "artist_id", id)
	if err != nil {
		return nil, err
	}

	showsQuery := `SELECT s.id, s.venue_id, v.name, v.image_link, s.start_time, s.end_time
				   FROM shows s
				   JOIN venues v ON v.id = s.venue_id
				   WHERE s.artist_id = $1
				   ORDER BY s.start_time`

	rows, err := r.db.QueryContext(ctx, showsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get shows for artist: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowDetail
	for rows.Next() {
		var s models.ShowDetail
		if err := rows.Scan(&s.ID, &s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		s.ArtistID = id
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist shows: %w", err)
	}

	return &models.ArtistWithShows{Artist: *artist, Genres: genres, Shows: shows}, nil
}

func (r *artistRepository) List(ctx context.Context) ([]*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var artists []*models.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

// SearchByName matches the term as a case-insensitive substring anywhere
// in the artist name. An empty term matches every artist.
func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE '%' || $1 || '%' ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	var artists []*models.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

// Update overwrites every mutable field and replaces the genre set in one
// transaction.
func (r *artistRepository) Update(ctx context.Context, artist *models.Artist, genreIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update artist: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE artists SET name = $1, city = $2, state = $3, phone = $4, image_link = $5, facebook_link = $6, website = $7, seeking_venue = $8, seeking_description = $9, updated_at = $10 WHERE id = $11`

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, now, artist.ID,
	)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update artist rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM artist_genres WHERE artist_id = $1`, artist.ID); err != nil {
		return fmt.Errorf("clear artist genres: %w", err)
	}
	if err := attachGenres(ctx, tx, "artist_genres", "artist_id", artist.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update artist: %w", err)
	}
	artist.UpdatedAt = now
	return nil
}

// Delete removes the artist, its genre associations and every show it
// performs inside a single transaction.
func (r *artistRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete artist: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = $1`, id); err != nil {
		return fmt.Errorf("delete artist shows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM artist_genres WHERE artist_id = $1`, id); err != nil {
		return fmt.Errorf("delete artist genres: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete artist rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete artist: %w", err)
	}
	return nil
}
