package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bandstand/internal/models"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	GetByID(ctx context.Context, id int) (*models.ShowDetail, error)
	List(ctx context.Context) ([]*models.ShowDetail, error)
}

type showRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) ShowRepository {
	return &showRepository{db: db}
}

// Create verifies both foreign keys resolve before inserting, so a bad
// artist or venue id surfaces as a referential error rather than a raw
// constraint violation. Overlapping shows are allowed.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create show: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = $1`, show.ArtistID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrArtistNotFound
		}
		return fmt.Errorf("check show artist: %w", err)
	}
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = $1`, show.VenueID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrVenueNotFound
		}
		return fmt.Errorf("check show venue: %w", err)
	}

	query := `INSERT INTO shows (artist_id, venue_id, start_time, end_time, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query,
		show.ArtistID, show.VenueID, show.StartTime, show.EndTime, now, now,
	).Scan(&show.ID)
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create show: %w", err)
	}
	show.CreatedAt = now
	show.UpdatedAt = now
	return nil
}

const showDetailQuery = `SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time, s.end_time
						 FROM shows s
						 JOIN venues v ON v.id = s.venue_id
						 JOIN artists a ON a.id = s.artist_id`

func (r *showRepository) GetByID(ctx context.Context, id int) (*models.ShowDetail, error) {
	var s models.ShowDetail
	err := r.db.QueryRowContext(ctx, showDetailQuery+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.VenueID, &s.VenueName, &s.ArtistID, &s.ArtistName, &s.ArtistImageLink,
		&s.StartTime, &s.EndTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get show by id: %w", err)
	}
	return &s, nil
}

func (r *showRepository) List(ctx context.Context) ([]*models.ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, showDetailQuery+` ORDER BY s.start_time`)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var shows []*models.ShowDetail
	for rows.Next() {
		var s models.ShowDetail
		if err := rows.Scan(
			&s.ID, &s.VenueID, &s.VenueName, &s.ArtistID, &s.ArtistName, &s.ArtistImageLink,
			&s.StartTime, &s.EndTime,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, &s)
	}
	return shows, rows.Err()
}
