package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"bandstand/internal/models"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	List(ctx context.Context) ([]*models.Genre, error)
}

type genreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	err := r.db.QueryRowContext(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id`, genre.Name).Scan(&genre.ID)
	if err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

// List returns the (id, name) pairs used to populate form choices.
func (r *genreRepository) List(ctx context.Context) ([]*models.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	var genres []*models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, &g)
	}
	return genres, rows.Err()
}

// attachGenres resolves the submitted genre ids and inserts one join row
// per genre inside the caller's transaction. Any id that does not resolve
// fails the operation with ErrGenreNotFound, rolling back the whole write.
func attachGenres(ctx context.Context, tx *sql.Tx, table, column string, ownerID int, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}

	var resolved int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM genres WHERE id = ANY($1)`, pq.Array(genreIDs)).Scan(&resolved)
	if err != nil {
		return fmt.Errorf("resolve genres: %w", err)
	}
	if resolved != len(genreIDs) {
		return ErrGenreNotFound
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, genre_id) VALUES ($1, $2)`, table, column)
	for _, genreID := range genreIDs {
		if _, err := tx.ExecContext(ctx, insert, ownerID, genreID); err != nil {
			return fmt.Errorf("attach genre %d: %w", genreID, err)
		}
	}
	return nil
}

// genreNamesFor loads the genre names associated with one venue or artist.
func genreNamesFor(ctx context.Context, db *sql.DB, table, column string, ownerID int) ([]string, error) {
	query := fmt.Sprintf(`SELECT g.name FROM genres g JOIN %s j ON j.genre_id = g.id WHERE j.%s = $1 ORDER BY g.id`, table, column)

	rows, err := db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load genre names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan genre name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
