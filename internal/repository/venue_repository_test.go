package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"bandstand/internal/models"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, VenueRepository, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	repo := NewVenueRepository(db)
	return mock, repo, func() { db.Close() }
}

func venueRows() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "name", "city", "state", "address", "phone", "image_link",
		"facebook_link", "website", "seeking_talent", "seeking_description",
		"created_at", "updated_at",
	}).AddRow(1, "The Wild Sax Bandstand", "San Francisco", "CA", "34 Whiskey Moore Ave",
		"415-000-1234", "", "", "", false, "", now, now)
}

func TestVenueCreateCommitsGenreAssociations(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO venues`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM genres WHERE id = ANY\(\$1\)`).
		WithArgs(pq.Array([]int{1, 2})).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`INSERT INTO venue_genres`).
		WithArgs(7, 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO venue_genres`).
		WithArgs(7, 2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	venue := &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"}
	if err := repo.Create(context.Background(), venue, []int{1, 2}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if venue.ID != 7 {
		t.Fatalf("expected id 7, got %d", venue.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueCreateRollsBackOnUnknownGenre(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO venues`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM genres WHERE id = ANY\(\$1\)`).
		WithArgs(pq.Array([]int{1, 999})).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	venue := &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"}
	err := repo.Create(context.Background(), venue, []int{1, 999})
	if !errors.Is(err, ErrGenreNotFound) {
		t.Fatalf("expected ErrGenreNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueDeleteCascadesShowsAtomically(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM shows WHERE venue_id = \$1`).
		WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM venue_genres WHERE venue_id = \$1`).
		WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
		WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueDeleteMissingRowIsNotFound(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM shows WHERE venue_id = \$1`).
		WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM venue_genres WHERE venue_id = \$1`).
		WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
		WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueSearchMatchesSubstringAnywhere(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery(`FROM venues WHERE name ILIKE '%' \|\| \$1 \|\| '%'`).
		WithArgs("an").
		WillReturnRows(venueRows())

	venues, err := repo.SearchByName(context.Background(), "an")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(venues) != 1 || venues[0].Name != "The Wild Sax Bandstand" {
		t.Fatalf("unexpected result %+v", venues)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueUpdateReplacesGenreSetInOneTransaction(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE venues SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM venue_genres WHERE venue_id = \$1`).
		WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM genres WHERE id = ANY\(\$1\)`).
		WithArgs(pq.Array([]int{17, 3})).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`INSERT INTO venue_genres`).
		WithArgs(5, 17).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO venue_genres`).
		WithArgs(5, 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	venue := &models.Venue{ID: 5, Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"}
	if err := repo.Update(context.Background(), venue, []int{17, 3}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueUpdateMissingRowIsNotFound(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE venues SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	venue := &models.Venue{ID: 99, Name: "Gone", City: "Nowhere", State: "CA"}
	if err := repo.Update(context.Background(), venue, []int{1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
