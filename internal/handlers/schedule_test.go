package handlers

import (
	"testing"
	"time"

	"bandstand/internal/models"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return ts
}

func TestPartitionShowsSplitsAroundNow(t *testing.T) {
	now := mustTime(t, "2026-09-01T12:00:00Z")
	shows := []models.ShowDetail{
		{ID: 1, StartTime: now.Add(-3 * time.Hour), EndTime: now.Add(-2 * time.Hour)},
		{ID: 2, StartTime: now.Add(2 * time.Hour), EndTime: now.Add(4 * time.Hour)},
	}

	past, upcoming := partitionShows(shows, now)
	if len(past) != 1 || past[0].ID != 1 {
		t.Fatalf("expected show 1 in past, got %+v", past)
	}
	if len(upcoming) != 1 || upcoming[0].ID != 2 {
		t.Fatalf("expected show 2 in upcoming, got %+v", upcoming)
	}
}

func TestPartitionShowsExcludesInProgress(t *testing.T) {
	now := mustTime(t, "2026-09-01T12:00:00Z")
	shows := []models.ShowDetail{
		{ID: 1, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
	}

	past, upcoming := partitionShows(shows, now)
	if len(past) != 0 || len(upcoming) != 0 {
		t.Fatalf("in-progress show should be in neither list, got past=%v upcoming=%v", past, upcoming)
	}
}

func TestPartitionShowsInclusiveBoundaries(t *testing.T) {
	now := mustTime(t, "2026-09-01T12:00:00Z")

	// Degenerate show with start == end == now satisfies both predicates.
	shows := []models.ShowDetail{{ID: 1, StartTime: now, EndTime: now}}
	past, upcoming := partitionShows(shows, now)
	if len(past) != 1 {
		t.Fatalf("end_time == now should be past, got %v", past)
	}
	if len(upcoming) != 1 {
		t.Fatalf("start_time == now should be upcoming, got %v", upcoming)
	}
}

func TestGroupVenuesByLocationKeysOnStateAndCity(t *testing.T) {
	now := mustTime(t, "2026-09-01T12:00:00Z")
	venues := []*models.VenueWithShows{
		{Venue: models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"}},
		{Venue: models.Venue{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"}},
		{Venue: models.Venue{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
		}, Shows: []models.ShowDetail{{StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)}}},
	}

	groups := groupVenuesByLocation(venues, now)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// First-encounter order: CA/San Francisco before NY/New York.
	if groups[0].State != "CA" || groups[0].City != "San Francisco" {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if len(groups[0].Venues) != 2 {
		t.Fatalf("expected both SF venues in one group, got %+v", groups[0].Venues)
	}
	if groups[0].Venues[1].NumUpcomingShows != 1 {
		t.Fatalf("expected 1 upcoming show for Park Square, got %d", groups[0].Venues[1].NumUpcomingShows)
	}
	if groups[1].State != "NY" || len(groups[1].Venues) != 1 {
		t.Fatalf("unexpected second group %+v", groups[1])
	}
}

func TestGroupVenuesByLocationIsCaseSensitive(t *testing.T) {
	now := mustTime(t, "2026-09-01T12:00:00Z")
	venues := []*models.VenueWithShows{
		{Venue: models.Venue{ID: 1, City: "San Francisco", State: "CA"}},
		{Venue: models.Venue{ID: 2, City: "san francisco", State: "CA"}},
	}

	groups := groupVenuesByLocation(venues, now)
	if len(groups) != 2 {
		t.Fatalf("differently-cased cities must not merge, got %d groups", len(groups))
	}
}

func TestGroupVenuesByLocationNoEmptyGroups(t *testing.T) {
	groups := groupVenuesByLocation(nil, time.Now())
	if len(groups) != 0 {
		t.Fatalf("expected no groups for no venues, got %+v", groups)
	}
}
