package handlers

import (
	"time"

	"bandstand/internal/models"
)

// partitionShows splits shows around now: past means end_time <= now,
// upcoming means start_time >= now, both boundaries inclusive. A show in
// progress (start_time <= now < end_time) lands in neither list, which
// mirrors how the listing pages have always behaved.
func partitionShows(shows []models.ShowDetail, now time.Time) (past, upcoming []models.ShowDetail) {
	past = []models.ShowDetail{}
	upcoming = []models.ShowDetail{}
	for _, s := range shows {
		if !s.EndTime.After(now) {
			past = append(past, s)
		}
		if !s.StartTime.Before(now) {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

func countUpcomingShows(shows []models.ShowDetail, now time.Time) int {
	n := 0
	for _, s := range shows {
		if !s.StartTime.Before(now) {
			n++
		}
	}
	return n
}

// groupVenuesByLocation buckets venues by the exact (state, city) pair,
// case-sensitive, keyed on the concatenation of the two. Groups appear in
// the order their first venue is encountered and only materialize from
// existing venue rows.
func groupVenuesByLocation(venues []*models.VenueWithShows, now time.Time) []*models.CityGroup {
	groups := []*models.CityGroup{}
	index := make(map[string]*models.CityGroup)
	for _, v := range venues {
		key := v.State + v.City
		group, ok := index[key]
		if !ok {
			group = &models.CityGroup{City: v.City, State: v.State}
			index[key] = group
			groups = append(groups, group)
		}
		group.Venues = append(group.Venues, models.VenueListItem{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: countUpcomingShows(v.Shows, now),
		})
	}
	return groups
}
