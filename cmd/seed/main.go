// Command seed loads the demo data set: the genre list, three venues,
// three artists and their shows. It is idempotent; a database that
// already has genres is left untouched.
package main

import (
	"context"
	"log"
	"time"

	_ "github.com/lib/pq"

	"bandstand/internal/config"
	"bandstand/internal/db"
	"bandstand/internal/db/migrations"
	"bandstand/internal/models"
	"bandstand/internal/repository"
)

var genreNames = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Swing", "Other",
}

func main() {
	cfg := config.Load()

	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	genreRepo := repository.NewGenreRepository(database.DB)
	existing, err := genreRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to check genres: %v", err)
	}
	if len(existing) > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	genres := make(map[string]int, len(genreNames))
	for _, name := range genreNames {
		g := &models.Genre{Name: name}
		if err := genreRepo.Create(ctx, g); err != nil {
			log.Fatalf("Failed to seed genre %q: %v", name, err)
		}
		genres[name] = g.ID
	}

	venueRepo := repository.NewVenueRepository(database.DB)
	artistRepo := repository.NewArtistRepository(database.DB)
	showRepo := repository.NewShowRepository(database.DB)

	seedVenue := func(v *models.Venue, genreList ...string) int {
		if err := venueRepo.Create(ctx, v, resolve(genres, genreList)); err != nil {
			log.Fatalf("Failed to seed venue %q: %v", v.Name, err)
		}
		return v.ID
	}
	seedArtist := func(a *models.Artist, genreList ...string) int {
		if err := artistRepo.Create(ctx, a, resolve(genres, genreList)); err != nil {
			log.Fatalf("Failed to seed artist %q: %v", a.Name, err)
		}
		return a.ID
	}

	musicalHop := seedVenue(&models.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
	}, "Jazz", "Reggae", "Swing", "Classical", "Folk")

	seedVenue(&models.Venue{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
	}, "Classical", "R&B", "Hip-Hop")

	parkSquare := seedVenue(&models.Venue{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
	}, "Rock n Roll", "Jazz", "Classical", "Folk")

	gunsNPetals := seedArtist(&models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	}, "Rock n Roll")

	mattQuevedo := seedArtist(&models.Artist{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
	}, "Jazz")

	wildSaxBand := seedArtist(&models.Artist{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
	}, "Jazz", "Classical")

	showAt := func(artistID, venueID int, start string) {
		startTime, err := time.Parse(time.RFC3339, start)
		if err != nil {
			log.Fatalf("Bad seed timestamp %q: %v", start, err)
		}
		show := &models.Show{
			ArtistID:  artistID,
			VenueID:   venueID,
			StartTime: startTime,
			EndTime:   startTime.Add(2 * time.Hour),
		}
		if err := showRepo.Create(ctx, show); err != nil {
			log.Fatalf("Failed to seed show: %v", err)
		}
	}

	showAt(gunsNPetals, musicalHop, "2019-05-21T21:30:00Z")
	showAt(mattQuevedo, parkSquare, "2019-06-15T23:00:00Z")
	showAt(wildSaxBand, parkSquare, "2035-04-01T20:00:00Z")
	showAt(wildSaxBand, parkSquare, "2035-04-08T20:00:00Z")
	showAt(wildSaxBand, parkSquare, "2035-04-15T20:00:00Z")

	log.Println("Seed data loaded")
}

func resolve(genres map[string]int, names []string) []int {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		ids = append(ids, genres[name])
	}
	return ids
}
