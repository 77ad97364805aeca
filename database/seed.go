package database

import (
	"fmt"
	"time"

	"fyyur/internal/domain/listings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDemo loads the sample venues, artists and shows into an empty store.
// It is a no-op when any venue already exists.
func SeedDemo(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&listings.Venue{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		venues := demoVenues()
		if err := tx.Create(&venues).Error; err != nil {
			return fmt.Errorf("seed venues: %w", err)
		}
		artists := demoArtists()
		if err := tx.Create(&artists).Error; err != nil {
			return fmt.Errorf("seed artists: %w", err)
		}

		at := func(year int, month time.Month, day, hour, minute int) time.Time {
			return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
		}
		shows := []listings.Show{
			{VenueID: venues[0].ID, ArtistID: artists[0].ID, StartTime: at(2019, time.May, 21, 21, 30)},
			{VenueID: venues[2].ID, ArtistID: artists[1].ID, StartTime: at(2019, time.June, 15, 23, 0)},
			{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: at(2035, time.April, 1, 20, 0)},
			{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: at(2035, time.April, 8, 20, 0)},
			{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: at(2035, time.April, 15, 20, 0)},
		}
		if err := tx.Create(&shows).Error; err != nil {
			return fmt.Errorf("seed shows: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func demoVenues() []listings.Venue {
	return []listings.Venue{
		{
			Name:               "The Musical Hop",
			Genres:             datatypes.JSONSlice[string]{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       datatypes.JSONSlice[string]{"Classical", "R&B", "Hip-Hop"},
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       datatypes.JSONSlice[string]{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
		},
	}
}

func demoArtists() []listings.Artist {
	return []listings.Artist{
		{
			Name:               "Guns N Petals",
			Genres:             datatypes.JSONSlice[string]{"Rock n Roll"},
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		},
		{
			Name:         "Matt Quevado",
			Genres:       datatypes.JSONSlice[string]{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    datatypes.JSONSlice[string]{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		},
	}
}
