package repository

import (
	"context"
	"errors"
	"time"

	"fyyur/internal/domain/listings"

	"gorm.io/gorm"
)

// ShowListing is one row of the shows page.
type ShowListing struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func (s *Store) ListShows(ctx context.Context) ([]ShowListing, error) {
	var rows []ShowListing
	if err := s.db.WithContext(ctx).
		Table("shows").
		Select(`shows.id, shows.venue_id, venues.name AS venue_name,
			shows.artist_id, artists.name AS artist_name,
			COALESCE(artists.image_link, '') AS artist_image_link, shows.start_time`).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, classify("list shows", err)
	}
	if rows == nil {
		rows = make([]ShowListing, 0)
	}
	return rows, nil
}

// CreateShow lists a show after checking that both its venue and its artist
// exist. Duplicate shows are allowed.
func (s *Store) CreateShow(ctx context.Context, sh *listings.Show) Outcome {
	sh.ID = 0
	if err := validateShow(sh); err != nil {
		return failed(0, err, "listed", "Show", "")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &listings.Venue{}, "venue", sh.VenueID); err != nil {
			return err
		}
		if err := mustExist(tx, &listings.Artist{}, "artist", sh.ArtistID); err != nil {
			return err
		}
		return classify("create show", tx.Create(sh).Error)
	})
	if err != nil {
		return failed(0, err, "listed", "Show", "")
	}
	return succeeded(sh.ID, "Show was successfully listed!")
}

func validateShow(sh *listings.Show) error {
	switch {
	case sh.VenueID == 0:
		return invalid("venue_id is required")
	case sh.ArtistID == 0:
		return invalid("artist_id is required")
	case sh.StartTime.IsZero():
		return invalid("start_time is required")
	}
	return nil
}

// mustExist turns a dangling foreign key into a validation failure instead of
// leaving it to the store's constraint.
func mustExist(tx *gorm.DB, model any, entity string, id uint) error {
	err := tx.Model(model).Select("id").Where("id = ?", id).Take(model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("%s %d does not exist", entity, id)
	}
	return classify("check "+entity, err)
}
