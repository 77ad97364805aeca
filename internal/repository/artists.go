package repository

import (
	"context"
	"errors"
	"time"

	"fyyur/internal/domain/listings"

	"gorm.io/gorm"
)

var artistRequired = []string{"name", "city", "state"}

func (s *Store) GetArtist(ctx context.Context, id uint) (*listings.Artist, error) {
	var a listings.Artist
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("artist", id)
		}
		return nil, classify("get artist", err)
	}
	return &a, nil
}

func (s *Store) ListArtists(ctx context.Context) ([]EntityRef, error) {
	var refs []EntityRef
	if err := s.db.WithContext(ctx).
		Model(&listings.Artist{}).
		Select("id", "name").
		Order("id ASC").
		Find(&refs).Error; err != nil {
		return nil, classify("list artists", err)
	}
	return refs, nil
}

func (s *Store) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	return s.searchNames(ctx, &listings.Artist{}, term)
}

// ArtistDetail loads an artist with its shows split into past and upcoming
// relative to now.
func (s *Store) ArtistDetail(ctx context.Context, id uint, now time.Time) (*ArtistDetail, error) {
	a, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	var shows []VenueShow
	if err := s.db.WithContext(ctx).
		Table("shows").
		Select("shows.venue_id, venues.name AS venue_name, COALESCE(venues.image_link, '') AS venue_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", id).
		Order("shows.start_time ASC, shows.id ASC").
		Scan(&shows).Error; err != nil {
		return nil, classify("load artist shows", err)
	}

	return newArtistDetail(*a, shows, now), nil
}

func (s *Store) CreateArtist(ctx context.Context, a *listings.Artist) Outcome {
	a.ID = 0
	a.Genres = normalizeGenres(a.Genres)
	if err := requireColumns(artistColumns(*a), artistRequired...); err != nil {
		return failed(0, err, "listed", "Artist", a.Name)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return classify("create artist", tx.Create(a).Error)
	})
	if err != nil {
		return failed(0, err, "listed", "Artist", a.Name)
	}
	return succeeded(a.ID, "Artist "+a.Name+" was successfully listed!")
}

// UpdateArtist copies the columns named in fields from in onto the stored
// artist. Every other column keeps its stored value.
func (s *Store) UpdateArtist(ctx context.Context, id uint, in listings.Artist, fields FieldSet) Outcome {
	name := ""
	if fields.Has("name") {
		name = in.Name
	}

	updates, err := fields.pick("artist", artistColumns(in))
	if err == nil {
		err = requireColumns(updates, artistRequired...)
	}
	if err != nil {
		return failed(id, err, "edited", "Artist", name)
	}

	var current listings.Artist
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("artist", id)
			}
			return classify("load artist", err)
		}
		if len(updates) == 0 {
			return nil
		}
		return classify("update artist", tx.Model(&current).Updates(updates).Error)
	})
	if name == "" {
		name = current.Name
	}
	if err != nil {
		return failed(id, err, "edited", "Artist", name)
	}
	return succeeded(id, "Artist "+name+" was successfully edited!")
}

// DeleteArtist removes an artist together with every show it plays.
func (s *Store) DeleteArtist(ctx context.Context, id uint) Outcome {
	var a listings.Artist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("artist", id)
			}
			return classify("load artist", err)
		}

		// the FK cascades too, but stores migrated without it must not keep orphans
		if err := tx.Where("artist_id = ?", id).Delete(&listings.Show{}).Error; err != nil {
			return classify("delete artist shows", err)
		}
		return classify("delete artist", tx.Delete(&a).Error)
	})
	if err != nil {
		return failed(id, err, "deleted", "Artist", a.Name)
	}
	return succeeded(id, a.Name+" has been successfully deleted!")
}

func artistColumns(a listings.Artist) map[string]any {
	return map[string]any{
		"name":                a.Name,
		"genres":              normalizeGenres(a.Genres),
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"website":             a.Website,
		"facebook_link":       a.FacebookLink,
		"image_link":          a.ImageLink,
		"seeking_venue":       a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}
