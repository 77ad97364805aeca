package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/domain/listings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Area groups the venues that share one (city, state) pair.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []EntityRef `json:"venues"`
}

var venueRequired = []string{"name", "city", "state", "address"}

func (s *Store) GetVenue(ctx context.Context, id uint) (*listings.Venue, error) {
	var v listings.Venue
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("venue", id)
		}
		return nil, classify("get venue", err)
	}
	return &v, nil
}

func (s *Store) ListVenues(ctx context.Context) ([]EntityRef, error) {
	var refs []EntityRef
	if err := s.db.WithContext(ctx).
		Model(&listings.Venue{}).
		Select("id", "name").
		Order("id ASC").
		Find(&refs).Error; err != nil {
		return nil, classify("list venues", err)
	}
	return refs, nil
}

// GroupVenuesByLocation returns one Area per distinct (city, state) pair, in
// the order each pair first appears by venue id.
func (s *Store) GroupVenuesByLocation(ctx context.Context) ([]Area, error) {
	var venues []listings.Venue
	if err := s.db.WithContext(ctx).
		Select("id", "name", "city", "state").
		Order("id ASC").
		Find(&venues).Error; err != nil {
		return nil, classify("group venues", err)
	}

	type location struct{ city, state string }
	index := make(map[location]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		key := location{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, EntityRef{ID: v.ID, Name: v.Name})
	}
	return areas, nil
}

func (s *Store) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	return s.searchNames(ctx, &listings.Venue{}, term)
}

// VenueDetail loads a venue with its shows split into past and upcoming
// relative to now.
func (s *Store) VenueDetail(ctx context.Context, id uint, now time.Time) (*VenueDetail, error) {
	v, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	var shows []ArtistShow
	if err := s.db.WithContext(ctx).
		Table("shows").
		Select("shows.artist_id, artists.name AS artist_name, COALESCE(artists.image_link, '') AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", id).
		Order("shows.start_time ASC, shows.id ASC").
		Scan(&shows).Error; err != nil {
		return nil, classify("load venue shows", err)
	}

	return newVenueDetail(*v, shows, now), nil
}

func (s *Store) CreateVenue(ctx context.Context, v *listings.Venue) Outcome {
	v.ID = 0
	v.Genres = normalizeGenres(v.Genres)
	if err := requireColumns(venueColumns(*v), venueRequired...); err != nil {
		return failed(0, err, "listed", "Venue", v.Name)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return classify("create venue", tx.Create(v).Error)
	})
	if err != nil {
		return failed(0, err, "listed", "Venue", v.Name)
	}
	return succeeded(v.ID, "Venue "+v.Name+" was successfully listed!")
}

// UpdateVenue copies the columns named in fields from in onto the stored
// venue. Every other column keeps its stored value.
func (s *Store) UpdateVenue(ctx context.Context, id uint, in listings.Venue, fields FieldSet) Outcome {
	name := ""
	if fields.Has("name") {
		name = in.Name
	}

	updates, err := fields.pick("venue", venueColumns(in))
	if err == nil {
		err = requireColumns(updates, venueRequired...)
	}
	if err != nil {
		return failed(id, err, "edited", "Venue", name)
	}

	var current listings.Venue
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("venue", id)
			}
			return classify("load venue", err)
		}
		if len(updates) == 0 {
			return nil
		}
		return classify("update venue", tx.Model(&current).Updates(updates).Error)
	})
	if name == "" {
		name = current.Name
	}
	if err != nil {
		return failed(id, err, "edited", "Venue", name)
	}
	return succeeded(id, "Venue "+name+" was successfully edited!")
}

// DeleteVenue removes a venue that hosts no shows. Shows are never removed
// on a venue's behalf.
func (s *Store) DeleteVenue(ctx context.Context, id uint) Outcome {
	var v listings.Venue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("venue", id)
			}
			return classify("load venue", err)
		}

		var hosted int64
		if err := tx.Model(&listings.Show{}).Where("venue_id = ?", id).Count(&hosted).Error; err != nil {
			return classify("count venue shows", err)
		}
		if hosted > 0 {
			return fmt.Errorf("%w: venue %d still hosts %d show(s)", ErrPersistence, id, hosted)
		}

		return classify("delete venue", tx.Delete(&v).Error)
	})
	if err != nil {
		return failed(id, err, "deleted", "Venue", v.Name)
	}
	return succeeded(id, v.Name+" has been successfully deleted!")
}

func venueColumns(v listings.Venue) map[string]any {
	return map[string]any{
		"name":                v.Name,
		"genres":              normalizeGenres(v.Genres),
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"website":             v.Website,
		"facebook_link":       v.FacebookLink,
		"image_link":          v.ImageLink,
		"seeking_talent":      v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}

func normalizeGenres(g datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	if g == nil {
		return datatypes.JSONSlice[string]{}
	}
	return g
}

// requireColumns rejects blank values for the required columns present in
// columns. Columns absent from the map are not checked.
func requireColumns(columns map[string]any, required ...string) error {
	var missing []string
	for _, name := range required {
		v, ok := columns[name]
		if !ok {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return invalid("missing required field(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
