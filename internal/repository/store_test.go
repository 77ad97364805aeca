package repository

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/domain/listings"
	"fyyur/internal/testdb"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var ctx = context.Background()

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(testdb.Open(t))
}

func addVenue(t *testing.T, s *Store, name, city, state string) uint {
	t.Helper()
	out := s.CreateVenue(ctx, &listings.Venue{
		Name:    name,
		Genres:  datatypes.JSONSlice[string]{"Jazz"},
		City:    city,
		State:   state,
		Address: "1 Main Street",
	})
	require.True(t, out.OK, out.Message)
	return out.ID
}

func addArtist(t *testing.T, s *Store, name string) uint {
	t.Helper()
	out := s.CreateArtist(ctx, &listings.Artist{
		Name:      name,
		Genres:    datatypes.JSONSlice[string]{"Rock n Roll"},
		City:      "San Francisco",
		State:     "CA",
		ImageLink: "https://img.example.com/" + name,
	})
	require.True(t, out.OK, out.Message)
	return out.ID
}

func addShow(t *testing.T, s *Store, venueID, artistID uint, start time.Time) uint {
	t.Helper()
	out := s.CreateShow(ctx, &listings.Show{VenueID: venueID, ArtistID: artistID, StartTime: start})
	require.True(t, out.OK, out.Message)
	return out.ID
}

func countRows(t *testing.T, s *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

func names(refs []EntityRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}
