package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	now := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	start := func(d time.Duration) time.Time { return now.Add(d) }

	shows := []ArtistShow{
		{ArtistID: 1, StartTime: start(-time.Nanosecond)},
		{ArtistID: 2, StartTime: start(0)},
		{ArtistID: 3, StartTime: start(time.Nanosecond)},
		{ArtistID: 4, StartTime: start(-365 * 24 * time.Hour)},
	}

	past, upcoming := partition(shows, func(s ArtistShow) time.Time { return s.StartTime }, now)
	require.Equal(t, []uint{1, 4}, artistIDs(past))
	require.Equal(t, []uint{2, 3}, artistIDs(upcoming), "a show starting exactly now is upcoming")
	require.Len(t, shows, len(past)+len(upcoming))
}

func TestPartition_Empty(t *testing.T) {
	past, upcoming := partition(nil, func(s VenueShow) time.Time { return s.StartTime }, time.Now())
	require.NotNil(t, past)
	require.NotNil(t, upcoming)
	require.Empty(t, past)
	require.Empty(t, upcoming)
}

func TestMatchNames(t *testing.T) {
	refs := []EntityRef{{ID: 1, Name: "The Musical Hop"}, {ID: 2, Name: "Park Square Live Music & Coffee"}}

	require.Equal(t, SearchResult{Count: 2, Data: refs}, matchNames(refs, ""))
	require.Equal(t, SearchResult{Count: 1, Data: refs[:1]}, matchNames(refs, "hOP"))
	require.Equal(t, SearchResult{Count: 0, Data: []EntityRef{}}, matchNames(refs, "jazz"))
}

func artistIDs(shows []ArtistShow) []uint {
	out := make([]uint, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.ArtistID)
	}
	return out
}
