package repository

import (
	"time"

	"fyyur/internal/domain/listings"
)

// ArtistShow is one show on a venue page, described by its artist.
type ArtistShow struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is one show on an artist page, described by its venue.
type VenueShow struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type VenueDetail struct {
	listings.Venue

	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	listings.Artist

	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// partition splits shows around now. A show starting exactly at now is
// upcoming. Both results are non-nil so they render as empty lists.
func partition[T any](shows []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past, upcoming = make([]T, 0), make([]T, 0)
	for _, s := range shows {
		if startOf(s).Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

func newVenueDetail(v listings.Venue, shows []ArtistShow, now time.Time) *VenueDetail {
	past, upcoming := partition(shows, func(s ArtistShow) time.Time { return s.StartTime }, now)
	return &VenueDetail{
		Venue:              v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func newArtistDetail(a listings.Artist, shows []VenueShow, now time.Time) *ArtistDetail {
	past, upcoming := partition(shows, func(s VenueShow) time.Time { return s.StartTime }, now)
	return &ArtistDetail{
		Artist:             a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
