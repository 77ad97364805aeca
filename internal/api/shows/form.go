package shows

import (
	"time"

	"fyyur/internal/domain/listings"
)

// startTimeLayout is what the show form expects in start_time, read in the
// server's local zone.
const startTimeLayout = "2006-01-02 15:04:05"

type showForm struct {
	ArtistID  uint      `form:"artist_id"`
	VenueID   uint      `form:"venue_id"`
	StartTime time.Time `form:"start_time" time_format:"2006-01-02 15:04:05"`
}

func (f showForm) show() listings.Show {
	return listings.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: f.StartTime}
}
