package listings

import "time"

// Show links one venue and one artist at one point in time.
// (venue_id, artist_id, start_time) is not unique: duplicate listings are allowed.
type Show struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
