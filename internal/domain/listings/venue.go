package listings

import (
	"time"

	"gorm.io/datatypes"
)

type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string                      `gorm:"not null;index" json:"name"`
	Genres datatypes.JSONSlice[string] `gorm:"not null" json:"genres"`

	City    string `gorm:"not null;index:idx_venues_location,priority:1" json:"city"`
	State   string `gorm:"not null;index:idx_venues_location,priority:2" json:"state"`
	Address string `gorm:"not null" json:"address"`

	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
	FacebookLink string `gorm:"column:facebook_link" json:"facebook_link,omitempty"`
	ImageLink    string `gorm:"column:image_link" json:"image_link,omitempty"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description,omitempty"`

	// Shows keep a venue alive: a venue that still hosts shows cannot be deleted.
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
