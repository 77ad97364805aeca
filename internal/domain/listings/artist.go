package listings

import (
	"time"

	"gorm.io/datatypes"
)

type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string                      `gorm:"not null;index" json:"name"`
	Genres datatypes.JSONSlice[string] `gorm:"not null" json:"genres"`

	City  string `gorm:"not null" json:"city"`
	State string `gorm:"not null" json:"state"`

	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
	FacebookLink string `gorm:"column:facebook_link" json:"facebook_link,omitempty"`
	ImageLink    string `gorm:"column:image_link" json:"image_link,omitempty"`

	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description,omitempty"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
