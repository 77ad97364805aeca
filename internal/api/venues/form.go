package venues

import "fyyur/internal/domain/listings"

var venueFields = []string{
	"name", "genres", "city", "state", "address", "phone",
	"website", "facebook_link", "image_link", "seeking_talent", "seeking_description",
}

type venueForm struct {
	Name               string   `form:"name"`
	Genres             []string `form:"genres"`
	City               string   `form:"city"`
	State              string   `form:"state" binding:"omitempty,len=2"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Website            string   `form:"website" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f venueForm) venue() listings.Venue {
	return listings.Venue{
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}
