package artists

import "fyyur/internal/domain/listings"

var artistFields = []string{
	"name", "genres", "city", "state", "phone",
	"website", "facebook_link", "image_link", "seeking_venue", "seeking_description",
}

type artistForm struct {
	Name               string   `form:"name"`
	Genres             []string `form:"genres"`
	City               string   `form:"city"`
	State              string   `form:"state" binding:"omitempty,len=2"`
	Phone              string   `form:"phone"`
	Website            string   `form:"website" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f artistForm) artist() listings.Artist {
	return listings.Artist{
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}
