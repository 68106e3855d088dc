package model

// Artist represents a performer that can be booked into shows.  The
// field set mirrors Venue except that artists carry no street address.
// Genres use the same ordered tag list as venues.  This struct
// corresponds to a row in the `artists` table.
type Artist struct {
	ID                 uint64    `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:255;not null"`
	City               string    `json:"city" gorm:"size:120;not null"`
	State              string    `json:"state" gorm:"size:120;not null"`
	Phone              string    `json:"phone" gorm:"size:120;not null"`
	Genres             GenreList `json:"genres" gorm:"type:text;not null"`
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:120"`
	WebsiteLink        string    `json:"website_link" gorm:"size:120"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" gorm:"type:text"`
	Shows              []Show    `json:"-" gorm:"foreignKey:ArtistID"`
}

func (Artist) TableName() string {
	return "artists"
}
