package model

// Venue represents a location that can host shows.  Each venue keeps
// its contact and booking details plus a list of genre tags.  This
// struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – location used for grouping on the venue listing.
//  Address            – street address.
//  Phone              – free-text phone number (no format enforced).
//  ImageLink          – URL of the venue image.
//  FacebookLink       – URL of the venue's Facebook page.
//  WebsiteLink        – URL of the venue's own website.
//  Genres             – ordered list of genre tags.
//  SeekingTalent      – whether the venue is currently looking for artists.
//  SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 uint64    `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:255;not null"`
	City               string    `json:"city" gorm:"size:120;not null"`
	State              string    `json:"state" gorm:"size:120;not null"`
	Address            string    `json:"address" gorm:"size:120;not null"`
	Phone              string    `json:"phone" gorm:"size:120"`
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:120"`
	WebsiteLink        string    `json:"website_link" gorm:"size:120"`
	Genres             GenreList `json:"genres" gorm:"type:text;not null"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" gorm:"type:text"`
	Shows              []Show    `json:"-" gorm:"foreignKey:VenueID"`
}

func (Venue) TableName() string {
	return "venues"
}
