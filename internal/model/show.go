package model

import "time"

// Show links one artist to one venue at one start time.  A show is a
// pure association row: it is created once and never edited or deleted
// on its own.  Whether a show is "upcoming" or "past" is not stored –
// it is derived at read time by comparing StartTime to the clock of
// the current request.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – artist performing the show.
//  VenueID   – venue hosting the show.
//  StartTime – when the show begins (UTC).
type Show struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	ArtistID  uint64    `json:"artist_id" gorm:"not null"`
	VenueID   uint64    `json:"venue_id" gorm:"not null"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
}

func (Show) TableName() string {
	return "shows"
}
