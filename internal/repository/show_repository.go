// This file contains data access logic for Show domain operations. A show
// ties one artist to one venue at one start time. Shows are insert-only:
// nothing in the application edits or deletes an individual show (venue
// deletion removes a venue's future shows as part of its own transaction).
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gigboard/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *gorm.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show. The referenced artist and venue ids are taken
// as given; a dangling reference surfaces as a write failure at most, never
// as a validation step here.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ListAll returns every show.  When no shows exist it returns an empty
// slice and nil error.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.WithContext(ctx).Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

// ListByVenue returns every show hosted by the given venue, upcoming and
// past alike; the caller partitions them against its own clock.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error) {
	var shows []model.Show
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// ListByArtist returns every show performed by the given artist.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error) {
	var shows []model.Show
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// CountUpcomingByVenue counts the venue's shows that start strictly after
// now.
func (r *ShowRepo) CountUpcomingByVenue(ctx context.Context, venueID uint64, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, now).
		Count(&n).Error
	return n, err
}

// CountUpcomingByArtist counts the artist's shows that start strictly
// after now.
func (r *ShowRepo) CountUpcomingByArtist(ctx context.Context, artistID uint64, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Show{}).
		Where("artist_id = ? AND start_time > ?", artistID, now).
		Count(&n).Error
	return n, err
}
