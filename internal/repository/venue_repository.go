// This file contains data access logic for Venue domain operations. Venues
// are grouped by (city, state) on the listing page and searched by a
// case-insensitive substring of their name. Deleting a venue removes only
// its future shows; past shows are kept as history.
package repository

import (
	"context" // context for controlling query lifetime
	"errors"  // errors for sentinel comparison
	"strings" // strings lowercases search terms
	"time"    // time carries the per-request clock into delete

	"gorm.io/gorm" // gorm is the ORM used for all persistence

	"gigboard/internal/model"
)

// CityState is one (city, state) pair from the venues table.  The venue
// listing is grouped by these pairs.
type CityState struct {
	City  string
	State string
}

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *gorm.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue and assigns the generated ID back to the
// given struct.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// GetByID retrieves a venue by its ID.  It returns ErrVenueNotFound if
// there is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListCityStates returns the distinct (city, state) pairs present in the
// venues table.  When the table is empty it returns an empty slice and
// nil error.
func (r *VenueRepo) ListCityStates(ctx context.Context) ([]CityState, error) {
	var pairs []CityState
	err := r.db.WithContext(ctx).
		Model(&model.Venue{}).
		Select("city, state").
		Group("city, state").
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// ListByCityState returns every venue located in the given city and state.
func (r *VenueRepo) ListByCityState(ctx context.Context, city, state string) ([]model.Venue, error) {
	var venues []model.Venue
	err := r.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByName returns every venue whose name contains the given term,
// ignoring case. An empty term matches all venues. No ordering is applied.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	var venues []model.Venue
	// LOWER(...) LIKE keeps the query portable between postgres and the
	// sqlite test driver (ILIKE is postgres-only).
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// Update overwrites every column of the venue row identified by v.ID with
// the values in v.  Last write wins; there is no concurrency token.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// Delete removes the venue and its shows that start after now. Shows that
// already started keep their rows (and their venue_id) as history. The
// whole operation runs in one transaction so a failure leaves both tables
// untouched.
func (r *VenueRepo) Delete(ctx context.Context, id uint64, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v model.Venue
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		if err := tx.
			Where("venue_id = ? AND start_time > ?", id, now).
			Delete(&model.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&v).Error
	})
}
