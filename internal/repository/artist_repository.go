// This file contains data access logic for Artist domain operations.
// Artists support the same lookups as venues except deletion, which the
// application does not expose for them.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"gigboard/internal/model"
)

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *gorm.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and assigns the generated ID back to the
// given struct.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every artist.  When no artists exist it returns an
// empty slice and nil error.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// SearchByName returns every artist whose name contains the given term,
// ignoring case. An empty term matches all artists. No ordering is applied.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	var artists []model.Artist
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// Update overwrites every column of the artist row identified by a.ID
// with the values in a.  Last write wins.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Save(a).Error
}
