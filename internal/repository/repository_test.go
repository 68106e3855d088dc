package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gigboard/internal/model"
)

// openTestDB opens a per-test in-memory sqlite database with the real
// schema. Shared cache keeps the database alive across the connections of
// GORM's pool; the test name keeps databases isolated from each other.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Venue{}, &model.Artist{}, &model.Show{}))
	return db
}

func seedVenue(t *testing.T, db *gorm.DB, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1 Main St",
		Genres:  model.GenreList{"Jazz"},
	}
	require.NoError(t, NewVenueRepo(db).Create(t.Context(), v))
	return v
}

func seedArtist(t *testing.T, db *gorm.DB, name string) *model.Artist {
	t.Helper()
	a := &model.Artist{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: model.GenreList{"Rock n Roll"},
	}
	require.NoError(t, NewArtistRepo(db).Create(t.Context(), a))
	return a
}
