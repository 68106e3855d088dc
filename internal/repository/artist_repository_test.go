package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigboard/internal/model"
)

func TestArtistSearchCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	repo := NewArtistRepo(db)
	seedArtist(t, db, "Guns N Petals")
	seedArtist(t, db, "The Wild Sax Band")

	got, err := repo.SearchByName(t.Context(), "band")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Wild Sax Band", got[0].Name)

	got, err = repo.SearchByName(t.Context(), "A")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestArtistGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := NewArtistRepo(db).GetByID(t.Context(), 42)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistUpdateLeavesOthersAlone(t *testing.T) {
	db := openTestDB(t)
	repo := NewArtistRepo(db)
	a := seedArtist(t, db, "Guns N Petals")
	b := seedArtist(t, db, "Matt Quevedo")

	a.Name = "Guns N Roses"
	a.Phone = "415-000-1234"
	a.Genres = model.GenreList{"Rock n Roll", "Punk"}
	a.SeekingVenue = true
	require.NoError(t, repo.Update(t.Context(), a))

	got, err := repo.GetByID(t.Context(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Roses", got.Name)
	assert.Equal(t, model.GenreList{"Rock n Roll", "Punk"}, got.Genres)
	assert.True(t, got.SeekingVenue)

	other, err := repo.GetByID(t.Context(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Matt Quevedo", other.Name)
	assert.False(t, other.SeekingVenue)
}

func TestArtistListAllEmpty(t *testing.T) {
	db := openTestDB(t)
	got, err := NewArtistRepo(db).ListAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got)
}
