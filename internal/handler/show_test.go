package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListShowsJoinsNames(t *testing.T) {
	app := newTestApp(t)
	v := app.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	a := app.seedArtist(t, "Guns N Petals")
	app.seedShow(t, a.ID, v.ID, time.Now().UTC().Add(24*time.Hour))

	c, rec := app.get("/shows", "")
	require.NoError(t, app.shows.ListShows(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Shows []showListEntry `json:"shows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Shows, 1)
	entry := body.Shows[0]
	assert.Equal(t, "The Musical Hop", entry.VenueName)
	assert.Equal(t, "Guns N Petals", entry.ArtistName)
	assert.NotEmpty(t, entry.ArtistImageLink)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, entry.StartTime)
}

func TestListShowsToleratesDeletedVenue(t *testing.T) {
	app := newTestApp(t)
	v := app.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	a := app.seedArtist(t, "Guns N Petals")
	now := time.Now().UTC()
	app.seedShow(t, a.ID, v.ID, now.Add(-24*time.Hour))
	require.NoError(t, app.venues.VenueRepo.Delete(t.Context(), v.ID, now))

	c, rec := app.get("/shows", "")
	require.NoError(t, app.shows.ListShows(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Shows []showListEntry `json:"shows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Shows, 1)
	// the past show survived the venue but its venue name is gone
	assert.Equal(t, v.ID, body.Shows[0].VenueID)
	assert.Empty(t, body.Shows[0].VenueName)
}

func TestCreateShowSuccess(t *testing.T) {
	app := newTestApp(t)
	v := app.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	a := app.seedArtist(t, "Guns N Petals")

	form := url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"2035-05-21 21:30:00"},
	}
	c, rec := app.postForm("/shows/create", form, "")
	require.NoError(t, app.shows.CreateShow(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Page    string `json:"page"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "home", body.Page)
	assert.Equal(t, "Show was successfully listed!", body.Message)

	all, err := app.shows.ShowRepo.ListAll(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].ArtistID)
	assert.Equal(t, v.ID, all[0].VenueID)
}

func TestCreateShowMalformedTimeFlashesFailure(t *testing.T) {
	app := newTestApp(t)
	app.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	app.seedArtist(t, "Guns N Petals")

	form := url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"next tuesday"},
	}
	c, rec := app.postForm("/shows/create", form, "")
	require.NoError(t, app.shows.CreateShow(c))
	// failure is a message, not an error status
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "An error occurred. Show could not be listed.", body.Message)

	all, err := app.shows.ShowRepo.ListAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNewShowFormEmpty(t *testing.T) {
	app := newTestApp(t)
	c, rec := app.get("/shows/create", "")
	require.NoError(t, app.shows.NewShowForm(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Form showForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Form.StartTime)
}
