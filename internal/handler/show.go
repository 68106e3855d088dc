// This file defines handlers for the show listing and the show creation
// form. Shows are insert-only; there is no detail, edit or delete route.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

// ShowHandler aggregates the repositories needed by the show routes.
type ShowHandler struct {
	ShowRepo   *repository.ShowRepo
	ArtistRepo *repository.ArtistRepo
	VenueRepo  *repository.VenueRepo
	Log        *logrus.Logger
}

// showListEntry is one show on the listing page, joined to its venue and
// artist.
type showListEntry struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// showForm is the field set of the show creation form.
type showForm struct {
	ArtistID  string `json:"artist_id"`
	VenueID   string `json:"venue_id"`
	StartTime string `json:"start_time"`
}

// ListShows handles GET /shows.  Every show is returned, unsorted and
// unpaginated, joined to venue and artist display fields.  A show whose
// venue was deleted keeps an empty venue name.
func (h *ShowHandler) ListShows(c echo.Context) error {
	ctx := c.Request().Context()
	shows, err := h.ShowRepo.ListAll(ctx)
	if err != nil {
		h.Log.WithError(err).Error("list shows failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	entries := make([]showListEntry, 0, len(shows))
	for _, s := range shows {
		entry := showListEntry{
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: s.StartTime.Format(timeLayout),
		}
		artist, err := h.ArtistRepo.GetByID(ctx, s.ArtistID)
		if err != nil {
			h.Log.WithError(err).Error("join show artist failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		entry.ArtistName = artist.Name
		entry.ArtistImageLink = artist.ImageLink

		venue, err := h.VenueRepo.GetByID(ctx, s.VenueID)
		if err != nil && !errors.Is(err, repository.ErrVenueNotFound) {
			h.Log.WithError(err).Error("join show venue failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if err == nil {
			entry.VenueName = venue.Name
		}
		entries = append(entries, entry)
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": entries})
}

// NewShowForm handles GET /shows/create and returns the empty form.
func (h *ShowHandler) NewShowForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"form": showForm{}})
}

// CreateShow handles POST /shows/create.  artist_id, venue_id and
// start_time are taken verbatim from the form; a malformed timestamp or an
// id that parses but references nothing surfaces only as the generic
// failure flash, and the response lands on the home page either way.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	ctx := c.Request().Context()

	artistID, aerr := strconv.ParseUint(c.FormValue("artist_id"), 10, 64)
	venueID, verr := strconv.ParseUint(c.FormValue("venue_id"), 10, 64)
	startTime, terr := time.ParseInLocation(timeLayout, c.FormValue("start_time"), time.UTC)
	if aerr != nil || verr != nil || terr != nil {
		return c.JSON(http.StatusOK, echo.Map{
			"page":    "home",
			"message": "An error occurred. Show could not be listed.",
		})
	}

	s := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}
	if err := h.ShowRepo.Create(ctx, s); err != nil {
		h.Log.WithError(err).Error("create show failed")
		return c.JSON(http.StatusOK, echo.Map{
			"page":    "home",
			"message": "An error occurred. Show could not be listed.",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "home",
		"message": "Show was successfully listed!",
	})
}
