// This file defines handlers for the artist pages. Artists mirror the
// venue routes except that the listing is flat (no grouping) and there is
// no delete endpoint.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

// ArtistHandler aggregates the repositories needed by the artist routes.
// VenueRepo is required because the artist detail page joins each show to
// the hosting venue's name and image.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo
	VenueRepo  *repository.VenueRepo
	ShowRepo   *repository.ShowRepo
	Log        *logrus.Logger
}

// artistListItem is one artist on the flat listing page.
type artistListItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// artistShowEntry is one show on the artist detail page, joined to the
// hosting venue.
type artistShowEntry struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// artistPage is the artist detail payload.
type artistPage struct {
	ID                 uint64            `json:"id"`
	Name               string            `json:"name"`
	Genres             model.GenreList   `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []artistShowEntry `json:"past_shows"`
	UpcomingShows      []artistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// artistForm is the field set shared by the create and edit forms.
type artistForm struct {
	Name               string          `json:"name"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Genres             model.GenreList `json:"genres"`
	ImageLink          string          `json:"image_link"`
	FacebookLink       string          `json:"facebook_link"`
	WebsiteLink        string          `json:"website_link"`
	SeekingVenue       bool            `json:"seeking_venue"`
	SeekingDescription string          `json:"seeking_description"`
}

// artistRequiredFields are the form keys an artist submission cannot omit;
// they back the NOT NULL columns of the artists table.
var artistRequiredFields = []string{"name", "city", "state", "phone"}

// artistFromForm builds an Artist from the submitted form fields, with the
// same verbatim-field and checkbox conventions as venues.
func artistFromForm(c echo.Context) *model.Artist {
	genres := model.GenreList{}
	if params, err := c.FormParams(); err == nil && len(params["genres"]) > 0 {
		genres = model.GenreList(params["genres"])
	}
	return &model.Artist{
		Name:               c.FormValue("name"),
		City:               c.FormValue("city"),
		State:              c.FormValue("state"),
		Phone:              c.FormValue("phone"),
		Genres:             genres,
		ImageLink:          c.FormValue("image_link"),
		FacebookLink:       c.FormValue("facebook_link"),
		WebsiteLink:        c.FormValue("website_link"),
		SeekingVenue:       formBool(c.FormValue("seeking_venue")),
		SeekingDescription: c.FormValue("seeking_description"),
	}
}

// ListArtists handles GET /artists and returns the flat id/name listing.
func (h *ArtistHandler) ListArtists(c echo.Context) error {
	ctx := c.Request().Context()
	artists, err := h.ArtistRepo.ListAll(ctx)
	if err != nil {
		h.Log.WithError(err).Error("list artists failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]artistListItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, artistListItem{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": items})
}

// SearchArtists handles POST /artists/search with the same contract as the
// venue search.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()
	term := c.FormValue("search_term")

	artists, err := h.ArtistRepo.SearchByName(ctx, term)
	if err != nil {
		h.Log.WithError(err).Error("artist search failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	results := searchResults{Count: len(artists), Data: make([]searchItem, 0, len(artists)), SearchTerm: term}
	for _, a := range artists {
		n, err := h.ShowRepo.CountUpcomingByArtist(ctx, a.ID, now)
		if err != nil {
			h.Log.WithError(err).Error("count upcoming shows failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		results.Data = append(results.Data, searchItem{ID: a.ID, Name: a.Name, NumUpcomingShows: n})
	}
	return c.JSON(http.StatusOK, results)
}

// GetArtist handles GET /artists/:id.  The artist's shows are joined to
// their venues and partitioned into past and upcoming against the request
// clock.
func (h *ArtistHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		h.Log.WithError(err).Error("get artist failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	page := artistPage{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          []artistShowEntry{},
		UpcomingShows:      []artistShowEntry{},
	}

	shows, err := h.ShowRepo.ListByArtist(ctx, id)
	if err != nil {
		h.Log.WithError(err).Error("list artist shows failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	for _, s := range shows {
		entry := artistShowEntry{
			VenueID:   s.VenueID,
			StartTime: s.StartTime.Format(timeLayout),
		}
		// A past show can outlive its venue (venue deletion keeps history),
		// so a missing venue row leaves the name and image empty.
		venue, err := h.VenueRepo.GetByID(ctx, s.VenueID)
		if err != nil && !errors.Is(err, repository.ErrVenueNotFound) {
			h.Log.WithError(err).Error("join show venue failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if err == nil {
			entry.VenueName = venue.Name
			entry.VenueImageLink = venue.ImageLink
		}
		if s.StartTime.After(now) {
			page.UpcomingShows = append(page.UpcomingShows, entry)
		} else {
			page.PastShows = append(page.PastShows, entry)
		}
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return c.JSON(http.StatusOK, page)
}

// NewArtistForm handles GET /artists/create and returns the empty form.
func (h *ArtistHandler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"form": artistForm{Genres: model.GenreList{}}})
}

// CreateArtist handles POST /artists/create.  Unlike venues, a submission
// lands back on the home page rather than the artist listing; the original
// site behaved this way and clients rely on it.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	ctx := c.Request().Context()
	if f := missingField(c, artistRequiredFields); f != "" {
		h.Log.WithField("field", f).Warn("artist submission missing required field")
		return c.JSON(http.StatusOK, echo.Map{
			"page":    "home",
			"message": "An error occurred. Artist " + c.FormValue("name") + " could not be listed.",
		})
	}
	a := artistFromForm(c)
	if err := h.ArtistRepo.Create(ctx, a); err != nil {
		h.Log.WithError(err).Error("create artist failed")
		return c.JSON(http.StatusOK, echo.Map{
			"page":    "home",
			"message": "An error occurred. Artist " + a.Name + " could not be listed.",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "home",
		"message": "Artist " + a.Name + " was successfully listed!",
	})
}

// EditArtistForm handles GET /artists/:id/edit and returns the form
// pre-populated from the stored row.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		h.Log.WithError(err).Error("get artist failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	form := artistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
	return c.JSON(http.StatusOK, echo.Map{
		"form":   form,
		"artist": echo.Map{"id": a.ID, "name": a.Name},
	})
}

// EditArtist handles POST /artists/:id/edit.  Every editable field is
// overwritten from the submission and the client is sent back to the
// artist detail page whether the update succeeded or not.
func (h *ArtistHandler) EditArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		h.Log.WithError(err).Error("get artist failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	detail := fmt.Sprintf("/artists/%d", a.ID)
	if f := missingField(c, artistRequiredFields); f != "" {
		h.Log.WithField("field", f).Warn("artist submission missing required field")
		return flash(c, "Opps! Artist "+c.FormValue("name")+" details not updated successfully.", detail)
	}
	sub := artistFromForm(c)
	sub.ID = a.ID
	if err := h.ArtistRepo.Update(ctx, sub); err != nil {
		h.Log.WithError(err).Error("update artist failed")
		return flash(c, "Opps! Artist "+sub.Name+" details not updated successfully.", detail)
	}
	return flash(c, "Artist "+sub.Name+" details updated successfully.", detail)
}
