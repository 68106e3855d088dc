// This file defines handlers for the venue pages: the grouped listing,
// name search, the detail page with its past/upcoming split, and the
// create/edit/delete submissions.
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

// VenueHandler aggregates the repositories needed by the venue routes.
// ArtistRepo is required because the venue detail page joins each show to
// the performing artist's name and image.
type VenueHandler struct {
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	Log        *logrus.Logger
}

// venueListItem is one venue inside a city/state group or a search result.
type venueListItem struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// venueArea groups the venues of one (city, state) pair.
type venueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []venueListItem `json:"venues"`
}

// venueShowEntry is one show on the venue detail page, joined to the
// performing artist.
type venueShowEntry struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// venuePage is the venue detail payload.  Website intentionally drops the
// "_link" suffix; that is the page contract.
type venuePage struct {
	ID                 uint64           `json:"id"`
	Name               string           `json:"name"`
	Genres             model.GenreList  `json:"genres"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []venueShowEntry `json:"past_shows"`
	UpcomingShows      []venueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// venueForm is the field set shared by the create and edit forms.
type venueForm struct {
	Name               string          `json:"name"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	ImageLink          string          `json:"image_link"`
	Genres             model.GenreList `json:"genres"`
	FacebookLink       string          `json:"facebook_link"`
	WebsiteLink        string          `json:"website_link"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription string          `json:"seeking_description"`
}

// venueRequiredFields are the form keys a venue submission cannot omit;
// they back the NOT NULL columns of the venues table.
var venueRequiredFields = []string{"name", "city", "state", "address"}

// venueFromForm builds a Venue from the submitted form fields.  Values are
// taken verbatim (phone stays free text); the only interpretation is the
// checkbox convention for seeking_talent and the repeatable genres field.
func venueFromForm(c echo.Context) *model.Venue {
	genres := model.GenreList{}
	if params, err := c.FormParams(); err == nil && len(params["genres"]) > 0 {
		genres = model.GenreList(params["genres"])
	}
	return &model.Venue{
		Name:               c.FormValue("name"),
		City:               c.FormValue("city"),
		State:              c.FormValue("state"),
		Address:            c.FormValue("address"),
		Phone:              c.FormValue("phone"),
		ImageLink:          c.FormValue("image_link"),
		Genres:             genres,
		FacebookLink:       c.FormValue("facebook_link"),
		WebsiteLink:        c.FormValue("website_link"),
		SeekingTalent:      formBool(c.FormValue("seeking_talent")),
		SeekingDescription: c.FormValue("seeking_description"),
	}
}

// ListVenues handles GET /venues.  Venues are grouped by (city, state) and
// each venue carries the count of its shows starting after the current
// request's clock.  An empty table produces an empty areas list.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()

	pairs, err := h.VenueRepo.ListCityStates(ctx)
	if err != nil {
		h.Log.WithError(err).Error("list venue areas failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	areas := make([]venueArea, 0, len(pairs))
	for _, p := range pairs {
		venues, err := h.VenueRepo.ListByCityState(ctx, p.City, p.State)
		if err != nil {
			h.Log.WithError(err).Error("list venues by area failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		items := make([]venueListItem, 0, len(venues))
		for _, v := range venues {
			n, err := h.ShowRepo.CountUpcomingByVenue(ctx, v.ID, now)
			if err != nil {
				h.Log.WithError(err).Error("count upcoming shows failed")
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
			}
			items = append(items, venueListItem{ID: v.ID, Name: v.Name, NumUpcomingShows: n})
		}
		areas = append(areas, venueArea{City: p.City, State: p.State, Venues: items})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// SearchVenues handles POST /venues/search.  The single search_term field
// is matched case-insensitively against venue names; an empty term matches
// everything.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()
	term := c.FormValue("search_term")

	venues, err := h.VenueRepo.SearchByName(ctx, term)
	if err != nil {
		h.Log.WithError(err).Error("venue search failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	results := searchResults{Count: len(venues), Data: make([]searchItem, 0, len(venues)), SearchTerm: term}
	for _, v := range venues {
		n, err := h.ShowRepo.CountUpcomingByVenue(ctx, v.ID, now)
		if err != nil {
			h.Log.WithError(err).Error("count upcoming shows failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		results.Data = append(results.Data, searchItem{ID: v.ID, Name: v.Name, NumUpcomingShows: n})
	}
	return c.JSON(http.StatusOK, results)
}

// GetVenue handles GET /venues/:id.  The venue's shows are joined to their
// artists and partitioned into past and upcoming against the request clock.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		h.Log.WithError(err).Error("get venue failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	page := venuePage{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          []venueShowEntry{},
		UpcomingShows:      []venueShowEntry{},
	}

	shows, err := h.ShowRepo.ListByVenue(ctx, id)
	if err != nil {
		h.Log.WithError(err).Error("list venue shows failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	for _, s := range shows {
		artist, err := h.ArtistRepo.GetByID(ctx, s.ArtistID)
		if err != nil {
			h.Log.WithError(err).Error("join show artist failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		entry := venueShowEntry{
			ArtistID:        s.ArtistID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       s.StartTime.Format(timeLayout),
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

// NewVenueForm handles GET /venues/create and returns the empty form.
func (h *VenueHandler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"form": venueForm{Genres: model.GenreList{}}})
}

// CreateVenue handles POST /venues/create.  The row is inserted from the
// form verbatim; either outcome flashes a message naming the venue and
// sends the client back to the venue listing.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	ctx := c.Request().Context()
	if f := missingField(c, venueRequiredFields); f != "" {
		h.Log.WithField("field", f).Warn("venue submission missing required field")
		return flash(c, "An error occurred. Venue "+c.FormValue("name")+" could not be listed.", "/venues")
	}
	v := venueFromForm(c)
	if err := h.VenueRepo.Create(ctx, v); err != nil {
		h.Log.WithError(err).Error("create venue failed")
		return flash(c, "An error occurred. Venue "+v.Name+" could not be listed.", "/venues")
	}
	return flash(c, "Venue "+v.Name+" was successfully listed!", "/venues")
}

// EditVenueForm handles GET /venues/:id/edit and returns the form
// pre-populated from the stored row.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		h.Log.WithError(err).Error("get venue failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	form := venueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
	return c.JSON(http.StatusOK, echo.Map{
		"form":  form,
		"venue": echo.Map{"id": v.ID, "name": v.Name},
	})
}

// EditVenue handles POST /venues/:id/edit.  Every editable field is
// overwritten from the submission; last write wins.  The client is sent
// back to the venue detail page whether the update succeeded or not.
func (h *VenueHandler) EditVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		h.Log.WithError(err).Error("get venue failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	detail := fmt.Sprintf("/venues/%d", v.ID)
	if f := missingField(c, venueRequiredFields); f != "" {
		h.Log.WithField("field", f).Warn("venue submission missing required field")
		return flash(c, "Opps! Venue "+c.FormValue("name")+" details not updated successfully.", detail)
	}
	sub := venueFromForm(c)
	sub.ID = v.ID
	if err := h.VenueRepo.Update(ctx, sub); err != nil {
		h.Log.WithError(err).Error("update venue failed")
		return flash(c, "Opps! Venue "+sub.Name+" details not updated successfully.", detail)
	}
	return flash(c, "Venue "+sub.Name+" details updated successfully.", detail)
}

// DeleteVenue handles DELETE /venues/:id.  The venue and its future shows
// are removed in one transaction; past shows stay behind as history.  The
// route redirects to the site index either way.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(ctx, id, now); err != nil {
		h.Log.WithError(err).Warn("venue not deleted")
		setFlash(c, "Error!!! Venue not deleted, please try again.")
	} else {
		h.Log.WithField("venue_id", id).Info("venue deleted")
		setFlash(c, "Venue deleted successfully!")
	}
	return c.Redirect(http.StatusFound, "/")
}
