package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

// testApp bundles the handlers and their shared database for one test.
type testApp struct {
	db      *gorm.DB
	echo    *echo.Echo
	venues  *VenueHandler
	artists *ArtistHandler
	shows   *ShowHandler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Venue{}, &model.Artist{}, &model.Show{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)
	return &testApp{
		db:   db,
		echo: echo.New(),
		venues: &VenueHandler{
			VenueRepo: venueRepo, ArtistRepo: artistRepo, ShowRepo: showRepo, Log: log,
		},
		artists: &ArtistHandler{
			ArtistRepo: artistRepo, VenueRepo: venueRepo, ShowRepo: showRepo, Log: log,
		},
		shows: &ShowHandler{
			ShowRepo: showRepo, ArtistRepo: artistRepo, VenueRepo: venueRepo, Log: log,
		},
	}
}

// get builds an echo context for a GET request; id, when non-empty, is
// bound as the :id path parameter.
func (a *testApp) get(path, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := a.echo.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

// postForm builds an echo context for a form-encoded POST request.
func (a *testApp) postForm(path string, form url.Values, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := a.echo.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func (a *testApp) seedVenue(t *testing.T, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{
		Name: name, City: city, State: state,
		Address: "1 Main St",
		Genres:  model.GenreList{"Jazz"},
	}
	require.NoError(t, a.venues.VenueRepo.Create(t.Context(), v))
	return v
}

func (a *testApp) seedArtist(t *testing.T, name string) *model.Artist {
	t.Helper()
	artist := &model.Artist{
		Name: name, City: "San Francisco", State: "CA",
		Phone:     "326-123-5000",
		Genres:    model.GenreList{"Rock n Roll"},
		ImageLink: "https://example.com/" + url.PathEscape(name) + ".jpg",
	}
	require.NoError(t, a.artists.ArtistRepo.Create(t.Context(), artist))
	return artist
}

func (a *testApp) seedShow(t *testing.T, artistID, venueID uint64, start time.Time) *model.Show {
	t.Helper()
	s := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}
	require.NoError(t, a.shows.ShowRepo.Create(t.Context(), s))
	return s
}
