package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"gigboard/internal/handler" // import the handlers that implement the page logic
)

// RegisterRoutes registers the site-level routes on the provided Echo
// instance: the home page and a health check for load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)
}

// RegisterVenues registers every venue route.  The listing, search and
// detail pages are reads; create, edit and delete follow the site's
// flash-then-navigate convention.
func RegisterVenues(e *echo.Echo, h *handler.VenueHandler) {
	// Grouped venue listing
	e.GET("/venues", h.ListVenues)
	// Case-insensitive name search (form field: search_term)
	e.POST("/venues/search", h.SearchVenues)
	// Empty creation form; registered before /venues/:id so the literal
	// segment is not swallowed by the id parameter
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue)
	// Venue detail with past/upcoming shows
	e.GET("/venues/:id", h.GetVenue)
	// Delete the venue and its future shows
	e.DELETE("/venues/:id", h.DeleteVenue)
	// Edit form pre-populated from the row, and its submission
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.EditVenue)
}

// RegisterArtists registers every artist route.  Artists have no delete
// endpoint.
func RegisterArtists(e *echo.Echo, h *handler.ArtistHandler) {
	e.GET("/artists", h.ListArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist)
	e.GET("/artists/:id", h.GetArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.EditArtist)
}

// RegisterShows registers the show listing and creation routes.  Shows are
// insert-only.
func RegisterShows(e *echo.Echo, h *handler.ShowHandler) {
	e.GET("/shows", h.ListShows)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow)
}
