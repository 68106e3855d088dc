package handler

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4"
)

// Home serves the site index.  Several write handlers land back here after
// a submission, so the payload keeps the same shape they produce: a page
// marker plus an optional flash message.
func Home(c echo.Context) error {
	if msg := takeFlash(c); msg != "" {
		return c.JSON(http.StatusOK, echo.Map{"page": "home", "message": msg})
	}
	return c.JSON(http.StatusOK, echo.Map{"page": "home"})
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
