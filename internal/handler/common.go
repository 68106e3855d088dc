// Package handler exposes the HTTP handlers for the booking board. Each
// handler reads form or path input, runs one or more repository queries and
// assembles the page payload the route contract promises. Write handlers
// follow the site's flash convention: the response always carries a normal
// status, and success or failure is reported through a transient message.
package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// timeLayout is the fixed serialization format for show start times.
const timeLayout = "2006-01-02 15:04:05"

// flashPage is the payload of every create/edit submission: Message is the
// transient notification and Redirect is where the client should navigate
// next. Failed writes still produce a 200 with a failure message, never an
// error status.
type flashPage struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func flash(c echo.Context, message, redirect string) error {
	return c.JSON(http.StatusOK, flashPage{Message: message, Redirect: redirect})
}

// searchItem is one row of a name-search result.
type searchItem struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// searchResults is the shared contract of the venue and artist search
// endpoints.  Data keeps whatever order the query returned.
type searchResults struct {
	Count      int          `json:"count"`
	Data       []searchItem `json:"data"`
	SearchTerm string       `json:"search_term"`
}

// missingField returns the first required key absent from the submission,
// or "" when all are present. An omitted required field is a write failure
// (the column is NOT NULL); a present-but-empty value is stored verbatim.
func missingField(c echo.Context, keys []string) string {
	params, err := c.FormParams()
	if err != nil {
		return keys[0]
	}
	for _, k := range keys {
		if !params.Has(k) {
			return k
		}
	}
	return ""
}

// flashCookie carries a one-shot notification across a redirect, the way
// the original site's session flash did. The home page consumes it.
const flashCookie = "flash"

func setFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: url.QueryEscape(message), Path: "/"})
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c echo.Context) string {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return ""
	}
	msg, err := url.QueryUnescape(ck.Value)
	if err != nil {
		msg = ""
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	return msg
}

// formBool reads a checkbox-style field: a submitted truthy value means
// true, anything else – including an absent field – means false.
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}
