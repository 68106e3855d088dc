// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish a missing row from a real database failure.
// Handlers translate the not-found sentinels into HTTP 404 responses;
// every other repository error is treated as a generic database error.
package repository

import "errors"

// ErrVenueNotFound indicates that a venue was not located in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound indicates that an artist was not located in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")
