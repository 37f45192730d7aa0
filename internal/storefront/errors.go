package storefront

import "errors"

// Error kinds surfaced to the shopper. The API client maps HTTP status codes onto them.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrTransport    = errors.New("transport error")

	// ErrLoadInFlight is returned when a scroll trigger fires while a page is loading
	ErrLoadInFlight = errors.New("catalog page load already in flight")
	// ErrSuperseded is returned when the filter changed before a queued load could run
	// or while its result was on the wire
	ErrSuperseded = errors.New("catalog load superseded by filter change")
)
