package hotels

import "errors"

var (
	// ErrInvalidState is returned when a request is built from criteria
	// that are missing fields for the requested operation.
	ErrInvalidState = errors.New("hotels: search criteria incomplete for request")

	// ErrUnavailable is returned after the retry budget for a provider
	// call is exhausted.
	ErrUnavailable = errors.New("hotels: provider unavailable")

	// ErrMalformedPayload is returned when a provider response cannot be
	// decoded at all. Absent optional fields are not an error.
	ErrMalformedPayload = errors.New("hotels: malformed provider payload")
)
