package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedProviderResponse marks a payload missing a required structural block.
	ErrMalformedProviderResponse = errors.New("malformed provider response")

	// ErrProviderFailure is returned when the provider reports an error instead of data.
	ErrProviderFailure = errors.New("weather provider failure")

	// ErrLocationNotFound is returned when the provider does not know the requested place.
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidQuery is returned for queries with neither a city nor valid coordinates.
	ErrInvalidQuery = errors.New("invalid location query")
)

// MalformedResponseError names the block that was missing from the payload.
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: missing %q", ErrMalformedProviderResponse, e.Field)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedProviderResponse
}
