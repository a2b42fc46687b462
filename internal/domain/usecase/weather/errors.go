package weather

import (
	"weather-widget/pkg/msg"
)

// ErrorKind identifies which step of a lookup failed
type ErrorKind string

const (
	ErrEmptyCity       ErrorKind = "EMPTY_CITY"
	ErrGeocodingFailed ErrorKind = "GEOCODING_FAILED"
	ErrCityNotFound    ErrorKind = "CITY_NOT_FOUND"
	ErrForecastFailed  ErrorKind = "FORECAST_FAILED"
)

var messageKeys = map[ErrorKind]string{
	ErrEmptyCity:       "weather.error.empty-city",
	ErrGeocodingFailed: "weather.error.geocoding-failed",
	ErrCityNotFound:    "weather.error.city-not-found",
	ErrForecastFailed:  "weather.error.forecast-failed",
}

// LookupError is the only error Lookup returns. Message is safe to show to
// the user; Err keeps the underlying cause for logs.
type LookupError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func newLookupError(kind ErrorKind, cause error) *LookupError {
	return &LookupError{Kind: kind, Message: msg.GetMessage(messageKeys[kind]), Err: cause}
}

func (e *LookupError) Error() string {
	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a LookupError of the same kind, so callers can
// write errors.Is(err, &LookupError{Kind: ErrCityNotFound}).
func (e *LookupError) Is(target error) bool {
	t, ok := target.(*LookupError)
	return ok && t.Kind == e.Kind
}
