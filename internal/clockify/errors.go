package clockify

import (
	"errors"
	"fmt"
)

// Error sources, used as the prefix of every APIError message.
const (
	SourceAPI     = "Clockify API"
	SourceReports = "Clockify Reports API"
)

// ErrMissingAPIKey is the cause of the configuration error returned by New
// when no API key is supplied.
var ErrMissingAPIKey = errors.New("missing API key")

// APIError is the single normalized failure shape for every remote call.
// StatusCode is zero when no response was received; Cause then holds the
// transport error.
type APIError struct {
	Source     string
	StatusCode int
	Message    string
	Cause      error
}

// Error renders "<Source> Error: <status> - <message>" for HTTP failures and
// "<Source> Error: <cause>" for transport failures.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s Error: %d - %s", e.Source, e.StatusCode, e.Message)
	}
	msg := e.Message
	if e.Cause != nil {
		msg = e.Cause.Error()
	}
	return fmt.Sprintf("%s Error: %s", e.Source, msg)
}

// Unwrap returns the transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// StatusCodeOf returns the HTTP status carried by an *APIError in err's
// chain, or 0.
func StatusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
