package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIURL is returned if the relay API URL cannot be parsed.
	ErrInvalidAPIURL = errors.New("failed to parse api url")

	// ErrTrailingSlash is returned if the relay API URL ends with a slash.
	ErrTrailingSlash = errors.New("api url must not have a trailing slash")
)

// ResponseError is returned for any non-2xx response. Body holds the raw response text.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("HTTP error response: %d / %s", e.StatusCode, e.Body)
}

// DeserializationError is returned when a response body does not match the expected shape.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize response: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
