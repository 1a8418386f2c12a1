package api

import (
	"errors"
	"fmt"
)

// RequestError is a non-2xx response from the backend, carrying the HTTP
// status code and the response body text.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api request failed: %d %s", e.Status, e.Body)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not a
// RequestError.
func StatusOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}
	return 0
}
