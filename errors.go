package selosign

import "fmt"

// APIError is returned when the service answers with a non-2xx status. The
// raw body is kept as-is; the service reports its own error documents in the
// same media type as successful responses.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Body)
}
