package backend

import (
	"errors"
	"net/http"
)

// StatusOf maps a client error to the status a view handler should answer
// with: the backend's own status for an APIError, 502 for transport errors.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
