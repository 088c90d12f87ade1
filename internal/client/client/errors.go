package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrServer             = errors.New("server error")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// APIError is a non-2xx response. Kind is one of the sentinels above, or nil
// for statuses without a dedicated sentinel; errors.Is matches against it.
type APIError struct {
	Status  int
	Code    string
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	prefix := fmt.Sprintf("status %d", e.Status)
	if e.Kind != nil {
		prefix = e.Kind.Error()
	}
	if e.Message == "" {
		return prefix
	}
	return prefix + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// kindForStatus maps a status code to its sentinel. Only 401, 403 and 500
// get one.
func kindForStatus(status int) error {
	switch status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 500:
		return ErrServer
	default:
		return nil
	}
}
