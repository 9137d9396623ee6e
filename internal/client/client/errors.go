package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is a response with a non-success status.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request rejected (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request rejected (%d)", e.Status)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// ServerMessage returns the server-supplied message carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message, true
	}
	return "", false
}
