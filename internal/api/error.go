package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx HTTP response mapped to a typed error. The message
// comes from the server body when it provides one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// errorBody covers the message shapes the backend serves.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeError(status int, data []byte) error {
	var body errorBody
	msg := ""
	if json.Unmarshal(data, &body) == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	if msg == "" && len(data) > 0 && len(data) < 200 && !strings.HasPrefix(strings.TrimSpace(string(data)), "<") {
		msg = strings.TrimSpace(string(data))
	}
	return &Error{Status: status, Message: msg}
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an HTTP 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
