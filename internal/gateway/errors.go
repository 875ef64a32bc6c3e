package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	unknownErrorMessage   = "unknown error"
	transportErrorMessage = "could not reach the server"
)

var (
	// ErrUnauthorized is returned when the backend answers 401. By the time
	// it is returned the session has been cleared and the login route shown.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMissingToken is returned when a successful login carries no token.
	ErrMissingToken = errors.New("login response carried no access token")
)

// RequestError is a non-2xx, non-401 backend answer.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }

// TransportError means no response was obtained at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return transportErrorMessage }
func (e *TransportError) Unwrap() error { return e.Err }

func newRequestError(status int, body []byte) *RequestError {
	return &RequestError{StatusCode: status, Message: errorMessage(status, body)}
}

// errorMessage extracts the human-readable message of an error body.
func errorMessage(status int, body []byte) string {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return unknownErrorMessage
	}

	if envelope, ok := parsed.(map[string]any); ok {
		if msg := detailMessage(envelope["detail"]); msg != "" {
			return msg
		}
		for _, key := range []string{"error", "message"} {
			if msg, ok := envelope[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return fmt.Sprintf("Error %d", status)
}

// detailMessage reads a "detail" field, either a plain string or a list of
// validation entries each carrying a "msg".
func detailMessage(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case []any:
		var msgs []string
		for _, entry := range d {
			switch e := entry.(type) {
			case string:
				msgs = append(msgs, e)
			case map[string]any:
				if msg, ok := e["msg"].(string); ok && msg != "" {
					msgs = append(msgs, msg)
				}
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
