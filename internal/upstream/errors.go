package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps transport-level failures: DNS, refused connections,
// timeouts.  Handlers translate it into a 502 with a generic message.
var ErrUnreachable = errors.New("upstream unreachable")

// APIError is a non-2xx response from the upstream API.  Message carries the
// server-provided "message" or "error" field when the body had one, so the
// operator sees the real reason instead of a generic failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}

// NotFound reports whether the error is an upstream 404.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else {
			msg = payload.Error
		}
	}
	return &APIError{Status: status, Message: msg}
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
