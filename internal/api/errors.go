package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Generic user-facing fallback used when the server gives no message of its
// own. Transport failures are reported with the same text so the two are
// indistinguishable to the end user.
const genericFailure = "request failed"

// Error is a normalized non-2xx response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// errorBody is the shape servers use for rejection payloads. Different
// endpoints use different keys; the first non-empty one wins.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Detail  string `json:"detail"`
}

// newError extracts a server-provided message from body, falling back to a
// generic string.
func newError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, m := range []string{eb.Message, eb.Err, eb.Detail} {
			if m != "" {
				return &Error{Status: status, Message: m}
			}
		}
	}
	return &Error{Status: status, Message: genericFailure}
}

// UserMessage returns the text to surface for err: the server-provided
// message when there is one, fallback otherwise.
func UserMessage(err error, fallback string) string {
	if fallback == "" {
		fallback = genericFailure
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != genericFailure {
		return apiErr.Message
	}
	return fallback
}
