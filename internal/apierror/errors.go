package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a failed backend response, decoded from the API's structured
// JSON error shape.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Common error codes returned by the backend
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeRateLimit     = "RATE_LIMIT_EXCEEDED"
	CodeInternalError = "INTERNAL_ERROR"
	CodeExpiredToken  = "EXPIRED_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
)

// FromResponse builds an Error from a non-2xx response body. Bodies that are
// not the structured shape (proxies, crashes) fall back to the raw text.
func FromResponse(status int, body []byte) *Error {
	e := &Error{Status: status}
	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
	}
	return e
}

func statusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsTransient reports whether the failure is worth a manual retry: network
// errors and 5xx responses. Credential and validation failures are not.
func IsTransient(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Status >= 500
	}
	// Anything that never reached the backend (dial, timeout) is transient.
	return err != nil
}

// UserMessage converts any failure into a single human-readable line for the
// UI layer; raw transport errors are not shown to users.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		switch e.Status {
		case http.StatusUnauthorized:
			return "Your session has expired. Please log in again."
		case http.StatusForbidden:
			return "You do not have permission to perform this action."
		case http.StatusNotFound:
			return "Resource not found."
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return "Something went wrong. Please try again."
}
