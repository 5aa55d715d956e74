package apierror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/apierror"
)

func TestFromResponseDecodesStructuredBody(t *testing.T) {
	err := apierror.FromResponse(http.StatusForbidden, []byte(`{"error":"Not your booking","code":"FORBIDDEN"}`))
	if err.Status != http.StatusForbidden || err.Code != apierror.CodeForbidden {
		t.Errorf("decoded %+v", err)
	}
	if err.Message != "Not your booking" {
		t.Errorf("message = %q", err.Message)
	}
}

func TestFromResponseFallsBackToRawBody(t *testing.T) {
	err := apierror.FromResponse(http.StatusBadGateway, []byte("upstream timeout"))
	if err.Message != "upstream timeout" {
		t.Errorf("message = %q", err.Message)
	}

	empty := apierror.FromResponse(http.StatusServiceUnavailable, nil)
	if empty.Message != http.StatusText(http.StatusServiceUnavailable) {
		t.Errorf("message = %q", empty.Message)
	}
}

func TestPredicates(t *testing.T) {
	unauthorized := apierror.FromResponse(http.StatusUnauthorized, nil)
	if !apierror.IsUnauthorized(unauthorized) || apierror.IsNotFound(unauthorized) {
		t.Error("predicate mismatch for 401")
	}

	wrapped := fmt.Errorf("fetch booking: %w", apierror.FromResponse(http.StatusNotFound, nil))
	if !apierror.IsNotFound(wrapped) {
		t.Error("predicates must see through wrapping")
	}

	if apierror.IsUnauthorized(nil) || apierror.IsUnauthorized(errors.New("plain")) {
		t.Error("non-API errors matched a status predicate")
	}
}

func TestIsTransient(t *testing.T) {
	if !apierror.IsTransient(apierror.FromResponse(http.StatusBadGateway, nil)) {
		t.Error("5xx should be transient")
	}
	if apierror.IsTransient(apierror.FromResponse(http.StatusForbidden, nil)) {
		t.Error("403 is not transient")
	}
	if !apierror.IsTransient(errors.New("dial tcp: connection refused")) {
		t.Error("network errors are transient")
	}
	if apierror.IsTransient(nil) {
		t.Error("nil is not an error")
	}
}

func TestUserMessageNeverExposesInternals(t *testing.T) {
	cases := map[error]string{
		apierror.FromResponse(http.StatusUnauthorized, nil): "Your session has expired. Please log in again.",
		apierror.FromResponse(http.StatusForbidden, nil):    "You do not have permission to perform this action.",
		apierror.FromResponse(http.StatusNotFound, nil):     "Resource not found.",
		errors.New("read tcp 10.0.0.1: i/o timeout"):        "Something went wrong. Please try again.",
	}
	for err, want := range cases {
		if got := apierror.UserMessage(err); got != want {
			t.Errorf("UserMessage(%v) = %q, want %q", err, got, want)
		}
	}
}
