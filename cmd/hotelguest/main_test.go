package main

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/apierror"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/guest"
)

// Denied-access errors carry their own sign-in guidance; rendering them
// through the generic mapping would replace it with a misleading fallback.
func TestRenderErrorKeepsAccessGuidance(t *testing.T) {
	denied := fmt.Errorf("%w; you must be signed in as the owner of this bookings to cancel it. Log in at https://hotel.test/login or use the link from your confirmation email",
		guest.ErrAccessDenied)
	got := renderError(denied)
	if !strings.Contains(got, "Log in at https://hotel.test/login") {
		t.Errorf("guidance lost: %q", got)
	}
	if strings.Contains(got, "Something went wrong") {
		t.Errorf("generic fallback leaked into %q", got)
	}
}

func TestRenderErrorKeepsOTPValidationMessage(t *testing.T) {
	if got := renderError(guest.ErrInvalidOTP); got != guest.ErrInvalidOTP.Error() {
		t.Errorf("got %q", got)
	}
}

func TestRenderErrorMapsBackendErrors(t *testing.T) {
	err := &apierror.Error{Status: http.StatusUnauthorized, Code: apierror.CodeUnauthorized}
	if got := renderError(err); got != "Your session has expired. Please log in again." {
		t.Errorf("got %q", got)
	}
	if got := renderError(fmt.Errorf("boom")); got != "Something went wrong. Please try again." {
		t.Errorf("got %q", got)
	}
}
