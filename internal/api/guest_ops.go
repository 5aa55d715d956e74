package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/apierror"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

// GuestOps implements the guest-token OTP operations shared by every
// guest-capable resource (bookings, feedback, housekeeping and service
// requests). Implements guest.API.
type GuestOps struct {
	http *httpclient.Client
}

func NewGuestOps(http *httpclient.Client) *GuestOps {
	return &GuestOps{http: http}
}

func (g *GuestOps) RequestOTP(ctx context.Context, resource string, id int64, guestToken string) error {
	return g.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPost,
		Path:       fmt.Sprintf("/api/%s/%d/request-otp", resource, id),
		GuestToken: guestToken,
	}, nil)
}

// VerifyOTP distinguishes "wrong code" (false, nil — the entry UI stays
// open) from transport failures. Code expiry and attempt limits are backend
// policy; the client has no opinion.
func (g *GuestOps) VerifyOTP(ctx context.Context, resource string, id int64, guestToken, code string) (bool, error) {
	err := g.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPost,
		Path:       fmt.Sprintf("/api/%s/%d/verify-otp", resource, id),
		Query:      url.Values{"otp": {code}},
		GuestToken: guestToken,
	}, nil)
	if err == nil {
		return true, nil
	}

	var apiErr *apierror.Error
	if errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest) {
		return false, nil
	}
	return false, err
}

func (g *GuestOps) OTPStatus(ctx context.Context, resource string, id int64, guestToken string) (bool, error) {
	var verified bool
	err := g.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/api/%s/%d/otp-status", resource, id),
		GuestToken: guestToken,
	}, &verified)
	if err != nil {
		return false, err
	}
	return verified, nil
}
