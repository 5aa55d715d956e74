package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

// Resource path segments used by the guest OTP flow.
const (
	ResourceBookings     = "bookings"
	ResourceFeedback     = "feedback"
	ResourceHousekeeping = "housekeeping"
	ResourceServices     = "service-requests"
)

// BookingsClient covers both access modes: staff and owners call with the
// bearer token (guestToken empty), anonymous guests pass their mailed token.
type BookingsClient struct {
	http *httpclient.Client
}

func NewBookingsClient(http *httpclient.Client) *BookingsClient {
	return &BookingsClient{http: http}
}

func (c *BookingsClient) Get(ctx context.Context, id int64, guestToken string) (*domain.Booking, error) {
	var out domain.Booking
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/api/bookings/%d", id),
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookingsClient) List(ctx context.Context, opts domain.BookingListOptions) ([]domain.Booking, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Booking
	if err := c.http.Get(ctx, "/api/bookings", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookingsClient) Update(ctx context.Context, id int64, req *domain.BookingUpdateRequest, guestToken string) (*domain.Booking, error) {
	var out domain.Booking
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/api/bookings/%d", id),
		Body:       req,
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookingsClient) Cancel(ctx context.Context, id int64, guestToken string) error {
	return c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPost,
		Path:       fmt.Sprintf("/api/bookings/%d/cancel", id),
		GuestToken: guestToken,
	}, nil)
}
