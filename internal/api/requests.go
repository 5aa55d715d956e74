package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

// HousekeepingClient manages room-cleaning requests. Staff list and work
// them; booked guests edit or cancel their own, via OTP when anonymous.
type HousekeepingClient struct {
	http *httpclient.Client
}

func NewHousekeepingClient(http *httpclient.Client) *HousekeepingClient {
	return &HousekeepingClient{http: http}
}

func (c *HousekeepingClient) Get(ctx context.Context, id int64, guestToken string) (*domain.HousekeepingRequest, error) {
	var out domain.HousekeepingRequest
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/api/housekeeping/%d", id),
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HousekeepingClient) List(ctx context.Context, opts domain.RequestListOptions) ([]domain.HousekeepingRequest, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var out []domain.HousekeepingRequest
	if err := c.http.Get(ctx, "/api/housekeeping", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HousekeepingClient) Update(ctx context.Context, id int64, req *domain.RequestUpdate, guestToken string) (*domain.HousekeepingRequest, error) {
	var out domain.HousekeepingRequest
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/api/housekeeping/%d", id),
		Body:       req,
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HousekeepingClient) Cancel(ctx context.Context, id int64, guestToken string) error {
	return c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPost,
		Path:       fmt.Sprintf("/api/housekeeping/%d/cancel", id),
		GuestToken: guestToken,
	}, nil)
}

// ServicesClient manages in-stay service orders.
type ServicesClient struct {
	http *httpclient.Client
}

func NewServicesClient(http *httpclient.Client) *ServicesClient {
	return &ServicesClient{http: http}
}

func (c *ServicesClient) Get(ctx context.Context, id int64, guestToken string) (*domain.ServiceRequest, error) {
	var out domain.ServiceRequest
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/api/service-requests/%d", id),
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ServicesClient) List(ctx context.Context, opts domain.RequestListOptions) ([]domain.ServiceRequest, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var out []domain.ServiceRequest
	if err := c.http.Get(ctx, "/api/service-requests", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ServicesClient) Update(ctx context.Context, id int64, req *domain.RequestUpdate, guestToken string) (*domain.ServiceRequest, error) {
	var out domain.ServiceRequest
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/api/service-requests/%d", id),
		Body:       req,
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ServicesClient) Cancel(ctx context.Context, id int64, guestToken string) error {
	return c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPost,
		Path:       fmt.Sprintf("/api/service-requests/%d/cancel", id),
		GuestToken: guestToken,
	}, nil)
}
