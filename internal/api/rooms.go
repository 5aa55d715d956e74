package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

// RoomsClient is staff-only; rooms have no guest access mode.
type RoomsClient struct {
	http *httpclient.Client
}

func NewRoomsClient(http *httpclient.Client) *RoomsClient {
	return &RoomsClient{http: http}
}

func (c *RoomsClient) Get(ctx context.Context, id int64) (*domain.Room, error) {
	var out domain.Room
	if err := c.http.Get(ctx, fmt.Sprintf("/api/rooms/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RoomsClient) List(ctx context.Context, opts domain.RoomListOptions) ([]domain.Room, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Room
	if err := c.http.Get(ctx, "/api/rooms", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RoomsClient) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) (*domain.Room, error) {
	var out domain.Room
	err := c.http.Do(ctx, &httpclient.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/api/rooms/%d/status", id),
		Body:   &domain.RoomStatusUpdateRequest{Status: status},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
