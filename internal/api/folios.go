package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

// FoliosClient handles billing; staff-only.
type FoliosClient struct {
	http *httpclient.Client
}

func NewFoliosClient(http *httpclient.Client) *FoliosClient {
	return &FoliosClient{http: http}
}

func (c *FoliosClient) Get(ctx context.Context, id int64) (*domain.Folio, error) {
	var out domain.Folio
	if err := c.http.Get(ctx, fmt.Sprintf("/api/folios/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FoliosClient) List(ctx context.Context, opts domain.FolioListOptions) ([]domain.Folio, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Folio
	if err := c.http.Get(ctx, "/api/folios", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FoliosClient) PostCharge(ctx context.Context, id int64, req *domain.PostChargeRequest) (*domain.Folio, error) {
	var out domain.Folio
	err := c.http.Do(ctx, &httpclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/folios/%d/charges", id),
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FoliosClient) Close(ctx context.Context, id int64) (*domain.Folio, error) {
	var out domain.Folio
	err := c.http.Do(ctx, &httpclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/folios/%d/close", id),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
