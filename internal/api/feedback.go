package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

type FeedbackClient struct {
	http *httpclient.Client
}

func NewFeedbackClient(http *httpclient.Client) *FeedbackClient {
	return &FeedbackClient{http: http}
}

func (c *FeedbackClient) Get(ctx context.Context, id int64, guestToken string) (*domain.Feedback, error) {
	var out domain.Feedback
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/api/feedback/%d", id),
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FeedbackClient) List(ctx context.Context, opts domain.FeedbackListOptions) ([]domain.Feedback, error) {
	q, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Feedback
	if err := c.http.Get(ctx, "/api/feedback", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FeedbackClient) Update(ctx context.Context, id int64, req *domain.FeedbackUpdateRequest, guestToken string) (*domain.Feedback, error) {
	var out domain.Feedback
	err := c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/api/feedback/%d", id),
		Body:       req,
		GuestToken: guestToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *FeedbackClient) Delete(ctx context.Context, id int64, guestToken string) error {
	return c.http.Do(ctx, &httpclient.Request{
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/api/feedback/%d", id),
		GuestToken: guestToken,
	}, nil)
}
