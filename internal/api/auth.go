package api

import (
	"context"
	"net/http"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
)

// AuthClient talks to the authentication endpoints. It always runs without
// credential handling: login and refresh must never themselves trigger a
// refresh-and-retry.
type AuthClient struct {
	http *httpclient.Client
}

func NewAuthClient(http *httpclient.Client) *AuthClient {
	return &AuthClient{http: http}
}

func (c *AuthClient) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	req := &domain.LoginRequest{Username: username, Password: password}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out domain.LoginResponse
	err := c.http.Do(ctx, &httpclient.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   req,
		NoAuth: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*domain.RefreshResponse, error) {
	var out domain.RefreshResponse
	err := c.http.Do(ctx, &httpclient.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/refresh-token",
		Body:   &domain.RefreshRequest{RefreshToken: refreshToken},
		NoAuth: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) Logout(ctx context.Context, accessToken, refreshToken string) error {
	return c.http.Do(ctx, &httpclient.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
		Body:   &domain.LogoutRequest{AccessToken: accessToken, RefreshToken: refreshToken},
		NoAuth: true,
	}, nil)
}
