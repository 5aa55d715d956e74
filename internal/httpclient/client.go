package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/apierror"
	"github.com/ThieuDV091002/hotel-management-system-sub002/pkg/logger"
)

// TokenSource supplies the bearer credential and the one-shot recovery used
// when it expires. SessionController implements it.
type TokenSource interface {
	AccessToken(ctx context.Context) string
	RefreshAccessToken(ctx context.Context) (string, error)
}

// Request is one logical backend call. The retry flag lives here so the
// retry-at-most-once rule is enforced structurally, not by interceptor
// ordering.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// GuestToken switches the call to guest mode: the token rides as a query
	// parameter and no bearer header is attached. A call is never both.
	GuestToken string

	// NoAuth skips credential handling entirely (login, refresh).
	NoAuth bool

	retried bool
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a client without credential handling, used for the auth
// endpoints themselves.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithTokenSource returns a client that attaches bearer tokens and recovers
// once from an expired access token. The underlying transport is shared.
func (c *Client) WithTokenSource(tokens TokenSource) *Client {
	return &Client{baseURL: c.baseURL, http: c.http, tokens: tokens}
}

// Do issues the request. On a 401 for a not-yet-retried authenticated call it
// asks the token source for a fresh access token and re-issues the request
// exactly once; the second outcome is final either way.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	status, body, err := c.issue(ctx, req, "")
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && c.canRetry(req) {
		req.retried = true
		newToken, refreshErr := c.tokens.RefreshAccessToken(ctx)
		if refreshErr != nil || newToken == "" {
			logger.DebugContext(ctx, "token refresh failed, propagating 401",
				"method", req.Method, "path", req.Path, "error", refreshErr)
			return apierror.FromResponse(status, body)
		}
		status, body, err = c.issue(ctx, req, newToken)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return apierror.FromResponse(status, body)
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) canRetry(req *Request) bool {
	return !req.retried && !req.NoAuth && req.GuestToken == "" && c.tokens != nil
}

func (c *Client) issue(ctx context.Context, req *Request, forceToken string) (int, []byte, error) {
	u := c.baseURL + req.Path
	query := url.Values{}
	for k, vs := range req.Query {
		query[k] = vs
	}
	if req.GuestToken != "" {
		query.Set("token", req.GuestToken)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	if req.GuestToken == "" && !req.NoAuth && c.tokens != nil {
		token := forceToken
		if token == "" {
			token = c.tokens.AccessToken(ctx)
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.DebugContext(ctx, "issuing request",
		"method", req.Method,
		"path", req.Path,
		"guest", req.GuestToken != "",
		"retry", req.retried,
	)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path}, out)
}
