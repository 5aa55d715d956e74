package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/store"
	"github.com/ThieuDV091002/hotel-management-system-sub002/pkg/logger"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
)

// AuthAPI is the slice of the backend the controller needs. Implemented by
// api.AuthClient.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.RefreshResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

// Controller is the single source of truth for "is someone logged in, and as
// whom". Construct one per application instance and inject it; it is not a
// package-level singleton.
type Controller struct {
	store store.Store
	api   AuthAPI
	admit policy.Admission

	sf singleflight.Group

	mu    sync.RWMutex
	state State
	user  *domain.UserProfile
}

// New restores state from the store: an unexpired session resumes as
// Authenticated, an expired one gets a single refresh attempt, anything else
// starts Unauthenticated.
func New(ctx context.Context, st store.Store, api AuthAPI, admit policy.Admission) *Controller {
	c := &Controller{store: st, api: api, admit: admit}

	sess, err := st.Get(ctx)
	if err != nil {
		logger.WarnContext(ctx, "session store unreadable, starting unauthenticated", "error", err)
		return c
	}
	if !sess.Complete() {
		return c
	}

	if tokenExpired(sess.AccessToken) {
		if _, err := c.RefreshAccessToken(ctx); err != nil {
			return c
		}
		sess, err = st.Get(ctx)
		if err != nil || !sess.Complete() {
			return c
		}
	}

	c.state = Authenticated
	user := sess.User
	c.user = &user
	return c
}

func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == Authenticated
}

func (c *Controller) CurrentUser() *domain.UserProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != Authenticated || c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

// Login authenticates against the backend and applies the application's role
// admission policy. A rejected role persists nothing.
func (c *Controller) Login(ctx context.Context, username, password string) (*domain.UserProfile, error) {
	resp, err := c.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := c.Establish(ctx, resp.TokenPair, resp.User); err != nil {
		return nil, err
	}
	return c.CurrentUser(), nil
}

// Establish validates and persists a token pair plus user received from the
// login endpoint. Split out from Login so the admission rules are testable
// without a network.
func (c *Controller) Establish(ctx context.Context, tokens domain.TokenPair, user domain.UserProfile) error {
	if tokens.AccessToken == "" || tokens.RefreshToken == "" || user.ID == 0 {
		return fmt.Errorf("incomplete login response")
	}
	if err := c.admit.Admit(user.Role); err != nil {
		return err
	}

	if err := c.store.Set(ctx, tokens, user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	c.mu.Lock()
	c.state = Authenticated
	c.user = &user
	c.mu.Unlock()

	logger.InfoContext(ctx, "session established", "user_id", user.ID, "role", user.Role)
	return nil
}

// Logout notifies the backend best-effort, then unconditionally clears local
// state. Safe to call when already logged out.
func (c *Controller) Logout(ctx context.Context) error {
	sess, err := c.store.Get(ctx)
	if err == nil && sess.Complete() {
		if err := c.api.Logout(ctx, sess.AccessToken, sess.RefreshToken); err != nil {
			logger.WarnContext(ctx, "backend logout failed", "error", err)
		}
	}

	if err := c.store.Clear(ctx); err != nil {
		logger.WarnContext(ctx, "failed to clear session store", "error", err)
	}

	c.mu.Lock()
	c.state = Unauthenticated
	c.user = nil
	c.mu.Unlock()
	return nil
}

// AccessToken returns the current bearer credential, or empty when logged
// out. Implements httpclient.TokenSource.
func (c *Controller) AccessToken(ctx context.Context) string {
	sess, err := c.store.Get(ctx)
	if err != nil || !sess.Complete() {
		return ""
	}
	return sess.AccessToken
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token. Concurrent callers that all hit a 401 at once are collapsed into one
// backend call. Any failure forces a logout so storage and state never
// diverge.
func (c *Controller) RefreshAccessToken(ctx context.Context) (string, error) {
	token, err, _ := c.sf.Do("refresh", func() (interface{}, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (c *Controller) refresh(ctx context.Context) (string, error) {
	sess, err := c.store.Get(ctx)
	if err != nil || !sess.Complete() {
		_ = c.Logout(ctx)
		return "", ErrNotAuthenticated
	}

	resp, err := c.api.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		logger.WarnContext(ctx, "token refresh rejected, logging out", "error", err)
		_ = c.Logout(ctx)
		return "", fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	if resp.AccessToken == "" {
		_ = c.Logout(ctx)
		return "", ErrSessionExpired
	}

	// An omitted refreshToken keeps the stored one; see store.UpdateTokens.
	if err := c.store.UpdateTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		_ = c.Logout(ctx)
		return "", fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}
	return resp.AccessToken, nil
}

// tokenExpired inspects the embedded exp claim without verifying the
// signature; the token is otherwise opaque to the client. Unparseable tokens
// count as expired and go through the refresh path.
func tokenExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
