package store

import (
	"context"
	"fmt"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
)

// Store persists the session credentials and the per-resource guest tokens.
// A reader must never observe a partial session: Get returns the full session
// or nil. Corrupt cached state reads as absent, not as an error.
type Store interface {
	// Set writes the token pair and the cached user profile together.
	Set(ctx context.Context, tokens domain.TokenPair, user domain.UserProfile) error

	// Get returns the stored session, or nil when any required field is
	// missing or the cached user fails to parse.
	Get(ctx context.Context) (*domain.Session, error)

	// UpdateTokens replaces the access token after a refresh. An empty
	// refreshToken keeps the previously stored one; a refresh response that
	// omits the field must never erase a live refresh token.
	UpdateTokens(ctx context.Context, accessToken, refreshToken string) error

	// Clear removes all session keys. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error

	SetGuestToken(ctx context.Context, key GuestKey, token string) error
	GuestToken(ctx context.Context, key GuestKey) (string, error)
	ClearGuestToken(ctx context.Context, key GuestKey) error
}

// GuestKey identifies the one resource instance a guest token is scoped to.
type GuestKey struct {
	Resource string
	ID       int64
}

func (k GuestKey) String() string {
	return fmt.Sprintf("guestToken:%s:%d", k.Resource, k.ID)
}
