package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
)

// MemoryStore keeps the session for the lifetime of the process. It is the
// default for the customer app and the backend for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Set(_ context.Context, tokens domain.TokenPair, user domain.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[keyAccessToken] = tokens.AccessToken
	s.values[keyRefreshToken] = tokens.RefreshToken
	s.values[keyUser] = string(raw)
	return nil
}

func (s *MemoryStore) Get(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sessionFrom(s.values[keyAccessToken], s.values[keyRefreshToken], s.values[keyUser]), nil
}

func (s *MemoryStore) UpdateTokens(_ context.Context, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[keyAccessToken] == "" && s.values[keyRefreshToken] == "" {
		return nil
	}
	s.values[keyAccessToken] = accessToken
	if refreshToken != "" {
		s.values[keyRefreshToken] = refreshToken
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyAccessToken)
	delete(s.values, keyRefreshToken)
	delete(s.values, keyUser)
	return nil
}

func (s *MemoryStore) SetGuestToken(_ context.Context, key GuestKey, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key.String()] = token
	return nil
}

func (s *MemoryStore) GuestToken(_ context.Context, key GuestKey) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key.String()], nil
}

func (s *MemoryStore) ClearGuestToken(_ context.Context, key GuestKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key.String())
	return nil
}

const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
)

// sessionFrom applies the absence rule shared by all backends: every field
// present and the user parseable, or no session at all.
func sessionFrom(access, refresh, rawUser string) *domain.Session {
	if access == "" || refresh == "" || rawUser == "" {
		return nil
	}
	var user domain.UserProfile
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == 0 {
		return nil
	}
	return &domain.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}
}
