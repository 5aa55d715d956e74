package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
)

// FileStore persists the session to a JSON state file, the workstation
// analogue of browser local storage. Writes go through a temp file and a
// rename so a crash never leaves a half-written session behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileState struct {
	AccessToken  string            `json:"accessToken,omitempty"`
	RefreshToken string            `json:"refreshToken,omitempty"`
	User         json.RawMessage   `json:"user,omitempty"`
	GuestTokens  map[string]string `json:"guestTokens,omitempty"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Set(_ context.Context, tokens domain.TokenPair, user domain.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.AccessToken = tokens.AccessToken
	st.RefreshToken = tokens.RefreshToken
	st.User = raw
	return s.save(st)
}

func (s *FileStore) Get(_ context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	return sessionFrom(st.AccessToken, st.RefreshToken, string(st.User)), nil
}

func (s *FileStore) UpdateTokens(_ context.Context, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	if st.AccessToken == "" && st.RefreshToken == "" {
		return nil
	}
	st.AccessToken = accessToken
	if refreshToken != "" {
		st.RefreshToken = refreshToken
	}
	return s.save(st)
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.AccessToken = ""
	st.RefreshToken = ""
	st.User = nil
	return s.save(st)
}

func (s *FileStore) SetGuestToken(_ context.Context, key GuestKey, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	if st.GuestTokens == nil {
		st.GuestTokens = make(map[string]string)
	}
	st.GuestTokens[key.String()] = token
	return s.save(st)
}

func (s *FileStore) GuestToken(_ context.Context, key GuestKey) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().GuestTokens[key.String()], nil
}

func (s *FileStore) ClearGuestToken(_ context.Context, key GuestKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	delete(st.GuestTokens, key.String())
	return s.save(st)
}

// load reads the state file; a missing or corrupt file reads as empty state.
func (s *FileStore) load() *fileState {
	st := &fileState{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, st); err != nil {
		return &fileState{}
	}
	return st
}

func (s *FileStore) save(st *fileState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
