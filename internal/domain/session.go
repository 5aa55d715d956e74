package domain

import (
	"fmt"
	"strings"
)

// TokenPair is the credential pair issued by the login endpoint. The access
// token is a short-lived bearer credential; the refresh token is only ever
// exchanged for a new access token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Session is the fully authenticated client state. A session is either fully
// present (all three fields populated) or absent; partial state is treated as
// logged out.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         UserProfile
}

func (s *Session) Complete() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != "" && s.User.ID != 0
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type LoginResponse struct {
	TokenPair TokenPair   `json:"tokenPair"`
	User      UserProfile `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse may omit refreshToken; the previously stored one stays
// valid in that case.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type LogoutRequest struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
