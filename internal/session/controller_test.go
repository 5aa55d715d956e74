package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/session"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/store"
)

// ---------- Mocks ----------

type mockAuthAPI struct {
	loginResp *domain.LoginResponse
	loginErr  error

	refreshResp  *domain.RefreshResponse
	refreshErr   error
	refreshDelay time.Duration
	refreshCalls int32

	logoutCalls int32
	logoutErr   error
}

func (m *mockAuthAPI) Login(_ context.Context, username, password string) (*domain.LoginResponse, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *mockAuthAPI) Refresh(_ context.Context, refreshToken string) (*domain.RefreshResponse, error) {
	atomic.AddInt32(&m.refreshCalls, 1)
	if m.refreshDelay > 0 {
		time.Sleep(m.refreshDelay)
	}
	if m.refreshErr != nil {
		return nil, m.refreshErr
	}
	return m.refreshResp, nil
}

func (m *mockAuthAPI) Logout(_ context.Context, accessToken, refreshToken string) error {
	atomic.AddInt32(&m.logoutCalls, 1)
	return m.logoutErr
}

func mintToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func staffUser() domain.UserProfile {
	return domain.UserProfile{
		ID:       7,
		FullName: "Ana Admin",
		Username: "ana",
		Email:    "ana@hotel.test",
		Role:     domain.RoleAdmin,
		Active:   true,
	}
}

func customerUser() domain.UserProfile {
	return domain.UserProfile{
		ID:       5,
		FullName: "Carl Customer",
		Username: "carl",
		Email:    "carl@example.test",
		Role:     domain.RoleCustomer,
		Active:   true,
	}
}

func pair(t *testing.T) domain.TokenPair {
	return domain.TokenPair{
		AccessToken:  mintToken(t, 15*time.Minute),
		RefreshToken: "refresh-1",
	}
}

// ---------- Role admission ----------

func TestStaffAppRejectsCustomerLogin(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	c := session.New(ctx, st, &mockAuthAPI{}, policy.StaffAdmission)

	err := c.Establish(ctx, pair(t), customerUser())
	if !errors.Is(err, policy.ErrRoleNotAdmitted) {
		t.Fatalf("expected ErrRoleNotAdmitted, got %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("controller authenticated after rejected login")
	}
	if sess, _ := st.Get(ctx); sess != nil {
		t.Errorf("rejected login persisted tokens: %+v", sess)
	}
}

func TestCustomerAppRejectsStaffLogin(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	c := session.New(ctx, st, &mockAuthAPI{}, policy.CustomerAdmission)

	err := c.Establish(ctx, pair(t), staffUser())
	if !errors.Is(err, policy.ErrRoleNotAdmitted) {
		t.Fatalf("expected ErrRoleNotAdmitted, got %v", err)
	}
	if sess, _ := st.Get(ctx); sess != nil {
		t.Errorf("rejected login persisted tokens: %+v", sess)
	}
}

func TestEstablishRejectsIncompleteCredentials(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	c := session.New(ctx, st, &mockAuthAPI{}, policy.StaffAdmission)

	cases := []struct {
		name   string
		tokens domain.TokenPair
		user   domain.UserProfile
	}{
		{"missing access token", domain.TokenPair{RefreshToken: "r"}, staffUser()},
		{"missing refresh token", domain.TokenPair{AccessToken: "a"}, staffUser()},
		{"missing user", pair(t), domain.UserProfile{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := c.Establish(ctx, tc.tokens, tc.user); err == nil {
				t.Error("expected error")
			}
			if sess, _ := st.Get(ctx); sess != nil {
				t.Errorf("partial credentials persisted: %+v", sess)
			}
		})
	}
}

// ---------- Session atomicity ----------

func TestLoginThenStoreHasFullSession(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mockAuthAPI{loginResp: &domain.LoginResponse{TokenPair: pair(t), User: staffUser()}}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	user, err := c.Login(ctx, "ana", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("user = %+v", user)
	}

	sess, _ := st.Get(ctx)
	if sess == nil || sess.AccessToken == "" || sess.RefreshToken == "" || sess.User.ID == 0 {
		t.Errorf("store not fully populated after login: %+v", sess)
	}
}

// ---------- Logout ----------

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mockAuthAPI{logoutErr: errors.New("backend down")}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	if err := c.Establish(ctx, pair(t), staffUser()); err != nil {
		t.Fatal(err)
	}

	// Backend failure must not stop the local logout.
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("first Logout: %v", err)
	}
	if sess, _ := st.Get(ctx); sess != nil {
		t.Errorf("store not cleared: %+v", sess)
	}
	if c.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
	if sess, _ := st.Get(ctx); sess != nil {
		t.Errorf("store repopulated: %+v", sess)
	}
}

// ---------- Refresh ----------

func TestRefreshKeepsOldRefreshTokenWhenResponseOmitsIt(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mockAuthAPI{refreshResp: &domain.RefreshResponse{AccessToken: "access-2"}}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	if err := c.Establish(ctx, pair(t), staffUser()); err != nil {
		t.Fatal(err)
	}

	token, err := c.RefreshAccessToken(ctx)
	if err != nil {
		t.Fatalf("RefreshAccessToken: %v", err)
	}
	if token != "access-2" {
		t.Errorf("token = %q, want access-2", token)
	}

	sess, _ := st.Get(ctx)
	if sess == nil {
		t.Fatal("session gone after refresh")
	}
	if sess.RefreshToken != "refresh-1" {
		t.Errorf("refresh token = %q, want refresh-1 (unchanged)", sess.RefreshToken)
	}
}

func TestRefreshFailureForcesLogout(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mockAuthAPI{refreshErr: errors.New("expired")}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	if err := c.Establish(ctx, pair(t), staffUser()); err != nil {
		t.Fatal(err)
	}

	if _, err := c.RefreshAccessToken(ctx); !errors.Is(err, session.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("still authenticated after failed refresh")
	}
	if sess, _ := st.Get(ctx); sess != nil {
		t.Errorf("store not cleared after failed refresh: %+v", sess)
	}
}

func TestRefreshWithoutSessionForcesLogout(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	c := session.New(ctx, st, &mockAuthAPI{}, policy.StaffAdmission)

	if _, err := c.RefreshAccessToken(ctx); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestConcurrentRefreshesCollapseToOneCall(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mockAuthAPI{
		refreshResp:  &domain.RefreshResponse{AccessToken: "access-2", RefreshToken: "refresh-2"},
		refreshDelay: 50 * time.Millisecond,
	}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	if err := c.Establish(ctx, pair(t), staffUser()); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := c.RefreshAccessToken(ctx)
			if err != nil || token != "access-2" {
				t.Errorf("refresh: %q, %v", token, err)
			}
		}()
	}
	wg.Wait()

	if calls := atomic.LoadInt32(&api.refreshCalls); calls != 1 {
		t.Errorf("backend refresh called %d times, want 1", calls)
	}
	sess, _ := st.Get(ctx)
	if sess == nil || sess.RefreshToken != "refresh-2" {
		t.Errorf("store after concurrent refresh: %+v", sess)
	}
}

// ---------- Restore on construction ----------

func TestNewRestoresUnexpiredSession(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	if err := st.Set(ctx, pair(t), staffUser()); err != nil {
		t.Fatal(err)
	}

	c := session.New(ctx, st, &mockAuthAPI{}, policy.StaffAdmission)
	if !c.IsAuthenticated() {
		t.Fatal("expected restored session")
	}
	if user := c.CurrentUser(); user == nil || user.Username != "ana" {
		t.Errorf("user = %+v", user)
	}
}

func TestNewRefreshesExpiredSession(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	expired := domain.TokenPair{
		AccessToken:  mintToken(t, -time.Minute),
		RefreshToken: "refresh-1",
	}
	if err := st.Set(ctx, expired, staffUser()); err != nil {
		t.Fatal(err)
	}

	api := &mockAuthAPI{refreshResp: &domain.RefreshResponse{AccessToken: mintToken(t, 15*time.Minute)}}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	if atomic.LoadInt32(&api.refreshCalls) != 1 {
		t.Errorf("refresh calls = %d, want 1", api.refreshCalls)
	}
	if !c.IsAuthenticated() {
		t.Error("expected session after refresh on construction")
	}
}

func TestNewStartsUnauthenticatedWhenRefreshFails(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	expired := domain.TokenPair{
		AccessToken:  mintToken(t, -time.Minute),
		RefreshToken: "refresh-1",
	}
	if err := st.Set(ctx, expired, staffUser()); err != nil {
		t.Fatal(err)
	}

	api := &mockAuthAPI{refreshErr: errors.New("revoked")}
	c := session.New(ctx, st, api, policy.StaffAdmission)

	if c.IsAuthenticated() {
		t.Error("expected unauthenticated start")
	}
	if sess, _ := st.Get(ctx); sess != nil {
		t.Errorf("stale session not cleared: %+v", sess)
	}
}
